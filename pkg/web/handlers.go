package web

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/openpup/go-pup/pkg/actuator"
	"github.com/openpup/go-pup/pkg/hub"
	"github.com/openpup/go-pup/pkg/motion"
)

// regionStatus is one region's entry in the status response.
type regionStatus struct {
	Idle   bool      `json:"idle"`
	Queued int       `json:"queued"`
	Angles []float64 `json:"angles"`
}

// handleStatus reports per-region idle state and queue depth.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	regions := make(map[string]regionStatus, 3)
	for _, region := range actuator.Regions() {
		regions[region.String()] = regionStatus{
			Idle:   s.core.IsRegionIdle(region),
			Queued: s.core.QueueLen(region),
			Angles: s.core.LastAngles(region),
		}
	}
	return c.JSON(fiber.Map{
		"uptime":  time.Since(s.started).String(),
		"regions": regions,
	})
}

// handleListActions returns the registered motion names.
func (s *Server) handleListActions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"actions": s.registry.Descriptions(),
	})
}

// actionRequest is the body for POST /api/actions/:name.
type actionRequest struct {
	Speed   float64 `json:"speed"`
	Replace bool    `json:"replace"`
}

// handleAction performs a named motion.
func (s *Server) handleAction(c *fiber.Ctx) error {
	req := actionRequest{Speed: 50}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	action, err := s.registry.Get(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if err := s.core.Perform(action, req.Replace, req.Speed); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"id":     uuid.NewString(),
		"action": action.Name,
		"region": action.Region.String(),
	})
}

// pushRequest is the body for POST /api/regions/:region/frames.
type pushRequest struct {
	Frames  [][]float64 `json:"frames"`
	Replace bool        `json:"replace"`
	Speed   float64     `json:"speed"`
}

// handlePushFrames enqueues raw angle frames on a region.
func (s *Server) handlePushFrames(c *fiber.Ctx) error {
	region, err := actuator.ParseRegion(c.Params("region"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var req pushRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	frames := make([]motion.Frame, len(req.Frames))
	for i, f := range req.Frames {
		frames[i] = f
	}

	if err := s.core.PushRegion(region, frames, req.Replace, req.Speed); err != nil {
		if errors.Is(err, motion.ErrMalformedFrame) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"id":     uuid.NewString(),
		"queued": s.core.QueueLen(region),
	})
}

// poseRequest is the body for POST /api/pose. Absent fields leave the
// prior pose unchanged.
type poseRequest struct {
	X           *float64 `json:"x"`
	Y           *float64 `json:"y"`
	Z           *float64 `json:"z"`
	Roll        *float64 `json:"roll"`
	Pitch       *float64 `json:"pitch"`
	Yaw         *float64 `json:"yaw"`
	UseFeedback bool     `json:"use_feedback"`
	Speed       float64  `json:"speed"`
}

// handlePose updates the commanded body pose, resolves it, and pushes
// the resulting legs frame with replace semantics.
func (s *Server) handlePose(c *fiber.Ctx) error {
	req := poseRequest{Speed: 50}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.X != nil || req.Y != nil || req.Z != nil {
		s.poser.SetPosition(req.X, req.Y, req.Z)
	}
	if req.Roll != nil || req.Pitch != nil || req.Yaw != nil {
		s.poser.SetRPY(req.Roll, req.Pitch, req.Yaw, req.UseFeedback)
	}

	frame, err := s.poser.Resolve()
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := s.core.PushRegion(actuator.RegionLegs, []motion.Frame{frame}, true, req.Speed); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"id": uuid.NewString()})
}

// handleEstop clears every region and parks the legs in the safe pose.
func (s *Server) handleEstop(c *fiber.Ctx) error {
	s.core.EmergencyStop()
	return c.JSON(fiber.Map{"stopped": true})
}

// handleTelemetryWS attaches a websocket client to the telemetry hub.
func (s *Server) handleTelemetryWS(conn *websocket.Conn) {
	client := hub.NewClient(s.telemetry, conn)
	client.Run()
}
