// Package web exposes the motion core over HTTP: status, named
// actions, raw frame pushes, emergency stop, and a websocket telemetry
// stream of emitted angle vectors.
package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/openpup/go-pup/internal/log"
	"github.com/openpup/go-pup/pkg/actuator"
	"github.com/openpup/go-pup/pkg/hub"
	"github.com/openpup/go-pup/pkg/motion"
	"github.com/openpup/go-pup/pkg/pose"
)

// Server is the control API server.
type Server struct {
	app  *fiber.App
	port string

	core     *motion.Core
	registry *motion.Registry
	poser    *pose.Controller

	telemetry *hub.Hub
	started   time.Time
}

// telemetryFrame is one emitted angle vector on the websocket stream.
type telemetryFrame struct {
	Region string    `json:"region"`
	Angles []float64 `json:"angles"`
	Time   time.Time `json:"time"`
}

// NewServer wires the API over a motion core, action registry, and
// pose controller, and installs the telemetry sink.
func NewServer(port string, core *motion.Core, registry *motion.Registry, poser *pose.Controller) *Server {
	s := &Server{
		port:      port,
		core:      core,
		registry:  registry,
		poser:     poser,
		telemetry: hub.New("telemetry"),
		started:   time.Now(),
	}

	core.SetTelemetry(func(region actuator.Region, angles []float64) {
		_ = s.telemetry.BroadcastJSON(telemetryFrame{
			Region: region.String(),
			Angles: angles,
			Time:   time.Now(),
		})
	})

	app := fiber.New(fiber.Config{
		AppName:               "pupd",
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/actions", s.handleListActions)
	api.Post("/actions/:name", s.handleAction)
	api.Post("/regions/:region/frames", s.handlePushFrames)
	api.Post("/pose", s.handlePose)
	api.Post("/estop", s.handleEstop)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/telemetry", websocket.New(s.handleTelemetryWS))

	s.app = app
	return s
}

// Start runs the telemetry hub and serves the API. Blocks.
func (s *Server) Start() error {
	go s.telemetry.Run()
	log.Info("control API listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
