package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/openpup/go-pup/internal/config"
	"github.com/openpup/go-pup/internal/log"
	"github.com/openpup/go-pup/pkg/actuator"
	"github.com/openpup/go-pup/pkg/motion"
	"github.com/openpup/go-pup/pkg/pose"
	"github.com/openpup/go-pup/pkg/servobus"
	"github.com/openpup/go-pup/pkg/web"
)

func main() {
	serialPort := flag.String("serial", config.SerialPort(), "servo bus serial port")
	httpPort := flag.String("http", config.HTTPPort(), "control API port")
	calPath := flag.String("calibration", config.CalibrationPath(), "calibration JSON path")
	mock := flag.Bool("mock", false, "run without hardware (mock servo bus)")
	flag.Parse()

	log.Init(config.LogLevel())

	fmt.Println("🐕 pupd motion daemon")
	fmt.Printf("   Serial: %s (mock=%v)\n", *serialPort, *mock)
	fmt.Printf("   HTTP:   :%s\n", *httpPort)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	bank := actuator.DefaultBank()
	if cal, err := actuator.LoadCalibration(*calPath); err != nil {
		log.Warn("calibration not loaded, using defaults", "path", *calPath, "err", err)
	} else if err := bank.ApplyCalibration(cal); err != nil {
		log.Error("invalid calibration", "err", err)
		os.Exit(1)
	}

	var writer motion.Writer
	if *mock {
		writer = servobus.NewMock()
	} else {
		ids := servoIDs(bank)
		bus, err := servobus.Open(ctx, *serialPort, ids)
		if err != nil {
			log.Error("servo bus open failed", "err", err)
			os.Exit(1)
		}
		defer bus.Close()
		if err := bus.Enable(); err != nil {
			log.Error("servo torque enable failed", "err", err)
			os.Exit(1)
		}
		defer bus.Disable()
		writer = bus
	}

	core := motion.NewCore(bank, writer)
	core.Start(ctx)

	registry := motion.DefaultRegistry()
	poser := pose.NewController(nil)

	server := web.NewServer(*httpPort, core, registry, poser)

	go func() {
		<-sigChan
		fmt.Println("\n👋 Shutting down...")
		core.EmergencyStop()
		_ = server.Shutdown()
		cancel()
	}()

	if err := server.Start(); err != nil {
		log.Error("server ended", "err", err)
	}
}

// servoIDs collects every joint's bus ID in region/frame order.
func servoIDs(bank *actuator.Bank) []int {
	var ids []int
	for _, region := range actuator.Regions() {
		for _, j := range bank.Region(region) {
			ids = append(ids, j.ID)
		}
	}
	return ids
}
