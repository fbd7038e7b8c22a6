// Package config provides configuration helpers for go-pup commands.
package config

import "os"

// Default daemon configuration.
const (
	DefaultSerialPort  = "/dev/ttyACM0"
	DefaultHTTPPort    = "8070"
	DefaultCalibration = "/etc/pup/calibration.json"
)

// SerialPort returns the servo bus device from PUP_SERIAL_PORT.
// Falls back to the default if not set.
func SerialPort() string {
	if port := os.Getenv("PUP_SERIAL_PORT"); port != "" {
		return port
	}
	return DefaultSerialPort
}

// HTTPPort returns the control API port from PUP_HTTP_PORT.
func HTTPPort() string {
	if port := os.Getenv("PUP_HTTP_PORT"); port != "" {
		return port
	}
	return DefaultHTTPPort
}

// CalibrationPath returns the calibration file path from PUP_CALIBRATION.
func CalibrationPath() string {
	if path := os.Getenv("PUP_CALIBRATION"); path != "" {
		return path
	}
	return DefaultCalibration
}

// LogLevel returns the log level from PUP_LOG_LEVEL ("debug", "info",
// "warn", "error"). Empty means the logger default.
func LogLevel() string {
	return os.Getenv("PUP_LOG_LEVEL")
}
