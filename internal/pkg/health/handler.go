package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := BuildInfo{
		Version:     "development",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}

	return func(c echo.Context) error {
		buildInfo.ServerTime = time.Now()
		return c.JSON(http.StatusOK, buildInfo)
	}
}

// RegisterHealthEndpoints registers the health and ping routes
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	ping := NewPingHandler(serviceName)
	e.GET("/health", ping)
	e.GET("/ping", ping)
}
