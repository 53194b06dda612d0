package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles liveness and metadata endpoints
type SystemHandler struct {
	BaseHandler
	startTime time.Time
	ping      func() error
}

// NewSystemHandler creates a new SystemHandler. The ping function reports
// whether the database connection is alive.
func NewSystemHandler(ping func() error) *SystemHandler {
	return &SystemHandler{
		startTime: time.Now(),
		ping:      ping,
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// Info returns basic system information
func (h *SystemHandler) Info(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      "Shop Backend API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Health reports whether the service and its database are reachable
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	if h.ping != nil {
		if err := h.ping(); err != nil {
			status = "degraded"
		}
	}
	h.Success(c, gin.H{"status": status, "timestamp": time.Now().Format(time.RFC3339)})
}
