// Package health provides system health monitoring and status reporting.
package health

import "time"

// SystemStatus represents the overall health state of the system or a component.
type SystemStatus string

const (
	StatusHealthy  SystemStatus = "healthy"
	StatusDegraded SystemStatus = "degraded"
	StatusCritical SystemStatus = "critical"
)

// ComponentHealth contains the result of a single component check.
type ComponentHealth struct {
	Name     string       `json:"name"`
	Status   SystemStatus `json:"status"`
	Critical bool         `json:"critical"`
	Error    string       `json:"error,omitempty"`
}

// HealthReport contains the full system health report.
type HealthReport struct {
	SystemStatus SystemStatus               `json:"system_status"`
	Uptime       string                     `json:"uptime"`
	CheckedAt    time.Time                  `json:"checked_at"`
	Components   map[string]ComponentHealth `json:"components"`
}
