package dto

// HealthCheck is the state of one dependency probe.
type HealthCheck struct {
	OK        bool   `json:"ok"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status        string      `json:"status"` // healthy, degraded
	Version       string      `json:"version"`
	UptimeSeconds int64       `json:"uptimeSeconds"`
	Goroutines    int         `json:"goroutines"`
	HeapAllocMB   float64     `json:"heapAllocMb"`
	Database      HealthCheck `json:"database"`
	Redis         HealthCheck `json:"redis"`
}
