package redis

// HealthStatus represents the health status
type HealthStatus string

const (
	// StatusUp indicates the server answered the ping
	StatusUp HealthStatus = "UP"
	// StatusDown indicates the server is unreachable
	StatusDown HealthStatus = "DOWN"
)
