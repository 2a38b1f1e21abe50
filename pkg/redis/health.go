package redis

import (
	"context"
	"strings"
	"time"
)

// HealthCheck pings the server and reads its version, bounded by timeout
func (c *Client) HealthCheck(ctx context.Context, timeout time.Duration) (HealthStatus, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	details := map[string]string{"addr": c.config.Addr()}
	if err := c.Ping(ctx); err != nil {
		details["error"] = err.Error()
		return StatusDown, details
	}

	if info, err := c.Info(ctx, "server"); err == nil {
		if version := infoField(info, "redis_version"); version != "" {
			details["version"] = version
		}
	}
	return StatusUp, details
}

// infoField extracts one "name:value" line from an INFO payload
func infoField(info string, name string) string {
	for _, line := range strings.Split(info, "\n") {
		if value, ok := strings.CutPrefix(strings.TrimSpace(line), name+":"); ok {
			return value
		}
	}
	return ""
}
