package metrics

import (
	"strconv"
	"time"
)

// RecordHTTPRequest records HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		status := categorizeStatus(statusCode)
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// categorizeStatus buckets a status code into its class (2xx, 3xx, ...)
// to keep label cardinality low
func categorizeStatus(code int) string {
	if code < 200 || code >= 600 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}

// skipPaths lists endpoints excluded from HTTP metrics. Scrapes and
// probes would otherwise dominate the request counters.
var skipPaths = map[string]bool{
	"/metrics":                true,
	"/health":                 true,
	"/api/moderation/metrics": true,
	"/api/moderation/health":  true,
}

// ShouldSkipEndpoint checks if endpoint should be excluded from metrics
func ShouldSkipEndpoint(path string) bool {
	return skipPaths[path]
}
