package ctxmanage

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIdKey is the gin context key under which the logging middleware
// stores the per-request trace id.
const TraceIdKey = "trace_id"

// GetTraceIdOfRequest returns the trace id of the current request.
// If the middleware did not run (e.g. in tests hitting a handler
// directly), a fresh id is generated so log lines are still correlated.
func GetTraceIdOfRequest(c *gin.Context) string {
	traceId, ok := c.Value(TraceIdKey).(string)
	if !ok {
		traceId = uuid.NewString()
	}
	return traceId
}
