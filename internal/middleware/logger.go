package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextKeyRequestID = "request_id"
	HeaderRequestID     = "X-Request-ID"
)

// quietPaths are probe endpoints left out of the request log.
var quietPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
}

// RequestID reuses the caller's X-Request-ID or assigns a new one, and echoes it
// on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// Logger logs one line per request: request ID, caller, method, path, status,
// response size and latency.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if quietPaths[c.Request.URL.Path] && c.Writer.Status() < http.StatusInternalServerError {
			return
		}

		caller := "-"
		if userID, err := GetUserID(c); err == nil {
			caller = userID.String()
		}
		log.Printf("[%s] %s %s %s %d %dB %s",
			c.GetString(ContextKeyRequestID),
			caller,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start),
		)
	}
}

// Recovery turns a panic into a 500 response in the API error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[%s] panic recovered: %v", c.GetString(ContextKeyRequestID), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL_ERROR", "message": "an internal error occurred"},
		})
	})
}
