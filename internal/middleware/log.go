package middleware

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger appends one line per request to the given file:
// timestamp, method, path, status, latency, client IP.
// When the file cannot be opened the middleware is a no-op.
func RequestLogger(file string) gin.HandlerFunc {
	if file == "" {
		return func(c *gin.Context) { c.Next() }
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		log.Printf("request log dir: %v", err)
		return func(c *gin.Context) { c.Next() }
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("open request log: %v", err)
		return func(c *gin.Context) { c.Next() }
	}

	logger := log.New(f, "", 0)

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Printf("%s %s %s %d %s %s",
			start.UTC().Format(time.RFC3339),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Microsecond),
			c.ClientIP(),
		)
	}
}
