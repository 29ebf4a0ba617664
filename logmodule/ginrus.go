package logmodule

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Ginrus returns a gin middleware which logs every request with logrus,
// tagged by the given prefix
func Ginrus(name string) gin.HandlerFunc {
	logger := logrus.WithField("prefix", name)

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"ip":         c.ClientIP(),
			"latency":    time.Since(start),
			"user-agent": c.Request.UserAgent(),
		})

		if id, ok := c.Get("requester"); ok {
			entry = entry.WithField("requester", id)
		}

		switch {
		case len(c.Errors) > 0:
			entry.Warn(c.Errors.ByType(gin.ErrorTypeAny).String())
		case c.Writer.Status() >= 500:
			entry.Error()
		default:
			entry.Info()
		}
	}
}
