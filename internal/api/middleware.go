package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"beamx-scorecard/backend/internal/util"
)

// requestLogger emits one structured line per request with its duration.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := util.StartTimer()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed_ms": timer.ElapsedMs(),
		}).Info("request completed")
	}
}
