package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const SessionIDKey = "session_id"

// TrackSession attaches a session ID to every request, taken from the
// X-Session-ID header or generated when absent. Research memoization and
// log correlation are per session; this is tracking, not authentication.
func TrackSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Set(SessionIDKey, sessionID)
		c.Header("X-Session-ID", sessionID)

		log.WithField("session_id", sessionID).Debugf("%s %s", c.Request.Method, c.Request.URL.Path)
		c.Next()
	}
}

// GetSessionID retrieves the session ID from the context
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(SessionIDKey)
	if !exists {
		return "", false
	}
	return sessionID.(string), true
}
