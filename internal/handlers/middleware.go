package handlers

import (
	"net/http"
	"strings"
	"time"

	"doggyrank"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userCtxKey      = "userId"
	requestIDHeader = "X-Request-ID"
)

func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, doggyrank.ErrorResponse{
			Message: "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, doggyrank.ErrorResponse{
			Message: "invalid Authorization header format",
		})
		return
	}

	userId, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, doggyrank.ErrorResponse{
			Message: "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(userCtxKey, userId)
	c.Next()
}

// currentUserID reads the id stored by userIdMiddleware.
func currentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// requestLogger tags each request with an id and logs its outcome.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Header(requestIDHeader, reqID)

	c.Next()

	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency_ms", time.Since(start).Milliseconds(),
	)
}
