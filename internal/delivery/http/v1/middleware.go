package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	requestIDHeader = "X-Request-ID"
	loggerCtxKey    = "logger"
)

// HandleRequestIDMiddleware assigns every request a correlation id,
// echoes it back on the response and stores a request-scoped logger
// in the gin context. A client-supplied id is kept as is.
func (h *handlerImpl) HandleRequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)

	logger := h.logger.With().
		Str("request_id", requestID).
		Logger()
	c.Set(loggerCtxKey, logger)

	c.Next()
}

func (h *handlerImpl) requestLogger(c *gin.Context) zerolog.Logger {
	value, exists := c.Get(loggerCtxKey)
	if !exists {
		return h.logger
	}

	logger, ok := value.(zerolog.Logger)
	if !ok {
		return h.logger
	}
	return logger
}
