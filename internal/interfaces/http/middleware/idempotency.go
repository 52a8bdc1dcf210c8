package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/infrastructure/cache"
	"github.com/wms/backend/internal/interfaces/http/dto"
)

// IdempotencyKeyHeader carries the client's idempotency key
const IdempotencyKeyHeader = "Idempotency-Key"

// IdempotencyTTL is how long an accepted key blocks retries. Documents keep
// their own uniqueness guarantees; this only absorbs client retries.
const IdempotencyTTL = 24 * time.Hour

// Idempotency rejects a repeated mutating request carrying an already-seen
// Idempotency-Key with 409. Requests without the header pass through.
func Idempotency(store cache.IdempotencyStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		claimed, err := store.Claim(c.Request.Context(), key, IdempotencyTTL)
		if err != nil {
			// Fail open: a store outage must not block writes
			if log != nil {
				log.Error("Failed to claim idempotency key", zap.Error(err))
			}
			c.Next()
			return
		}
		if !claimed {
			requestID := c.GetString(RequestIDKey)
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeConflict, "A request with this idempotency key was already accepted", requestID))
			return
		}

		c.Next()
	}
}
