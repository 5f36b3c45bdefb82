package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jobsterhq/jobster-api/internal/apperrors"
)

// ErrorHandler is the single place errors become HTTP responses. Handlers
// and services attach errors to the context and return; nothing below this
// boundary writes an error body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.Error
		if errors.As(err, &appErr) && appErr.Kind != apperrors.KindInternal {
			c.JSON(statusFor(appErr.Kind), gin.H{"message": appErr.Message})
			return
		}

		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong, try again later"})
	}
}

func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindBadRequest:
		return http.StatusBadRequest
	case apperrors.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
