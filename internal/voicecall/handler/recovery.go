package handler

import (
	"fmt"

	"callcenter-webhooks/internal/voicecall/processor"

	"github.com/gin-gonic/gin"
)

// TwiMLRecovery turns a panic in a TwiML route into a fallback document,
// so the provider never receives a bare 500 in the middle of a call.
func (h *Handler) TwiMLRecovery(kind processor.FallbackKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				h.respondWithFallback(c, kind, fmt.Errorf("recovered from panic: %+v", r))
				c.Abort()
			}
		}()
		c.Next()
	}
}
