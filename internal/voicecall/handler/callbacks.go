package handler

import (
	"errors"
	"fmt"
	"net/http"

	"callcenter-webhooks/internal/observability"
	"callcenter-webhooks/internal/voicecall/processor"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	twimlContentType = "text/xml; charset=utf-8"
	invalidRequest   = "Invalid request"
)

// VoiceCallbackRequest is the call-start callback, sent as a form body (POST) or query string (GET)
type VoiceCallbackRequest struct {
	CallSid    string `form:"CallSid" binding:"required"`
	From       string `form:"From"`
	To         string `form:"To"`
	CallStatus string `form:"CallStatus"`
	Direction  string `form:"Direction"`
}

// RecordingCallbackRequest is posted by the Record verb's action URL
type RecordingCallbackRequest struct {
	CallSid           string `form:"CallSid"`
	From              string `form:"From"`
	RecordingSid      string `form:"RecordingSid"`
	RecordingURL      string `form:"RecordingUrl"`
	RecordingDuration string `form:"RecordingDuration"`
}

// StatusCallbackRequest is posted when the call changes state
type StatusCallbackRequest struct {
	CallSid      string `form:"CallSid"`
	CallStatus   string `form:"CallStatus"`
	CallDuration string `form:"CallDuration"`
	From         string `form:"From"`
	To           string `form:"To"`
}

// HandleVoiceCallback handles GET/POST /voice-callback
func (h *Handler) HandleVoiceCallback(c *gin.Context) {
	ctx := c.Request.Context()

	var req VoiceCallbackRequest
	if err := c.ShouldBind(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.logger.Warn(ctx, "call-start callback failed validation: "+validationErrs.Error())
		} else {
			h.logger.InfoWithError(ctx, "failed to bind call-start callback", err)
		}
		c.String(http.StatusBadRequest, invalidRequest)
		return
	}

	doc, err := h.voiceProcessor.AnswerCall(ctx, processor.IncomingCall{
		CallSid:   req.CallSid,
		From:      req.From,
		To:        req.To,
		Direction: req.Direction,
	})
	if err != nil {
		if errors.Is(err, processor.ErrMissingCallSid) {
			c.String(http.StatusBadRequest, invalidRequest)
			return
		}
		h.respondWithFallback(c, processor.FallbackApology, err)
		return
	}

	h.respondWithTwiML(c, doc)
}

// HandleRecordingCallback handles POST /recording-callback
func (h *Handler) HandleRecordingCallback(c *gin.Context) {
	ctx := c.Request.Context()

	var req RecordingCallbackRequest
	if err := c.ShouldBind(&req); err != nil {
		h.respondWithFallback(c, processor.FallbackThankYou, fmt.Errorf("failed to bind recording callback: %w", err))
		return
	}

	doc, err := h.voiceProcessor.ReplyToRecording(ctx, processor.CompletedRecording{
		CallSid:           req.CallSid,
		From:              req.From,
		RecordingSid:      req.RecordingSid,
		RecordingURL:      req.RecordingURL,
		RecordingDuration: req.RecordingDuration,
	})
	if err != nil {
		h.respondWithFallback(c, processor.FallbackThankYou, err)
		return
	}

	h.respondWithTwiML(c, doc)
}

// HandleStatusCallback handles POST /status-callback
func (h *Handler) HandleStatusCallback(c *gin.Context) {
	ctx := c.Request.Context()

	var req StatusCallbackRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.InfoWithError(ctx, "failed to bind status callback", err)
	}

	h.voiceProcessor.RecordCallStatus(ctx, processor.CallStatusUpdate{
		CallSid:      req.CallSid,
		Status:       req.CallStatus,
		CallDuration: req.CallDuration,
		From:         req.From,
		To:           req.To,
	})

	c.String(http.StatusOK, "OK")
}

// HandleTestVoice handles GET /test-voice
func (h *Handler) HandleTestVoice(c *gin.Context) {
	doc, err := h.voiceProcessor.TestVoice(c.Request.Context())
	if err != nil {
		h.respondWithFallback(c, processor.FallbackApology, err)
		return
	}
	h.respondWithTwiML(c, doc)
}

func (h *Handler) respondWithTwiML(c *gin.Context, doc string) {
	c.Data(http.StatusOK, twimlContentType, []byte(doc))
}

// respondWithFallback keeps the caller on a coherent call flow when a document could not be built.
func (h *Handler) respondWithFallback(c *gin.Context, kind processor.FallbackKind, err error) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "fallback", Value: true},
	)
	h.logger.Error(ctx, "serving fallback twiml", err)
	h.respondWithTwiML(c, h.voiceProcessor.Fallback(ctx, kind))
}
