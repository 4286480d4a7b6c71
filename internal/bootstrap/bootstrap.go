package bootstrap

import (
	"callcenter-webhooks/internal/config"
	"callcenter-webhooks/internal/observability"
	"context"

	"github.com/gin-gonic/gin"

	pagesHandler "callcenter-webhooks/internal/pages/handler"
	voiceCallHandler "callcenter-webhooks/internal/voicecall/handler"
	voiceCallProcessor "callcenter-webhooks/internal/voicecall/processor"
	"callcenter-webhooks/internal/voicecall/twilio"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Logger *observability.Logger

	// Handlers
	VoiceCallHandler voiceCallHandler.Handler
	PagesHandler     pagesHandler.Handler

	// Middleware applied to provider callbacks
	CallbackMiddleware []gin.HandlerFunc
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize voice call processor and handler
	voiceCallProc := voiceCallProcessor.NewVoiceCallProcessor(cfg.Voice.DefaultRegion, logger)
	deps.VoiceCallHandler = voiceCallHandler.New(voiceCallProc, logger)

	deps.PagesHandler = pagesHandler.New(logger)

	if cfg.Twilio.SignatureValidationEnabled() {
		verifier := twilio.NewSignatureVerifier(cfg.Twilio.AuthToken, cfg.Twilio.PublicBaseURL, logger)
		deps.CallbackMiddleware = append(deps.CallbackMiddleware, verifier.Middleware())
		logger.Info(ctx, "callback signature verification enabled")
	} else {
		logger.Warn(ctx, "TWILIO_AUTH_TOKEN not set, callback signatures are not verified")
	}

	return deps, nil
}

// Cleanup releases resources held by the dependencies
func (d *Dependencies) Cleanup() {
	_ = d.Logger.Sync()
}
