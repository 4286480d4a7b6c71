package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"

	"callcenter-webhooks/internal/observability"
	"callcenter-webhooks/internal/voicecall/processor"
)

// VoiceCallProcessor defines the call-flow operations the handlers delegate to
type VoiceCallProcessor interface {
	AnswerCall(ctx context.Context, call processor.IncomingCall) (string, error)
	ReplyToRecording(ctx context.Context, rec processor.CompletedRecording) (string, error)
	RecordCallStatus(ctx context.Context, update processor.CallStatusUpdate) processor.CallStatus
	TestVoice(ctx context.Context) (string, error)
	Fallback(ctx context.Context, kind processor.FallbackKind) string
}

type Handler struct {
	voiceProcessor VoiceCallProcessor
	logger         *observability.Logger
}

func New(voiceProcessor VoiceCallProcessor, logger *observability.Logger) Handler {
	return Handler{
		voiceProcessor: voiceProcessor,
		logger:         logger,
	}
}
