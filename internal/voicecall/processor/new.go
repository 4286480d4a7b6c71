package processor

import (
	"errors"

	"callcenter-webhooks/internal/observability"
)

var (
	ErrMissingCallSid           = errors.New("call sid is missing")
	ErrInvalidRecordingDuration = errors.New("invalid recording duration")
	ErrRenderFailed             = errors.New("failed to render twiml")
)

// VoiceCallProcessor builds the TwiML answers for call-control callbacks.
// It holds no per-call state; every method depends only on its arguments.
type VoiceCallProcessor struct {
	defaultRegion string
	logger        *observability.Logger
}

func NewVoiceCallProcessor(defaultRegion string, logger *observability.Logger) *VoiceCallProcessor {
	return &VoiceCallProcessor{
		defaultRegion: defaultRegion,
		logger:        logger,
	}
}
