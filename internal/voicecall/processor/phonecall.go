package processor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"callcenter-webhooks/internal/observability"
)

// IncomingCall carries the fields of a call-start callback.
type IncomingCall struct {
	CallSid   string
	From      string
	To        string
	Direction string
}

// CompletedRecording carries the fields of a recording-complete callback.
type CompletedRecording struct {
	CallSid           string
	From              string
	RecordingSid      string
	RecordingURL      string
	RecordingDuration string
}

// CallStatusUpdate carries the fields of a call-status callback.
type CallStatusUpdate struct {
	CallSid      string
	Status       string
	CallDuration string
	From         string
	To           string
}

// AnswerCall greets the caller in their locale and asks for a voicemail.
func (v *VoiceCallProcessor) AnswerCall(ctx context.Context, call IncomingCall) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: call.CallSid},
		observability.Field{Key: "from", Value: call.From},
		observability.Field{Key: "to", Value: call.To},
		observability.Field{Key: "direction", Value: call.Direction},
	)

	sid := strings.TrimSpace(call.CallSid)
	if sid == "" || sid == "unknown" {
		v.logger.Warn(ctx, "call-start callback without call sid")
		return "", ErrMissingCallSid
	}

	locale := LocaleFor(call.From, v.defaultRegion)
	ctx = observability.WithFields(ctx, observability.Field{Key: "locale", Value: locale.Name})

	doc, err := render(
		say(locale, locale.Greeting),
		pause(2),
		say(locale, locale.ServiceOnline),
		pause(1),
		say(locale, locale.RecordPrompt),
		record(),
		say(locale, locale.NoRecording),
		hangup(),
	)
	if err != nil {
		v.logger.Error(ctx, "failed to build welcome twiml", err)
		return "", err
	}

	v.logger.Info(ctx, "answering call")
	return doc, nil
}

// ReplyToRecording acknowledges a voicemail with a phrase chosen by its length.
func (v *VoiceCallProcessor) ReplyToRecording(ctx context.Context, rec CompletedRecording) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: rec.CallSid},
		observability.Field{Key: "recording_sid", Value: rec.RecordingSid},
		observability.Field{Key: "recording_url", Value: rec.RecordingURL},
		observability.Field{Key: "recording_duration", Value: rec.RecordingDuration},
	)

	seconds, err := ParseRecordingDuration(rec.RecordingDuration)
	if err != nil {
		v.logger.Error(ctx, "failed to parse recording duration", err)
		return "", err
	}

	locale := LocaleFor(rec.From, v.defaultRegion)
	category := ClassifyRecording(seconds)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "locale", Value: locale.Name},
		observability.Field{Key: "recording_category", Value: string(category)},
	)

	doc, err := render(
		say(locale, category.Phrase(locale)),
		pause(1),
		say(locale, locale.ClosingThanks),
		say(locale, locale.Goodbye),
		hangup(),
	)
	if err != nil {
		v.logger.Error(ctx, "failed to build recording twiml", err)
		return "", err
	}

	v.logger.Info(ctx, "recording received")
	return doc, nil
}

// RecordCallStatus logs the final outcome of a call. The callback answer
// does not depend on the status.
func (v *VoiceCallProcessor) RecordCallStatus(ctx context.Context, update CallStatusUpdate) CallStatus {
	status := ParseCallStatus(update.Status)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: update.CallSid},
		observability.Field{Key: "call_status", Value: update.Status},
		observability.Field{Key: "call_duration", Value: update.CallDuration},
		observability.Field{Key: "final", Value: status.IsFinal()},
	)

	switch status {
	case StatusCompleted:
		v.logger.Info(ctx, "call completed")
	case StatusFailed:
		v.logger.Error(ctx, "call failed", fmt.Errorf("call %s ended with status %s", update.CallSid, update.Status))
	case StatusBusy, StatusNoAnswer, StatusCanceled:
		v.logger.Warn(ctx, "call not connected")
	case StatusUnknown:
		v.logger.Info(ctx, "call status not recognised")
	default:
		v.logger.Info(ctx, "call status update")
	}
	return status
}

// TestVoice is a fixed sample document for checking the provider setup.
func (v *VoiceCallProcessor) TestVoice(ctx context.Context) (string, error) {
	doc, err := render(
		say(defaultLocale, defaultLocale.Greeting),
		pause(1),
		say(defaultLocale, defaultLocale.TestMessage),
		hangup(),
	)
	if err != nil {
		v.logger.Error(ctx, "failed to build test twiml", err)
		return "", err
	}
	return doc, nil
}

// FallbackKind selects the apology served when a document cannot be built.
type FallbackKind int

const (
	FallbackApology FallbackKind = iota
	FallbackThankYou
)

// Fallback always returns a playable document.
func (v *VoiceCallProcessor) Fallback(ctx context.Context, kind FallbackKind) string {
	message := defaultLocale.Apology
	if kind == FallbackThankYou {
		message = defaultLocale.ThankYou
	}

	doc, err := render(say(defaultLocale, message), hangup())
	if err != nil {
		v.logger.Error(ctx, "failed to build fallback twiml", err)
		return emergencyTwiML
	}
	return doc
}

// ParseRecordingDuration reads the provider's duration field in whole seconds.
// An absent value means nothing was recorded; negatives are clamped to zero.
func ParseRecordingDuration(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRecordingDuration, raw)
	}
	if seconds < 0 {
		return 0, nil
	}
	return seconds, nil
}
