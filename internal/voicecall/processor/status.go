package processor

import "strings"

// CallStatus is the provider's call lifecycle status.
type CallStatus string

const (
	StatusQueued     CallStatus = "queued"
	StatusRinging    CallStatus = "ringing"
	StatusInProgress CallStatus = "in-progress"
	StatusCompleted  CallStatus = "completed"
	StatusBusy       CallStatus = "busy"
	StatusFailed     CallStatus = "failed"
	StatusNoAnswer   CallStatus = "no-answer"
	StatusCanceled   CallStatus = "canceled"
	StatusUnknown    CallStatus = "unknown"
)

var knownStatuses = map[CallStatus]struct{}{
	StatusQueued:     {},
	StatusRinging:    {},
	StatusInProgress: {},
	StatusCompleted:  {},
	StatusBusy:       {},
	StatusFailed:     {},
	StatusNoAnswer:   {},
	StatusCanceled:   {},
}

func ParseCallStatus(raw string) CallStatus {
	status := CallStatus(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := knownStatuses[status]; ok {
		return status
	}
	return StatusUnknown
}

// IsFinal reports whether no further status callbacks follow.
func (s CallStatus) IsFinal() bool {
	switch s {
	case StatusCompleted, StatusBusy, StatusFailed, StatusNoAnswer, StatusCanceled:
		return true
	}
	return false
}

// RecordingCategory buckets a voicemail by length.
type RecordingCategory string

const (
	RecordingNone   RecordingCategory = "none"
	RecordingShort  RecordingCategory = "short"
	RecordingMedium RecordingCategory = "medium"
	RecordingLong   RecordingCategory = "long"
)

const (
	shortRecordingMaxSeconds  = 2
	mediumRecordingMaxSeconds = 7
)

// ClassifyRecording: 0 none, 1-2 short, 3-7 medium, 8+ long.
func ClassifyRecording(seconds int) RecordingCategory {
	switch {
	case seconds <= 0:
		return RecordingNone
	case seconds <= shortRecordingMaxSeconds:
		return RecordingShort
	case seconds <= mediumRecordingMaxSeconds:
		return RecordingMedium
	default:
		return RecordingLong
	}
}

// Phrase returns the reply spoken for this category.
func (c RecordingCategory) Phrase(locale Locale) string {
	switch c {
	case RecordingNone:
		return locale.RecordingNone
	case RecordingShort:
		return locale.RecordingShort
	case RecordingLong:
		return locale.RecordingLong
	default:
		return locale.RecordingReceived
	}
}
