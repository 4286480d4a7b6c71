package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRecording(t *testing.T) {
	tests := []struct {
		seconds int
		want    RecordingCategory
	}{
		{-1, RecordingNone},
		{0, RecordingNone},
		{1, RecordingShort},
		{2, RecordingShort},
		{3, RecordingMedium},
		{7, RecordingMedium},
		{8, RecordingLong},
		{3600, RecordingLong},
	}

	for _, tt := range tests {
		if got := ClassifyRecording(tt.seconds); got != tt.want {
			t.Errorf("ClassifyRecording(%d) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestParseCallStatus(t *testing.T) {
	assert.Equal(t, StatusCompleted, ParseCallStatus("completed"))
	assert.Equal(t, StatusNoAnswer, ParseCallStatus(" No-Answer "))
	assert.Equal(t, StatusInProgress, ParseCallStatus("in-progress"))
	assert.Equal(t, StatusUnknown, ParseCallStatus("unknown"))
	assert.Equal(t, StatusUnknown, ParseCallStatus("hung-up"))
}

func TestCallStatus_IsFinal(t *testing.T) {
	for _, s := range []CallStatus{StatusCompleted, StatusBusy, StatusFailed, StatusNoAnswer, StatusCanceled} {
		assert.True(t, s.IsFinal(), s)
	}
	for _, s := range []CallStatus{StatusQueued, StatusRinging, StatusInProgress, StatusUnknown} {
		assert.False(t, s.IsFinal(), s)
	}
}

func TestParseRecordingDuration(t *testing.T) {
	seconds, err := ParseRecordingDuration("12")
	assert.NoError(t, err)
	assert.Equal(t, 12, seconds)

	seconds, err = ParseRecordingDuration("")
	assert.NoError(t, err)
	assert.Zero(t, seconds)

	_, err = ParseRecordingDuration("1.5")
	assert.ErrorIs(t, err, ErrInvalidRecordingDuration)
}

func TestRecordingCategory_Phrase(t *testing.T) {
	assert.Equal(t, english.RecordingNone, RecordingNone.Phrase(english))
	assert.Equal(t, english.RecordingShort, RecordingShort.Phrase(english))
	assert.Equal(t, english.RecordingReceived, RecordingMedium.Phrase(english))
	assert.Equal(t, english.RecordingLong, RecordingLong.Phrase(english))
}
