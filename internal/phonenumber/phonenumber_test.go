package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneNumber_Parse(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		defaultRegion   string
		wantErr         error
		wantCountryCode string
		wantE164        string
	}{
		{
			name:            "saudi mobile in international format",
			raw:             "+966501234567",
			wantCountryCode: "966",
			wantE164:        "+966501234567",
		},
		{
			name:            "north american number with spacing",
			raw:             "+1 415 555 0100",
			wantCountryCode: "1",
			wantE164:        "+14155550100",
		},
		{
			name:            "national format resolved with default region",
			raw:             "0501234567",
			defaultRegion:   "SA",
			wantCountryCode: "966",
			wantE164:        "+966501234567",
		},
		{
			name:     "too short for libphonenumber falls back to digits",
			raw:      "+9665",
			wantE164: "+9665",
		},
		{
			name:     "international dialling prefix falls back to digits",
			raw:      "00971501234567",
			wantE164: "+971501234567",
		},
		{
			name:    "empty number",
			raw:     "  ",
			wantErr: ErrEmptyNumber,
		},
		{
			name:    "sip user",
			raw:     "sip:alice@example.com",
			wantErr: ErrNotANumber,
		},
		{
			name:    "browser client",
			raw:     "client:agent",
			wantErr: ErrNotANumber,
		},
		{
			name:    "anonymous caller",
			raw:     "anonymous",
			wantErr: ErrNoCountryCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pn := NewPhoneNumber(tt.raw)
			err := pn.Parse(tt.defaultRegion)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCountryCode, pn.CountryCode)
			assert.Equal(t, tt.wantE164, pn.E164Format)
		})
	}
}

func TestPhoneNumber_Digits(t *testing.T) {
	pn := NewPhoneNumber("+966501234567")
	require.NoError(t, pn.Parse(""))
	assert.Equal(t, "966501234567", pn.Digits())
}
