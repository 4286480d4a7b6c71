package phonenumber

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ttacon/libphonenumber"
)

var (
	ErrEmptyNumber   = errors.New("raw number is empty")
	ErrNotANumber    = errors.New("caller is not a phone number")
	ErrNoCountryCode = errors.New("country calling code could not be determined")
)

// PhoneNumber contains the metadata of a caller number
type PhoneNumber struct {
	RawNumber   string
	E164Format  string
	CountryCode string
	IsSipUser   bool
	IsClient    bool
}

// NewPhoneNumber returns the PhoneNumber struct with the given raw number
func NewPhoneNumber(number string) PhoneNumber {
	return PhoneNumber{
		RawNumber: strings.TrimSpace(number),
	}
}

// Parse fills the number's metadata. defaultRegion is only consulted for
// numbers that are not written in international format.
func (pn *PhoneNumber) Parse(defaultRegion string) error {
	if pn.RawNumber == "" {
		return ErrEmptyNumber
	}
	lower := strings.ToLower(pn.RawNumber)
	switch {
	case strings.HasPrefix(lower, "sip:"):
		pn.IsSipUser = true
		return ErrNotANumber
	case strings.HasPrefix(lower, "client:"):
		pn.IsClient = true
		return ErrNotANumber
	}

	if err := pn.parseWithLibPhonenumber(defaultRegion); err == nil {
		return nil
	}
	return pn.populateFromDigits()
}

func (pn *PhoneNumber) parseWithLibPhonenumber(defaultRegion string) error {
	number, err := libphonenumber.Parse(pn.RawNumber, defaultRegion)
	if err != nil {
		return err
	}
	if number.GetCountryCode() == 0 {
		return ErrNoCountryCode
	}
	pn.CountryCode = strconv.Itoa(int(number.GetCountryCode()))
	pn.E164Format = libphonenumber.Format(number, libphonenumber.E164)
	return nil
}

// populateFromDigits handles numbers libphonenumber rejects (too short,
// unknown numbering plan) when they are still written with a + or 00 prefix.
// Only E164Format is filled; CountryCode stays empty.
func (pn *PhoneNumber) populateFromDigits() error {
	raw := pn.RawNumber
	switch {
	case strings.HasPrefix(raw, "+"):
		raw = raw[1:]
	case strings.HasPrefix(raw, "00"):
		raw = raw[2:]
	default:
		return ErrNoCountryCode
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if r == ' ' || r == '-' || r == '(' || r == ')' || r == '.' {
			return -1
		}
		return 'x'
	}, raw)
	if digits == "" || strings.ContainsRune(digits, 'x') {
		return ErrNotANumber
	}
	pn.E164Format = "+" + digits
	return nil
}

// Digits returns the E.164 form without the leading +.
func (pn *PhoneNumber) Digits() string {
	return strings.TrimPrefix(pn.E164Format, "+")
}
