package processor

import (
	"sort"
	"strings"

	"callcenter-webhooks/internal/phonenumber"
)

const defaultVoice = "alice"

// Locale is the phrase catalog spoken to a caller in one language.
type Locale struct {
	Name     string
	Voice    string
	Language string

	Greeting      string
	ServiceOnline string
	RecordPrompt  string
	NoRecording   string

	RecordingNone     string
	RecordingShort    string
	RecordingReceived string
	RecordingLong     string
	ClosingThanks     string
	Goodbye           string

	Apology     string
	ThankYou    string
	TestMessage string
}

var arabic = Locale{
	Name:     "arabic",
	Voice:    defaultVoice,
	Language: "ar",

	Greeting:      "أهلاً وسهلاً بكم في مركز الاتصال الذكي",
	ServiceOnline: "النظام يعمل بنجاح وجاهز لاستقبال رسالتكم",
	RecordPrompt:  "يرجى تسجيل رسالتكم بعد الصوت",
	NoRecording:   "لم نستلم تسجيل. شكراً لاتصالكم",

	RecordingNone:     "لم نستلم أي تسجيل صوتي",
	RecordingShort:    "رسالتكم قصيرة. شكراً لكم",
	RecordingReceived: "شكراً لكم. تم استلام رسالتكم بنجاح",
	RecordingLong:     "شكراً لكم. رسالتكم طويلة وسيتم مراجعتها والرد عليكم قريباً",
	ClosingThanks:     "نشكركم على اتصالكم بمركز الاتصال الذكي",
	Goodbye:           "مع السلامة",

	Apology:     "عذراً، حدث خطأ تقني في النظام",
	ThankYou:    "شكراً لكم",
	TestMessage: "هذا اختبار للنظام الصوتي. النظام يعمل بنجاح",
}

var english = Locale{
	Name:     "english",
	Voice:    defaultVoice,
	Language: "en-US",

	Greeting:      "Hello and welcome to the Smart Call Center",
	ServiceOnline: "The system is online and ready to take your message",
	RecordPrompt:  "Please record your message after the tone",
	NoRecording:   "We did not receive a recording. Thank you for calling",

	RecordingNone:     "No recording was received",
	RecordingShort:    "Your message was very short. Thank you",
	RecordingReceived: "Thank you. Your message was received successfully",
	RecordingLong:     "Thank you. Your message is long, we will review it and get back to you soon",
	ClosingThanks:     "Thank you for calling the Smart Call Center",
	Goodbye:           "Goodbye",

	Apology:     "Sorry, a technical error occurred",
	ThankYou:    "Thank you",
	TestMessage: "This is a test of the voice system. The system is working",
}

// defaultLocale answers callers whose country is unknown or unmapped.
var defaultLocale = func() Locale {
	l := arabic
	l.Name = "default"
	l.Greeting = "السلام عليكم ومرحباً بكم في مركز الاتصال الذكي"
	return l
}()

// localesByCountryCode maps country calling codes to the caller's locale.
var localesByCountryCode = map[string]Locale{
	"966": arabic, // Saudi Arabia
	"971": arabic, // United Arab Emirates
	"965": arabic, // Kuwait
	"974": arabic, // Qatar
	"973": arabic, // Bahrain
	"968": arabic, // Oman
	"962": arabic, // Jordan
	"20":  arabic, // Egypt
	"1":   english,
	"44":  english,
	"61":  english,
	"353": english,
}

// countryCodesByLength lists mapped codes longest first for prefix matching.
var countryCodesByLength = func() []string {
	codes := make([]string, 0, len(localesByCountryCode))
	for code := range localesByCountryCode {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) > len(codes[j])
		}
		return codes[i] < codes[j]
	})
	return codes
}()

// LocaleFor selects the locale for a caller number.
func LocaleFor(from, defaultRegion string) Locale {
	pn := phonenumber.NewPhoneNumber(from)
	if err := pn.Parse(defaultRegion); err != nil {
		return defaultLocale
	}
	if pn.CountryCode != "" {
		if locale, ok := localesByCountryCode[pn.CountryCode]; ok {
			return locale
		}
		return defaultLocale
	}

	digits := pn.Digits()
	for _, code := range countryCodesByLength {
		if strings.HasPrefix(digits, code) {
			return localesByCountryCode[code]
		}
	}
	return defaultLocale
}
