package processor

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/beevik/etree"
	"github.com/twilio/twilio-go/twiml"
)

// Record directive parameters for the voicemail step.
const (
	recordingCallbackPath = "/recording-callback"
	recordMaxLength       = 15
	recordTimeout         = 5
)

// emergencyTwiML is served when even the apology document cannot be rendered.
const emergencyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response><Say language="ar" voice="alice">عذراً، حدث خطأ تقني في النظام</Say><Hangup/></Response>`

func say(locale Locale, message string) *twiml.VoiceSay {
	return &twiml.VoiceSay{
		Message:  message,
		Voice:    locale.Voice,
		Language: locale.Language,
	}
}

func pause(seconds int) *twiml.VoicePause {
	return &twiml.VoicePause{Length: strconv.Itoa(seconds)}
}

func record() *twiml.VoiceRecord {
	return &twiml.VoiceRecord{
		Action:    recordingCallbackPath,
		Method:    "POST",
		MaxLength: strconv.Itoa(recordMaxLength),
		Timeout:   strconv.Itoa(recordTimeout),
		PlayBeep:  "true",
	}
}

func hangup() *twiml.VoiceHangup {
	return &twiml.VoiceHangup{}
}

// render builds a <Response> document. twiml emits attributes in map order,
// so the result is canonicalized to keep identical requests byte-identical.
func render(verbs ...twiml.Element) (string, error) {
	doc, err := twiml.Voice(verbs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return canonicalize(doc)
}

func canonicalize(doc string) (string, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromString(doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	root := tree.Root()
	if root == nil {
		return "", fmt.Errorf("%w: empty document", ErrRenderFailed)
	}
	sortAttributes(root)

	out, err := tree.WriteToString()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return out, nil
}

func sortAttributes(el *etree.Element) {
	kept := el.Attr[:0]
	for _, attr := range el.Attr {
		if attr.Value != "" {
			kept = append(kept, attr)
		}
	}
	el.Attr = kept
	sort.Slice(el.Attr, func(i, j int) bool {
		return el.Attr[i].Key < el.Attr[j].Key
	})
	for _, child := range el.ChildElements() {
		sortAttributes(child)
	}
}
