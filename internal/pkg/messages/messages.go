// Package messages turns structured errors into user facing text in the
// supported languages
package messages

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// SimplifiedChinese is the zh-Hans tag
var SimplifiedChinese = language.MustParse("zh-Hans")

var supported = []language.Tag{language.English, SimplifiedChinese}

var matcher = language.NewMatcher(supported)

// argKeys names the metadata entries substituted into each reason's message
var argKeys = map[string][]string{
	chargen.ReasonValueUnavailable:      {"value"},
	chargen.ReasonIncompleteAssignment:  {"missing"},
	chargen.ReasonInvalidBonusSelection: {"plus2", "plus1"},
	chargen.ReasonReferenceLoadFailed:   {"source"},
}

// Supported returns the supported language tags, default first
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag
func Default() language.Tag {
	return language.English
}

// ParseTag resolves a user supplied language to a supported tag
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}
	tag, _, confidence := matcher.Match(language.Make(value))
	if confidence == language.No {
		return Default(), false
	}
	base, _ := tag.Base()
	for _, t := range supported {
		if b, _ := t.Base(); b == base {
			return t, true
		}
	}
	return Default(), false
}

// Printer returns a message printer for tag
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Describe renders err for a user. Errors with a known reason use the
// translated text; anything else falls back to the error message.
func Describe(tag language.Tag, err error) string {
	if err == nil {
		return ""
	}

	p := Printer(tag)
	reason := errors.GetReason(err)
	if reason == "" || !known[reason] {
		if msg := errors.GetMessage(err); msg != "" {
			return msg
		}
		return err.Error()
	}

	if reason == chargen.ReasonValidationFailed {
		return describeValidation(p, err)
	}

	meta := errors.GetMeta(err)
	keys := argKeys[reason]
	args := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		args = append(args, meta[k])
	}
	return p.Sprintf(reason, args...)
}

func describeValidation(p *message.Printer, err error) string {
	var b strings.Builder
	b.WriteString(p.Sprintf(chargen.ReasonValidationFailed))
	fields := errors.FieldErrors(err)
	for _, name := range sortedKeys(fields) {
		b.WriteString("\n  ")
		if known[fieldKey(name)] {
			b.WriteString(p.Sprintf(fieldKey(name)))
		} else {
			b.WriteString(name)
		}
		b.WriteString(": ")
		b.WriteString(strings.Join(fields[name], "; "))
	}
	return b.String()
}

func fieldKey(name string) string {
	return "field." + name
}
