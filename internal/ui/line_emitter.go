package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/temirov/colorline/internal/utils"
)

const (
	tagOpeningDelimiterConstant = "["
	tagClosingDelimiterConstant = "] "
	lineTerminatorConstant      = "\n"
)

// LineEmitter writes tagged, colorized, newline-terminated messages.
type LineEmitter struct {
	writer io.Writer
}

// NewLineEmitter binds an emitter to the provided writer. A nil writer selects standard output.
func NewLineEmitter(writer io.Writer) *LineEmitter {
	if writer == nil {
		writer = os.Stdout
	}
	return &LineEmitter{writer: utils.NewFlushingWriter(writer)}
}

// Emit writes "<escape>[<tag>] <message><reset>\n" in a single write.
//
// Without arguments the payload is rendered in its natural text form, so a string containing a
// percent sign is written verbatim. With arguments the payload is a printf-style template.
// Write failures are ignored.
func (emitter *LineEmitter) Emit(color Color, tag string, payload any, arguments ...any) {
	if emitter == nil || emitter.writer == nil {
		return
	}
	_, _ = io.WriteString(emitter.writer, Render(color, tag, payload, arguments...))
}

// Emit writes a tagged line to standard output.
func Emit(color Color, tag string, payload any, arguments ...any) {
	NewLineEmitter(os.Stdout).Emit(color, tag, payload, arguments...)
}

// Render composes the full line written by Emit, including the trailing newline.
func Render(color Color, tag string, payload any, arguments ...any) string {
	labeledMessage := tagOpeningDelimiterConstant + tag + tagClosingDelimiterConstant + FormatPayload(payload, arguments...)
	return color.painter().Sprint(labeledMessage) + lineTerminatorConstant
}

// FormatPayload renders the message portion of a line.
//
// Mismatched verbs and arguments follow fmt conventions: the offending verb is replaced by an
// inline marker such as %!d(string=x), %!s(MISSING) or %!(EXTRA int=1). No error is reported.
func FormatPayload(payload any, arguments ...any) string {
	if len(arguments) == 0 {
		return renderValue(payload)
	}
	return fmt.Sprintf(renderValue(payload), arguments...)
}

func renderValue(payload any) string {
	switch typedPayload := payload.(type) {
	case nil:
		return ""
	case string:
		return typedPayload
	default:
		return fmt.Sprint(typedPayload)
	}
}
