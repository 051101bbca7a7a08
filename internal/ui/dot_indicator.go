package ui

import (
	"io"
	"os"
	"strings"

	"github.com/temirov/colorline/internal/utils"
)

const (
	// MaximumDotCount bounds a single visual run of the dot indicator.
	MaximumDotCount = 100

	indicatorTagConstant            = "[INFO] "
	indicatorDotConstant            = "."
	carriageReturnConstant          = "\r"
	indicatorClearCharacterConstant = " "
)

var indicatorClearSequence = carriageReturnConstant +
	strings.Repeat(indicatorClearCharacterConstant, len(indicatorTagConstant)+MaximumDotCount) +
	carriageReturnConstant

// DotIndicator redraws a single line of accumulated dots in place. It keeps no state of its
// own: every call site owns its counter.
type DotIndicator struct {
	writer io.Writer
}

// NewDotIndicator binds an indicator to the provided writer. A nil writer selects standard output.
func NewDotIndicator(writer io.Writer) *DotIndicator {
	if writer == nil {
		writer = os.Stdout
	}
	return &DotIndicator{writer: utils.NewFlushingWriter(writer)}
}

// Tick advances the caller's counter and redraws the line when active is true. Inactive ticks
// leave the counter untouched and write nothing, so a paused run can be resumed later.
//
// The counter stays within [1, MaximumDotCount] after an active tick: passing the maximum
// clears the line and starts a new run with a single dot.
func (indicator *DotIndicator) Tick(color Color, active bool, counter *int) {
	if !active || counter == nil || indicator == nil || indicator.writer == nil {
		return
	}

	*counter++
	if *counter > MaximumDotCount {
		_, _ = io.WriteString(indicator.writer, indicatorClearSequence)
		*counter = 1
	}
	if *counter < 1 {
		*counter = 1
	}

	redraw := carriageReturnConstant + color.painter().Sprint(indicatorTagConstant+strings.Repeat(indicatorDotConstant, *counter))
	_, _ = io.WriteString(indicator.writer, redraw)
}

// Finish ends the current run by moving to a fresh line and zeroing the counter. It writes
// nothing when the counter has not fired.
func (indicator *DotIndicator) Finish(counter *int) {
	if counter == nil || indicator == nil || indicator.writer == nil {
		return
	}
	if *counter > 0 {
		_, _ = io.WriteString(indicator.writer, lineTerminatorConstant)
	}
	*counter = 0
}

// Tick drives a dot indicator on standard output.
func Tick(color Color, active bool, counter *int) {
	NewDotIndicator(os.Stdout).Tick(color, active, counter)
}
