package heartbeat

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/temirov/colorline/internal/ui"
	"github.com/temirov/colorline/internal/utils"
)

const (
	nonPositiveCountMessageConstant    = "dots requires a positive tick count"
	negativeIntervalMessageConstant    = "dots requires a non-negative interval"
	indicatorStartedLogMessageConstant = "dot indicator started"
	indicatorPausedLogMessageConstant  = "dot indicator inactive; nothing drawn"
	indicatorStoppedLogMessageConstant = "dot indicator stopped"
	logFieldColorConstant              = "color"
	logFieldCountConstant              = "count"
	logFieldIntervalConstant           = "interval"
	logFieldTicksConstant              = "ticks"
)

var (
	errNonPositiveCount = errors.New(nonPositiveCountMessageConstant)
	errNegativeInterval = errors.New(negativeIntervalMessageConstant)
)

// RunOptions configures a single indicator run.
type RunOptions struct {
	Color    ui.Color
	Count    int
	Interval time.Duration
	Active   bool
}

// Service draws dot-indicator runs to a writer.
type Service struct {
	logger    *zap.Logger
	indicator *ui.DotIndicator
}

// NewService constructs a Service writing to output.
func NewService(logger *zap.Logger, output io.Writer) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger, indicator: ui.NewDotIndicator(output)}
}

// Run ticks the indicator Count times, Interval apart, then finishes the line. An inactive run
// draws nothing. Cancellation stops between ticks and returns the context error after the
// line is finished.
func (service *Service) Run(executionContext context.Context, options RunOptions) error {
	if !options.Active {
		service.logger.Debug(indicatorPausedLogMessageConstant)
		return nil
	}

	if options.Count <= 0 {
		return errNonPositiveCount
	}
	if options.Interval < 0 {
		return errNegativeInterval
	}

	service.logger.Debug(
		indicatorStartedLogMessageConstant,
		zap.String(logFieldColorConstant, options.Color.String()),
		zap.Int(logFieldCountConstant, options.Count),
		zap.Duration(logFieldIntervalConstant, options.Interval),
	)

	counter := 0
	ticksDrawn := 0
	defer func() {
		service.indicator.Finish(&counter)
		service.logger.Debug(indicatorStoppedLogMessageConstant, zap.Int(logFieldTicksConstant, ticksDrawn))
	}()

	for tickIndex := 0; tickIndex < options.Count; tickIndex++ {
		if tickIndex > 0 {
			if waitError := utils.WaitInterval(executionContext, options.Interval); waitError != nil {
				return waitError
			}
		} else if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}
		service.indicator.Tick(options.Color, true, &counter)
		ticksDrawn++
	}

	return nil
}
