package script

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/temirov/colorline/internal/ui"
)

const (
	scriptStartedLogMessageConstant      = "script started"
	scriptCompletedLogMessageConstant    = "script completed"
	operationCompletedLogMessageConstant = "script step completed"
	operationFailedLogMessageConstant    = "script step failed"
	operationFailureTemplateConstant     = "script step %d (%s) failed: %w"
	logFieldStepCountConstant            = "steps"
	logFieldStepNumberConstant           = "step"
	logFieldOperationConstant            = "operation"
	logFieldOpenCountersConstant         = "open_counters"
)

// Environment holds the shared output and named counters a script operates on.
type Environment struct {
	emitter   *ui.LineEmitter
	indicator *ui.DotIndicator
	counters  map[string]*int
}

// NewEnvironment creates an Environment writing to output.
func NewEnvironment(output io.Writer) *Environment {
	return &Environment{
		emitter:   ui.NewLineEmitter(output),
		indicator: ui.NewDotIndicator(output),
		counters:  map[string]*int{},
	}
}

// CounterValue reports the current value of a named counter.
func (environment *Environment) CounterValue(name string) int {
	counter, exists := environment.counters[resolveCounterName(name)]
	if !exists {
		return 0
	}
	return *counter
}

func (environment *Environment) counter(name string) *int {
	counter, exists := environment.counters[name]
	if !exists {
		counter = new(int)
		environment.counters[name] = counter
	}
	return counter
}

// finishOpenCounters terminates the shared indicator line once and resets every open run.
func (environment *Environment) finishOpenCounters() []string {
	counterNames := make([]string, 0, len(environment.counters))
	for counterName := range environment.counters {
		counterNames = append(counterNames, counterName)
	}
	sort.Strings(counterNames)

	openCounterNames := []string{}
	for _, counterName := range counterNames {
		counter := environment.counters[counterName]
		if *counter <= 0 {
			continue
		}
		if len(openCounterNames) == 0 {
			environment.indicator.Finish(counter)
		} else {
			*counter = 0
		}
		openCounterNames = append(openCounterNames, counterName)
	}
	return openCounterNames
}

// Executor runs script operations sequentially against an Environment.
type Executor struct {
	logger      *zap.Logger
	environment *Environment
}

// NewExecutor constructs an Executor.
func NewExecutor(logger *zap.Logger, environment *Environment) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{logger: logger, environment: environment}
}

// Execute runs operations in order and stops at the first failure. Indicator runs still open
// when the script ends are finished so the terminal is left on a fresh line.
func (executor *Executor) Execute(executionContext context.Context, operations []Operation) error {
	executor.logger.Debug(scriptStartedLogMessageConstant, zap.Int(logFieldStepCountConstant, len(operations)))
	defer func() {
		openCounterNames := executor.environment.finishOpenCounters()
		executor.logger.Debug(scriptCompletedLogMessageConstant, zap.Strings(logFieldOpenCountersConstant, openCounterNames))
	}()

	for operationIndex, operation := range operations {
		stepNumber := operationIndex + 1
		if executeError := operation.Execute(executionContext, executor.environment); executeError != nil {
			executor.logger.Debug(
				operationFailedLogMessageConstant,
				zap.Int(logFieldStepNumberConstant, stepNumber),
				zap.String(logFieldOperationConstant, string(operation.Name())),
				zap.Error(executeError),
			)
			return fmt.Errorf(operationFailureTemplateConstant, stepNumber, operation.Name(), executeError)
		}
		executor.logger.Debug(
			operationCompletedLogMessageConstant,
			zap.Int(logFieldStepNumberConstant, stepNumber),
			zap.String(logFieldOperationConstant, string(operation.Name())),
		)
	}

	return nil
}
