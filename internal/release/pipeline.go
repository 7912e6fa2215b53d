package release

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Step is one named unit of work in a Pipeline
type Step struct {
	Name        string
	Description string
	Run         func(ctx context.Context) error
}

// Reporter receives step progress
type Reporter interface {
	StepStarted(step Step)
	StepSucceeded(step Step, elapsed time.Duration)
	StepFailed(step Step, err error)
	StepPlanned(step Step)
}

// Pipeline runs steps in order and halts at the first failure
type Pipeline struct {
	Steps    []Step
	Reporter Reporter
	DryRun   bool
	Logger   *slog.Logger
}

// Add appends a step and returns the pipeline
func (p *Pipeline) Add(name, description string, run func(ctx context.Context) error) *Pipeline {
	p.Steps = append(p.Steps, Step{Name: name, Description: description, Run: run})
	return p
}

// Names lists step names in execution order
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		names[i] = s.Name
	}

	return names
}

// Run executes every step. In dry-run mode steps are only reported.
func (p *Pipeline) Run(ctx context.Context) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reporter := p.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	for _, step := range p.Steps {
		if p.DryRun {
			reporter.StepPlanned(step)
			continue
		}

		if err := ctx.Err(); err != nil {
			return &StepError{Step: step.Name, Err: err}
		}

		reporter.StepStarted(step)
		logger.Debug("step started", slog.String("step", step.Name))

		start := time.Now()

		if err := step.Run(ctx); err != nil {
			reporter.StepFailed(step, err)
			logger.Debug("step failed", slog.String("step", step.Name), slog.String("error", err.Error()))

			return &StepError{Step: step.Name, Err: err}
		}

		reporter.StepSucceeded(step, time.Since(start))
	}

	return nil
}

// NopReporter discards progress
type NopReporter struct{}

func (NopReporter) StepStarted(Step)                  {}
func (NopReporter) StepSucceeded(Step, time.Duration) {}
func (NopReporter) StepFailed(Step, error)            {}
func (NopReporter) StepPlanned(Step)                  {}

// WriterReporter prints one status line per step
type WriterReporter struct {
	Out io.Writer
}

func (r WriterReporter) StepStarted(Step) {}

func (r WriterReporter) StepSucceeded(step Step, elapsed time.Duration) {
	_, _ = fmt.Fprintf(r.Out, "✅ %s (%s)\n", describe(step), elapsed.Round(time.Millisecond))
}

func (r WriterReporter) StepFailed(step Step, err error) {
	_, _ = fmt.Fprintf(r.Out, "❌ %s: %v\n", describe(step), err)
}

func (r WriterReporter) StepPlanned(step Step) {
	_, _ = fmt.Fprintf(r.Out, "• %s\n", describe(step))
}

func describe(step Step) string {
	if step.Description == "" {
		return step.Name
	}

	return step.Description
}
