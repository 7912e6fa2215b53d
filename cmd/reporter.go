package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inovacc/tuislider/internal/release"
)

// stepReporter is a release.Reporter that must be closed once the pipeline returns
type stepReporter interface {
	release.Reporter
	Close()
}

// newStepReporter shows a spinner while steps run when stderr is a terminal,
// and plain status lines otherwise
func newStepReporter(cmd *cobra.Command) stepReporter {
	if !flags.Verbose && !flags.DryRun && cmd.ErrOrStderr() == io.Writer(os.Stderr) && term.IsTerminal(int(os.Stderr.Fd())) {
		return newSpinnerReporter(os.Stderr)
	}

	return lineReporter{WriterReporter: release.WriterReporter{Out: cmd.OutOrStdout()}}
}

type lineReporter struct {
	release.WriterReporter
}

func (lineReporter) Close() {}

func stepLabel(step release.Step) string {
	if step.Description == "" {
		return step.Name
	}

	return step.Description
}

type stepStartedMsg struct{ label string }

type stepFinishedMsg struct{}

type stepQuitMsg struct{}

type stepModel struct {
	spinner spinner.Model
	current string
}

func newStepModel() stepModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinStyle

	return stepModel{spinner: s}
}

func (m stepModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepStartedMsg:
		m.current = msg.label
	case stepFinishedMsg:
		m.current = ""
	case stepQuitMsg:
		m.current = ""
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m stepModel) View() string {
	if m.current == "" {
		return ""
	}

	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.current)
}

// spinnerReporter drives a bubbletea program from the pipeline goroutine.
// Finished steps are printed above the spinner line.
type spinnerReporter struct {
	program *tea.Program
	done    chan struct{}
}

func newSpinnerReporter(out io.Writer) *spinnerReporter {
	r := &spinnerReporter{
		program: tea.NewProgram(newStepModel(), tea.WithInput(nil), tea.WithOutput(out), tea.WithoutSignalHandler()),
		done:    make(chan struct{}),
	}

	go func() {
		defer close(r.done)

		_, _ = r.program.Run()
	}()

	return r
}

func (r *spinnerReporter) StepStarted(step release.Step) {
	r.program.Send(stepStartedMsg{label: stepLabel(step)})
}

func (r *spinnerReporter) StepSucceeded(step release.Step, elapsed time.Duration) {
	r.program.Send(stepFinishedMsg{})
	r.program.Println(okStyle.Render("✅ "+stepLabel(step)) + dimStyle.Render(fmt.Sprintf(" (%s)", elapsed.Round(time.Millisecond))))
}

func (r *spinnerReporter) StepFailed(step release.Step, err error) {
	r.program.Send(stepFinishedMsg{})
	r.program.Println(errStyle.Render("❌ "+stepLabel(step)+": ") + err.Error())
}

func (r *spinnerReporter) StepPlanned(step release.Step) {
	r.program.Println(dimStyle.Render("• " + stepLabel(step)))
}

func (r *spinnerReporter) Close() {
	r.program.Send(stepQuitMsg{})
	<-r.done
}
