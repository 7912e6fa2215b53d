package tasks

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/inovacc/tuislider/internal/release"
)

// Runner executes tasks from a Taskfile
type Runner struct {
	Taskfile *Taskfile
	Dir      string   // Working directory for commands
	Shell    string   // Defaults to sh
	Env      []string // Appended to the process environment
	DryRun   bool     // Print commands instead of running them
	Yes      bool     // Answer yes to every confirmation
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Reporter release.Reporter
	Logger   *slog.Logger

	// Confirm asks a yes/no question; it reads Stdin when nil
	Confirm func(prompt string) (bool, error)
}

// Bind maps positional args onto the params of the named task
func (r *Runner) Bind(name string, args []string) (map[string]string, error) {
	t, ok := r.Taskfile.Task(name)
	if !ok {
		return nil, &UnknownTaskError{Name: name}
	}

	if len(args) > len(t.Params) {
		return nil, fmt.Errorf("task %q takes %d argument(s), got %d", name, len(t.Params), len(args))
	}

	vars := make(map[string]string, len(t.Params))

	for i, p := range t.Params {
		if i >= len(args) {
			return nil, &MissingParamError{Task: name, Param: p}
		}

		vars[p] = args[i]
	}

	return vars, nil
}

// Render expands the task commands and confirm prompt with vars
func Render(t *Task, vars map[string]string) (commands []string, confirm string, err error) {
	for _, p := range t.Params {
		if _, ok := vars[p]; !ok {
			return nil, "", &MissingParamError{Task: t.Name, Param: p}
		}
	}

	render := func(text string) (string, error) {
		tmpl, err := template.New(t.Name).
			Funcs(sprig.TxtFuncMap()).
			Option("missingkey=error").
			Parse(text)
		if err != nil {
			return "", fmt.Errorf("task %q: %w", t.Name, err)
		}

		var sb strings.Builder
		if err := tmpl.Execute(&sb, vars); err != nil {
			return "", fmt.Errorf("task %q: %w", t.Name, err)
		}

		return sb.String(), nil
	}

	for _, c := range t.Commands {
		out, err := render(c)
		if err != nil {
			return nil, "", err
		}

		commands = append(commands, out)
	}

	if t.Confirm != "" {
		confirm, err = render(t.Confirm)
		if err != nil {
			return nil, "", err
		}
	}

	return commands, confirm, nil
}

type plannedTask struct {
	task     *Task
	commands []string
	confirm  string
}

// Run executes name after its dependencies. Every confirmation in the plan is
// asked before the first command runs.
func (r *Runner) Run(ctx context.Context, name string, args []string) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	vars, err := r.Bind(name, args)
	if err != nil {
		return err
	}

	order, err := r.Taskfile.Plan(name)
	if err != nil {
		return err
	}

	planned := make([]plannedTask, 0, len(order))

	for _, t := range order {
		commands, confirm, err := Render(t, vars)
		if err != nil {
			return err
		}

		planned = append(planned, plannedTask{task: t, commands: commands, confirm: confirm})
	}

	logger.Debug("task plan", slog.String("task", name), slog.Int("steps", len(planned)))

	if r.DryRun {
		r.printPlan(planned)
		return nil
	}

	for _, p := range planned {
		if p.confirm == "" || r.Yes {
			continue
		}

		ok, err := r.confirm(p.confirm)
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("task %q: %w", p.task.Name, ErrDeclined)
		}
	}

	pipeline := &release.Pipeline{Reporter: r.Reporter, Logger: logger}

	for _, p := range planned {
		pipeline.Add(p.task.Name, describe(p.task), func(ctx context.Context) error {
			return r.exec(ctx, p)
		})
	}

	return pipeline.Run(ctx)
}

func describe(t *Task) string {
	if t.Description == "" {
		return t.Name
	}

	return t.Name + ": " + t.Description
}

func (r *Runner) printPlan(planned []plannedTask) {
	out := r.Stdout
	if out == nil {
		out = os.Stdout
	}

	for _, p := range planned {
		_, _ = fmt.Fprintf(out, "# %s\n", describe(p.task))

		if p.confirm != "" {
			_, _ = fmt.Fprintf(out, "# confirm: %s\n", p.confirm)
		}

		for _, c := range p.commands {
			_, _ = fmt.Fprintf(out, "$ %s\n", c)
		}
	}
}

func (r *Runner) exec(ctx context.Context, p plannedTask) error {
	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}

	dir := r.Dir
	if p.task.Dir != "" {
		if filepath.IsAbs(p.task.Dir) {
			dir = p.task.Dir
		} else {
			dir = filepath.Join(r.Dir, p.task.Dir)
		}
	}

	for _, c := range p.commands {
		cmd := exec.CommandContext(ctx, shell, "-c", c)
		cmd.Dir = dir
		cmd.Stdin = r.Stdin
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr

		if len(r.Env) > 0 {
			cmd.Env = append(os.Environ(), r.Env...)
		}

		if err := cmd.Run(); err != nil {
			return &CommandError{Task: p.task.Name, Command: c, Err: err}
		}
	}

	return nil
}

func (r *Runner) confirm(prompt string) (bool, error) {
	if r.Confirm != nil {
		return r.Confirm(prompt)
	}

	in := r.Stdin
	if in == nil {
		in = os.Stdin
	}

	out := r.Stdout
	if out == nil {
		out = os.Stdout
	}

	return AskYesNo(in, out, prompt)
}

// AskYesNo prints prompt and reads a y/N answer; anything but y or yes is no
func AskYesNo(in io.Reader, out io.Writer, prompt string) (bool, error) {
	_, _ = fmt.Fprintf(out, "%s [y/N] ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return false, nil
		}

		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
