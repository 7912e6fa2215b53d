// Package tasks runs named shell tasks with dependencies declared in an HCL
// Taskfile.
//
// A Taskfile holds task blocks:
//
//	task "bump" {
//	  description = "Set the crate version"
//	  params      = ["version"]
//	  deps        = ["check-all"]
//	  commands    = ["tuislider bump {{ .version }}"]
//	}
//
// Dependencies run first, each task at most once. Commands are Go templates
// rendered with the task parameters.
package tasks

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the Taskfile looked up in the project root
const DefaultFile = "Taskfile.hcl"

//go:embed Taskfile.default.hcl
var defaultTaskfile []byte

// Task is one task block
type Task struct {
	Name        string   `hcl:"name,label"`
	Description string   `hcl:"description,optional"`
	Params      []string `hcl:"params,optional"`
	Deps        []string `hcl:"deps,optional"`
	Confirm     string   `hcl:"confirm,optional"`
	Dir         string   `hcl:"dir,optional"`
	Commands    []string `hcl:"commands,optional"`
}

// hclTaskfile is the top-level structure of a Taskfile for decoding
type hclTaskfile struct {
	Tasks []*Task `hcl:"task,block"`
}

// Taskfile is a parsed set of tasks
type Taskfile struct {
	Path  string
	Tasks []*Task

	byName map[string]*Task
}

// Load parses the Taskfile at path
func Load(path string) (*Taskfile, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse taskfile %s: %w", path, diags)
	}

	return decode(file.Body, path)
}

// Parse parses Taskfile source; filename is used in diagnostics
func Parse(src []byte, filename string) (*Taskfile, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse taskfile %s: %w", filename, diags)
	}

	return decode(file.Body, filename)
}

// Default returns the built-in Taskfile
func Default() (*Taskfile, error) {
	return Parse(defaultTaskfile, "Taskfile.default.hcl")
}

// DefaultSource is the text of the built-in Taskfile
func DefaultSource() []byte {
	return slices.Clone(defaultTaskfile)
}

func decode(body hcl.Body, path string) (*Taskfile, error) {
	var parsed hclTaskfile

	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode taskfile %s: %w", path, diags)
	}

	tf := &Taskfile{
		Path:   path,
		Tasks:  parsed.Tasks,
		byName: make(map[string]*Task, len(parsed.Tasks)),
	}

	for _, t := range parsed.Tasks {
		if _, dup := tf.byName[t.Name]; dup {
			return nil, fmt.Errorf("taskfile %s: task %q declared twice", path, t.Name)
		}

		if len(t.Commands) == 0 && len(t.Deps) == 0 {
			return nil, fmt.Errorf("taskfile %s: task %q has neither commands nor deps", path, t.Name)
		}

		tf.byName[t.Name] = t
	}

	return tf, nil
}

// Task returns the named task
func (tf *Taskfile) Task(name string) (*Task, bool) {
	t, ok := tf.byName[name]
	return t, ok
}

// Names lists task names in declaration order
func (tf *Taskfile) Names() []string {
	names := make([]string, len(tf.Tasks))
	for i, t := range tf.Tasks {
		names[i] = t.Name
	}

	return names
}

// Plan returns name and its dependencies in execution order. Dependencies are
// visited depth first in declaration order and each task appears once.
func (tf *Taskfile) Plan(name string) ([]*Task, error) {
	done := make(map[string]bool)
	visiting := make(map[string]bool)

	var (
		order []*Task
		stack []string
		visit func(name, parent string) error
	)

	visit = func(name, parent string) error {
		if done[name] {
			return nil
		}

		if visiting[name] {
			i := slices.Index(stack, name)
			return &CycleError{Path: append(slices.Clone(stack[i:]), name)}
		}

		t, ok := tf.byName[name]
		if !ok {
			return &UnknownTaskError{Name: name, RequiredBy: parent}
		}

		visiting[name] = true
		stack = append(stack, name)

		for _, dep := range t.Deps {
			if err := visit(dep, name); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		delete(visiting, name)
		done[name] = true
		order = append(order, t)

		return nil
	}

	if err := visit(name, ""); err != nil {
		return nil, err
	}

	return order, nil
}
