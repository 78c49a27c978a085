// Package domain defines the core types of kiln: commands, outcomes, generators and build sessions.
package domain

import (
	"maps"
	"slices"
	"strings"
)

// Command is a single external invocation.
// Args holds the argv; Env is overlaid on the inherited process environment.
type Command struct {
	Args       []string
	Env        map[string]string
	WorkingDir string
	// Label describes the strategy the command represents, e.g. "MSBuild /m fallback".
	Label string
}

// NewCommand creates a Command from an argv.
func NewCommand(args ...string) Command {
	return Command{Args: slices.Clone(args)}
}

// WithEnv returns a copy of the command with key set in its environment overlay.
func (c Command) WithEnv(key, value string) Command {
	env := make(map[string]string, len(c.Env)+1)
	maps.Copy(env, c.Env)
	env[key] = value
	c.Env = env
	c.Args = slices.Clone(c.Args)
	return c
}

// WithLabel returns a copy of the command with the given strategy label.
func (c Command) WithLabel(label string) Command {
	c.Label = label
	return c
}

// Describe returns the label, or the rendered command when no label is set.
func (c Command) Describe() string {
	if c.Label != "" {
		return c.Label
	}
	return c.String()
}

// Name returns the executable name, or an empty string for an empty command.
func (c Command) Name() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// String renders the command for display. Arguments containing spaces or quotes are quoted.
// The result is never passed to a shell.
func (c Command) String() string {
	parts := make([]string, len(c.Args))
	for i, arg := range c.Args {
		parts[i] = quoteArg(arg)
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if !strings.ContainsAny(arg, " \t\"'") {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}
