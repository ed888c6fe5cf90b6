package comando

import (
	"fmt"
	"strings"

	"github.com/lharault/comando/types"
)

// Command is a leaf of the tree: a named wrapper around a CommandFunc with a
// declared positional argument model and its own options. Commands are
// declared with Handler.Command and are immutable afterwards.
type Command struct {
	name        string
	brief       string
	description string
	arguments   []*Argument
	options     *optionSet
	callback    CommandFunc
	parent      *Handler

	// options passed via configs, declared (and validated) by
	// Handler.Command once all configs have been applied
	pendingOptions []*Option
}

// WithCommandBrief sets the one-line command summary.
func WithCommandBrief(brief string) ConfigureCommandFunc {
	return func(command *Command) {
		command.brief = brief
	}
}

// WithCommandDescription sets the long command description.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.description = description
	}
}

// WithArguments declares the command's positional argument model, in order.
func WithArguments(arguments ...*Argument) ConfigureCommandFunc {
	return func(command *Command) {
		command.arguments = append(command.arguments, arguments...)
	}
}

// WithOption declares a switch on the command itself. A name also declared
// on an ancestor handler shadows the inherited spec for this command only.
func WithOption(name, short string, valueType types.Value, defaultValue interface{}, description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.pendingOptions = append(command.pendingOptions,
			NewOption(name, short, valueType, defaultValue, description))
	}
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Brief returns the one-line command summary.
func (c *Command) Brief() string { return c.brief }

// Description returns the long command description.
func (c *Command) Description() string { return c.description }

// Arguments returns the declared positional model, in order.
func (c *Command) Arguments() []*Argument { return c.arguments }

func (c *Command) ownOptions() *optionSet { return c.options }
func (c *Command) parentNode() *Handler   { return c.parent }

// path returns the node names from the root down to the command.
func (c *Command) path() []string {
	return append(c.parent.path(), c.name)
}

// synopsis builds the usage line: name, [OPTIONS] when any option is in
// scope, then the argument patterns.
func (c *Command) synopsis() string {
	parts := []string{c.name}
	effective, err := resolveOptions(c)
	if err == nil && effective.byName.Len() > 0 {
		parts = append(parts, "[OPTIONS]")
	}
	for _, arg := range c.arguments {
		parts = append(parts, arg.pattern())
	}
	return strings.Join(parts, " ")
}

// invoke binds the remaining tokens and calls the wrapped function. Syntax
// failures render the command's help to stderr before propagating; errors
// from the callback are returned untouched.
func (c *Command) invoke(tokens []string) (interface{}, error) {
	effective, err := resolveOptions(c)
	if err != nil {
		return nil, err
	}

	frame, err := bind(c, effective, tokens)
	if err != nil {
		stderr := c.parent.stderr
		fmt.Fprintln(stderr, err.Error())
		renderNode(stderr, c)
		return nil, err
	}

	return c.callback(frame)
}
