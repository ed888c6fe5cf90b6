package comando

import (
	"fmt"
	"io"
	"os"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/lharault/comando/parse"
	"github.com/lharault/comando/types"
)

// Node is a member of the command tree, either a *Handler or a *Command.
// Both are declared through Handler methods; the interface cannot be
// implemented outside this package.
type Node interface {
	Name() string
	Brief() string
	Description() string
	ownOptions() *optionSet
	parentNode() *Handler
	HelpModel() (*HelpModel, error)
}

// Handler is an internal node of the command tree. It groups commands and
// sub-handlers and may declare options inherited by all of them. The tree is
// built once at startup and is read-only during dispatch.
type Handler struct {
	name        string
	brief       string
	description string
	options     *optionSet
	children    *orderedmap.OrderedMap // child name -> Node
	parent      *Handler
	nameConv    NameConversionFunc
	stdout      io.Writer
	stderr      io.Writer
}

// NewHandler creates a root handler. The root's name is empty unless set
// with WithName.
func NewHandler(configs ...ConfigureHandlerFunc) *Handler {
	h := &Handler{
		options:  newOptionSet(),
		children: orderedmap.New(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	for _, config := range configs {
		config(h)
	}

	return h
}

// WithName sets the handler name shown in help output.
func WithName(name string) ConfigureHandlerFunc {
	return func(handler *Handler) {
		handler.name = name
	}
}

// WithBrief sets the one-line handler summary.
func WithBrief(brief string) ConfigureHandlerFunc {
	return func(handler *Handler) {
		handler.brief = brief
	}
}

// WithDescription sets the long handler description.
func WithDescription(description string) ConfigureHandlerFunc {
	return func(handler *Handler) {
		handler.description = description
	}
}

// WithNameConverter sets a conversion applied to every command and
// sub-handler name declared under this handler.
func WithNameConverter(conv NameConversionFunc) ConfigureHandlerFunc {
	return func(handler *Handler) {
		handler.nameConv = conv
	}
}

// WithStdout redirects normal output (help screens).
func WithStdout(w io.Writer) ConfigureHandlerFunc {
	return func(handler *Handler) {
		handler.stdout = w
	}
}

// WithStderr redirects error output (help rendered on syntax errors).
func WithStderr(w io.Writer) ConfigureHandlerFunc {
	return func(handler *Handler) {
		handler.stderr = w
	}
}

// Name returns the handler name (empty for an unnamed root).
func (h *Handler) Name() string { return h.name }

// Brief returns the one-line handler summary.
func (h *Handler) Brief() string { return h.brief }

// Description returns the long handler description.
func (h *Handler) Description() string { return h.description }

func (h *Handler) ownOptions() *optionSet { return h.options }
func (h *Handler) parentNode() *Handler   { return h.parent }

// Option declares a switch on the handler, visible to every descendant
// command unless shadowed by a re-declaration deeper in the tree.
func (h *Handler) Option(name, short string, valueType types.Value, defaultValue interface{}, description string) error {
	return h.options.declare(NewOption(name, short, valueType, defaultValue, description))
}

// Handler declares a child handler. The child inherits the parent's output
// writers and name converter unless overridden by configs.
func (h *Handler) Handler(name string, configs ...ConfigureHandlerFunc) (*Handler, error) {
	name, err := h.childName(name)
	if err != nil {
		return nil, err
	}

	child := &Handler{
		name:     name,
		options:  newOptionSet(),
		children: orderedmap.New(),
		parent:   h,
		nameConv: h.nameConv,
		stdout:   h.stdout,
		stderr:   h.stderr,
	}
	for _, config := range configs {
		config(child)
	}
	child.name = name
	child.parent = h

	h.children.Set(name, Node(child))

	return child, nil
}

// Command declares a leaf command wrapping callback. Arguments and options
// are supplied via configs; the argument model is validated here, at
// declaration time.
func (h *Handler) Command(name string, callback CommandFunc, configs ...ConfigureCommandFunc) (*Command, error) {
	name, err := h.childName(name)
	if err != nil {
		return nil, err
	}
	if callback == nil {
		return nil, fmt.Errorf("%w: command '%s' has no callback", ErrDeclaration, name)
	}

	cmd := &Command{
		name:     name,
		options:  newOptionSet(),
		callback: callback,
		parent:   h,
	}
	for _, config := range configs {
		config(cmd)
	}
	if err := validateArguments(name, cmd.arguments); err != nil {
		return nil, err
	}
	for _, opt := range cmd.pendingOptions {
		if err := cmd.options.declare(opt); err != nil {
			return nil, err
		}
	}
	cmd.pendingOptions = nil

	h.children.Set(name, Node(cmd))

	return cmd, nil
}

// childName converts, then validates a declared child name against this
// node's registry.
func (h *Handler) childName(name string) (string, error) {
	if h.nameConv != nil {
		name = h.nameConv(name)
	}
	if name == "" {
		return "", fmt.Errorf("%w: can't declare a nameless command", ErrDeclaration)
	}
	if strings.HasPrefix(name, "-") || strings.Contains(name, "=") {
		return "", fmt.Errorf("%w: not a valid command name: '%s'", ErrDeclaration, name)
	}
	if name == helpName {
		return "", fmt.Errorf("%w: '%s' is reserved", ErrDeclaration, helpName)
	}
	if _, exists := h.children.Get(name); exists {
		return "", fmt.Errorf("%w: duplicate command name: '%s'", ErrDeclaration, name)
	}

	return name, nil
}

// Lookup returns the child with the given name. Matching is exact and
// case-sensitive.
func (h *Handler) Lookup(name string) (Node, bool) {
	v, ok := h.children.Get(name)
	if !ok {
		return nil, false
	}
	return v.(Node), true
}

// path returns the node names from the root down to h, skipping an unnamed
// root.
func (h *Handler) path() []string {
	var segments []string
	for n := h; n != nil; n = n.parent {
		if n.name != "" {
			segments = append([]string{n.name}, segments...)
		}
	}
	return segments
}

// Invoke routes the token list down the tree, binds the selected command's
// arguments and options, and calls the underlying function, returning its
// result. On a syntax failure the help model of the deepest resolved node is
// rendered to stderr before the error is returned; errors from the command
// callback itself propagate unchanged.
func (h *Handler) Invoke(tokens []string) (interface{}, error) {
	state := parse.NewState(tokens)
	return h.dispatch(state)
}

// InvokeString splits line using shell quoting rules and invokes the result.
func (h *Handler) InvokeString(line string) (interface{}, error) {
	tokens, err := parse.Split(line)
	if err != nil {
		return nil, fmt.Errorf(fmtErrorWithString, ErrCliSyntax, err.Error())
	}

	return h.Invoke(tokens)
}

// dispatch consumes path tokens one tree level at a time. A handler reached
// with no tokens left renders its own help. A first token naming a child
// always descends, even if a sibling command could have consumed it as a
// positional value - path segments take precedence.
func (h *Handler) dispatch(state *parse.State) (interface{}, error) {
	if !state.Advance() {
		h.renderSelf(h.stdout)
		return nil, nil
	}

	name := state.Current()
	if name == helpName {
		return nil, h.helpCommand(state.Remaining())
	}

	child, ok := h.Lookup(name)
	if !ok {
		err := fmt.Errorf(fmtErrorWithString, ErrUnknownCommand, strings.Join(append(h.path(), name), " "))
		fmt.Fprintln(h.stderr, err.Error())
		h.renderSelf(h.stderr)
		return nil, err
	}

	switch node := child.(type) {
	case *Handler:
		return node.dispatch(state)
	case *Command:
		return node.invoke(state.Remaining())
	default:
		return nil, fmt.Errorf(fmtErrorWithString, ErrUnknownCommand, name)
	}
}

// helpCommand implements the implicit "help" command: with no arguments it
// documents the handler itself, otherwise it resolves the given path and
// documents that node.
func (h *Handler) helpCommand(path []string) error {
	var node Node = h
	for i, name := range path {
		current, ok := node.(*Handler)
		if !ok {
			// descended past a leaf
			err := fmt.Errorf(fmtErrorWithString, ErrUnknownCommand, strings.Join(path, " "))
			fmt.Fprintln(h.stderr, err.Error())
			renderNode(h.stderr, node)
			return err
		}
		child, found := current.Lookup(name)
		if !found {
			err := fmt.Errorf(fmtErrorWithString, ErrUnknownCommand, strings.Join(path[:i+1], " "))
			fmt.Fprintln(h.stderr, err.Error())
			renderNode(h.stderr, node)
			return err
		}
		node = child
	}

	renderNode(h.stdout, node)
	return nil
}

// renderSelf writes the handler's own help screen.
func (h *Handler) renderSelf(w io.Writer) {
	renderNode(w, h)
}

func renderNode(w io.Writer, node Node) {
	model, err := node.HelpModel()
	if err != nil {
		fmt.Fprintln(w, err.Error())
		return
	}
	Render(w, model)
}
