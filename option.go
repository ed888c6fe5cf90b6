package comando

import (
	"fmt"
	"regexp"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/lharault/comando/types"
)

// Option describes one declared switch: a long name, an optional
// single-character short flag, a value type with a default, and a
// description shown in help output. A boolean option (types.Bool) takes no
// value on the command line and is set true by its presence.
//
// Every option has a default by design. A parameter that must be supplied
// should be a command argument, not an option.
type Option struct {
	Name        string
	Short       string
	Type        types.Value
	Default     interface{}
	Description string
}

// Valid option names start with a letter followed by at least one word
// character. Rules out embedded '=' and option-shaped names.
var optionNamePattern = regexp.MustCompile(`^[a-zA-Z]\w+$`)

// NewOption declares a switch. short may be empty; when set it must be a
// single ASCII character.
func NewOption(name, short string, valueType types.Value, defaultValue interface{}, description string) *Option {
	return &Option{
		Name:        name,
		Short:       short,
		Type:        valueType,
		Default:     defaultValue,
		Description: description,
	}
}

func (o *Option) validate() error {
	if !optionNamePattern.MatchString(o.Name) {
		return fmt.Errorf("%w: not a valid option name: '%s'", ErrDeclaration, o.Name)
	}
	if len(o.Short) > 1 || (o.Short != "" && (o.Short[0] < '!' || o.Short[0] > '~')) {
		return fmt.Errorf("%w: short flag of option '%s' must be a single ASCII character", ErrDeclaration, o.Name)
	}
	if o.Type.Parse == nil {
		return fmt.Errorf("%w: option '%s' has no type", ErrDeclaration, o.Name)
	}
	return nil
}

// typeLabel returns the label shown for the option in help output.
func (o *Option) typeLabel() string {
	return o.Type.Label
}

// synopsis returns the option heading used in help output, e.g.
// "-m <string>, --message <string>" or "-v, --verbose" for booleans.
func (o *Option) synopsis() string {
	var b strings.Builder
	if o.Short != "" {
		b.WriteString("-" + o.Short)
		if !o.Type.IsFlag() {
			b.WriteString(" <" + o.typeLabel() + ">")
		}
		b.WriteString(", ")
	}
	b.WriteString("--" + o.Name)
	if !o.Type.IsFlag() {
		b.WriteString(" <" + o.typeLabel() + ">")
	}
	return b.String()
}

// optionSet is the ordered set of options declared directly on one node.
// Declaration order is preserved for help output and shadowing.
type optionSet struct {
	byName *orderedmap.OrderedMap // option name -> *Option
	shorts map[string]string      // short flag -> option name
}

func newOptionSet() *optionSet {
	return &optionSet{
		byName: orderedmap.New(),
		shorts: map[string]string{},
	}
}

// declare validates the option against this node only. Re-declaring a name
// inherited from an ancestor is allowed and shadows it.
func (s *optionSet) declare(opt *Option) error {
	if err := opt.validate(); err != nil {
		return err
	}
	if _, exists := s.byName.Get(opt.Name); exists {
		return fmt.Errorf("%w: duplicate option '--%s'", ErrDeclaration, opt.Name)
	}
	if opt.Short != "" {
		if other, exists := s.shorts[opt.Short]; exists {
			return fmt.Errorf("%w: duplicate short flag '-%s' (already used by '--%s')",
				ErrDeclaration, opt.Short, other)
		}
		s.shorts[opt.Short] = opt.Name
	}
	s.byName.Set(opt.Name, opt)

	return nil
}

func (s *optionSet) each(visit func(opt *Option)) {
	for pair := s.byName.Oldest(); pair != nil; pair = pair.Next() {
		visit(pair.Value.(*Option))
	}
}

// effectiveOptions is the option set visible to a node after merging all
// ancestors: a mapping from long name to spec and a parallel short-flag
// index, both with nearest-wins shadowing.
type effectiveOptions struct {
	byName *orderedmap.OrderedMap // option name -> *Option
	shorts map[string]string      // short flag -> option name
}

func (e *effectiveOptions) lookup(name string) (*Option, bool) {
	v, ok := e.byName.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Option), true
}

func (e *effectiveOptions) lookupShort(short string) (*Option, bool) {
	name, ok := e.shorts[short]
	if !ok {
		return nil, false
	}
	return e.lookup(name)
}

func (e *effectiveOptions) each(visit func(opt *Option)) {
	for pair := e.byName.Oldest(); pair != nil; pair = pair.Next() {
		visit(pair.Value.(*Option))
	}
}

// resolveOptions walks from the root down to target accumulating option
// specs, a nearer node's spec overriding an ancestor's of the same long
// name. The short-flag index is built from the merged result; two surviving
// specs sharing a short flag is a declaration error surfaced here. The
// result is a pure function of the tree's declarations.
func resolveOptions(target Node) (*effectiveOptions, error) {
	var chain []Node
	node := target
	for {
		chain = append(chain, node)
		parent := node.parentNode()
		if parent == nil {
			break
		}
		node = parent
	}

	merged := &effectiveOptions{
		byName: orderedmap.New(),
		shorts: map[string]string{},
	}
	for i := len(chain) - 1; i >= 0; i-- {
		chain[i].ownOptions().each(func(opt *Option) {
			merged.byName.Set(opt.Name, opt)
		})
	}

	var err error
	merged.each(func(opt *Option) {
		if opt.Short == "" || err != nil {
			return
		}
		if other, exists := merged.shorts[opt.Short]; exists && other != opt.Name {
			err = fmt.Errorf("%w: short flag '-%s' is claimed by both '--%s' and '--%s'",
				ErrDeclaration, opt.Short, other, opt.Name)
			return
		}
		merged.shorts[opt.Short] = opt.Name
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}
