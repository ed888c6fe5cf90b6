package comando

import (
	"fmt"

	"github.com/lharault/comando/types"
)

// ArgKind classifies a positional argument.
type ArgKind int

const (
	// ArgRequired must be supplied on the command line.
	ArgRequired ArgKind = iota
	// ArgOptional falls back to its declared default when absent.
	ArgOptional
	// ArgVariadic collects all remaining positional tokens. At most one may
	// be declared and it must be last.
	ArgVariadic
)

// Argument describes one declared positional parameter of a command.
// Arguments are declared with Required, Optional and Variadic and are
// immutable once the command is registered.
type Argument struct {
	Name    string
	Kind    ArgKind
	Default interface{}
	Type    types.Value
}

// Required declares a positional argument which must be supplied.
func Required(name string, valueType types.Value) *Argument {
	return &Argument{
		Name: name,
		Kind: ArgRequired,
		Type: valueType,
	}
}

// Optional declares a positional argument with a default value. The default
// is used as-is when the argument is not supplied; it is not passed through
// the coercion function.
func Optional(name string, defaultValue interface{}, valueType types.Value) *Argument {
	return &Argument{
		Name:    name,
		Kind:    ArgOptional,
		Default: defaultValue,
		Type:    valueType,
	}
}

// Variadic declares a trailing argument collecting zero or more tokens.
func Variadic(name string, valueType types.Value) *Argument {
	return &Argument{
		Name: name,
		Kind: ArgVariadic,
		Type: valueType,
	}
}

// pattern returns the synopsis form of the argument.
func (a *Argument) pattern() string {
	switch a.Kind {
	case ArgRequired:
		return "<" + a.Name + ">"
	case ArgVariadic:
		return "[" + a.Name + " ... ]"
	default:
		return "[" + a.Name + "]"
	}
}

// validateArguments enforces the argument model invariants at declaration
// time: unique names, no required after optional, at most one variadic and
// only in last position, and no boolean positionals (booleans are
// option-only).
func validateArguments(commandName string, arguments []*Argument) error {
	seen := make(map[string]bool, len(arguments))
	optionalSeen := false

	for i, arg := range arguments {
		if arg == nil || arg.Name == "" {
			return fmt.Errorf("%w: command '%s' declares an unnamed argument", ErrDeclaration, commandName)
		}
		if seen[arg.Name] {
			return fmt.Errorf("%w: duplicate argument '%s' for command '%s'", ErrDeclaration, arg.Name, commandName)
		}
		seen[arg.Name] = true

		if arg.Type.IsFlag() {
			return fmt.Errorf("%w: argument '%s' of command '%s' declares a boolean type - booleans are option-only",
				ErrDeclaration, arg.Name, commandName)
		}
		if arg.Type.Parse == nil {
			return fmt.Errorf("%w: argument '%s' of command '%s' has no type", ErrDeclaration, arg.Name, commandName)
		}

		switch arg.Kind {
		case ArgRequired:
			if optionalSeen {
				return fmt.Errorf("%w: required argument '%s' of command '%s' follows an optional one",
					ErrDeclaration, arg.Name, commandName)
			}
		case ArgOptional:
			optionalSeen = true
		case ArgVariadic:
			if i != len(arguments)-1 {
				return fmt.Errorf("%w: variadic argument '%s' of command '%s' must be last",
					ErrDeclaration, arg.Name, commandName)
			}
		}
	}

	return nil
}
