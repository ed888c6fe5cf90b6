package comando

import (
	"fmt"
	"strings"

	"github.com/ef-ds/deque"
)

// isOptionToken reports whether a token is option-shaped. A lone "-" is
// conventionally a positional value (stdin).
func isOptionToken(token string) bool {
	return len(token) > 1 && token[0] == '-'
}

// bind matches the selected command's token run against its argument model
// and effective option set, producing the call frame. Option tokens may
// appear anywhere in the run, interleaved with positionals.
func bind(cmd *Command, effective *effectiveOptions, tokens []string) (*CallFrame, error) {
	run := deque.New()
	for _, token := range tokens {
		run.PushBack(token)
	}

	values := make(map[string]interface{}, effective.byName.Len())
	specified := make(map[string]bool)
	var positionals []string

	for run.Len() > 0 {
		front, _ := run.PopFront()
		token := front.(string)
		if !isOptionToken(token) {
			positionals = append(positionals, token)
			continue
		}

		opt, inline, hasInline, err := matchOption(effective, token)
		if err != nil {
			return nil, err
		}
		if specified[opt.Name] {
			return nil, fmt.Errorf("%w: duplicated option: '%s'", ErrCliSyntax, opt.Name)
		}
		specified[opt.Name] = true

		if opt.Type.IsFlag() {
			// present means true; an inline value is ignored
			values[opt.Name] = true
			continue
		}

		raw := inline
		if !hasInline {
			next, ok := run.PopFront()
			if !ok {
				return nil, fmt.Errorf("%w: option '%s' is missing its value", ErrCliSyntax, opt.Name)
			}
			raw = next.(string)
		}
		value, err := opt.Type.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w for option '%s' of type '%s': '%s'",
				ErrArgumentType, opt.Name, opt.typeLabel(), raw)
		}
		values[opt.Name] = value
	}

	// complete the map with defaults so callers always see the full set
	effective.each(func(opt *Option) {
		if specified[opt.Name] {
			return
		}
		if opt.Type.IsFlag() && opt.Default == nil {
			values[opt.Name] = false
			return
		}
		values[opt.Name] = opt.Default
	})

	bound, err := bindPositionals(cmd, positionals)
	if err != nil {
		return nil, err
	}

	return &CallFrame{
		Positionals: bound,
		Options:     &Options{values: values, specified: specified},
	}, nil
}

// matchOption resolves an option-shaped token against the effective set,
// splitting off an inline "--name=value" value.
func matchOption(effective *effectiveOptions, token string) (opt *Option, inline string, hasInline bool, err error) {
	if strings.HasPrefix(token, "--") {
		name := token[2:]
		if at := strings.IndexByte(name, '='); at >= 0 {
			name, inline, hasInline = name[:at], name[at+1:], true
		}
		found, ok := effective.lookup(name)
		if !ok {
			return nil, "", false, fmt.Errorf(fmtErrorWithString, ErrUnknownOption, name)
		}
		return found, inline, hasInline, nil
	}

	short := token[1:]
	found, ok := effective.lookupShort(short)
	if !ok {
		return nil, "", false, fmt.Errorf(fmtErrorWithString, ErrUnknownOption, short)
	}
	return found, "", false, nil
}

// bindPositionals walks the argument model against the positional tokens in
// order: each required consumes one token, each optional consumes one if
// available, a trailing variadic collects the rest.
func bindPositionals(cmd *Command, positionals []string) ([]interface{}, error) {
	values := make([]interface{}, 0, len(cmd.arguments))
	next := 0

	for _, arg := range cmd.arguments {
		switch arg.Kind {
		case ArgRequired:
			if next >= len(positionals) {
				return nil, fmt.Errorf("%w: required argument is not specified: '%s'", ErrMissingArgument, arg.Name)
			}
			value, err := coerce(arg, positionals[next])
			if err != nil {
				return nil, err
			}
			values = append(values, value)
			next++
		case ArgOptional:
			if next >= len(positionals) {
				values = append(values, arg.Default)
				continue
			}
			value, err := coerce(arg, positionals[next])
			if err != nil {
				return nil, err
			}
			values = append(values, value)
			next++
		case ArgVariadic:
			tail := make([]interface{}, 0, len(positionals)-next)
			for ; next < len(positionals); next++ {
				value, err := coerce(arg, positionals[next])
				if err != nil {
					return nil, err
				}
				tail = append(tail, value)
			}
			values = append(values, tail)
		}
	}

	if next < len(positionals) {
		return nil, fmt.Errorf("%w for command '%s'", ErrTooManyArguments, cmd.name)
	}

	return values, nil
}

func coerce(arg *Argument, raw string) (interface{}, error) {
	value, err := arg.Type.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w for argument '%s' of type '%s': '%s'",
			ErrArgumentType, arg.Name, arg.Type.Label, raw)
	}
	return value, nil
}
