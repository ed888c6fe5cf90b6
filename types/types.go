// Package types defines the value types used to coerce raw command-line
// tokens into Go values. A Value pairs a human-readable type label (shown in
// help output) with a parsing function. The package ships parsers for the
// common scalar types plus the composable Choice and ListOf constructors.
package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseFunc converts a raw command-line token into a typed value.
type ParseFunc func(value string) (interface{}, error)

// Value describes an argument or option type: a label used in help output
// and a ParseFunc applied to the raw token.
type Value struct {
	Label string
	Parse ParseFunc

	flag bool
}

// IsFlag reports whether the value is the boolean presence-only type.
// Boolean values are legal for options but not for positional arguments.
func (v Value) IsFlag() bool {
	return v.flag
}

var (
	// String passes the raw token through untouched.
	String = Value{Label: "string", Parse: func(value string) (interface{}, error) {
		return value, nil
	}}

	// Int parses a whole number as int64.
	Int = Value{Label: "int", Parse: func(value string) (interface{}, error) {
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not a whole number: '%s'", value)
		}
		return v, nil
	}}

	// Float parses a floating point number as float64.
	Float = Value{Label: "float", Parse: func(value string) (interface{}, error) {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: '%s'", value)
		}
		return v, nil
	}}

	// Bool is the presence-only option type. It takes no value on the
	// command line; the parser is only consulted when an inline value is
	// forced with --name=value.
	Bool = Value{Label: "bool", flag: true, Parse: func(value string) (interface{}, error) {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("not a boolean: '%s'", value)
		}
		return v, nil
	}}

	// Duration parses a Go duration string such as "1h30m".
	Duration = Value{Label: "duration", Parse: func(value string) (interface{}, error) {
		v, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("not a duration: '%s'", value)
		}
		return v, nil
	}}

	// Time parses a timestamp in any of the formats recognized by dateparse.
	Time = Value{Label: "time", Parse: func(value string) (interface{}, error) {
		v, err := dateparse.ParseAny(value)
		if err != nil {
			return nil, fmt.Errorf("not a timestamp: '%s'", value)
		}
		return v, nil
	}}
)

// Choice restricts a value to one of the given literals. The label lists the
// alternatives separated by '|'.
func Choice(alternatives ...string) Value {
	return Value{
		Label: strings.Join(alternatives, "|"),
		Parse: func(value string) (interface{}, error) {
			for _, alt := range alternatives {
				if value == alt {
					return value, nil
				}
			}
			return nil, fmt.Errorf("invalid value: '%s'", value)
		},
	}
}

// ListOf parses a comma-separated token into a slice of element values.
func ListOf(element Value) Value {
	return Value{
		Label: fmt.Sprintf("listof(%s)", element.Label),
		Parse: func(value string) (interface{}, error) {
			parts := strings.Split(value, ",")
			values := make([]interface{}, 0, len(parts))
			for _, part := range parts {
				v, err := element.Parse(part)
				if err != nil {
					return nil, err
				}
				values = append(values, v)
			}
			return values, nil
		},
	}
}
