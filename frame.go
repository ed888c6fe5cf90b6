package comando

import "time"

// Options is the complete, defaulted option map a command receives: every
// option in the effective set is present, holding either the value supplied
// on the command line or the declared default. Lookups use typed accessors;
// an accessor returns the type's zero value when the name is unknown or the
// stored value has another type.
type Options struct {
	values    map[string]interface{}
	specified map[string]bool
}

// Value returns the raw value for name and whether the option exists in the
// effective set.
func (o *Options) Value(name string) (interface{}, bool) {
	v, ok := o.values[name]
	return v, ok
}

// IsSpecified reports whether the option was supplied on the command line
// (as opposed to filled in from its default).
func (o *Options) IsSpecified(name string) bool {
	return o.specified[name]
}

// Len returns the size of the effective option set.
func (o *Options) Len() int {
	return len(o.values)
}

// String returns the value of a string option.
func (o *Options) String(name string) string {
	v, _ := o.values[name].(string)
	return v
}

// Bool returns the value of a boolean option.
func (o *Options) Bool(name string) bool {
	v, _ := o.values[name].(bool)
	return v
}

// Int returns the value of an int option.
func (o *Options) Int(name string) int64 {
	v, _ := o.values[name].(int64)
	return v
}

// Float returns the value of a float option.
func (o *Options) Float(name string) float64 {
	v, _ := o.values[name].(float64)
	return v
}

// Duration returns the value of a duration option.
func (o *Options) Duration(name string) time.Duration {
	v, _ := o.values[name].(time.Duration)
	return v
}

// Time returns the value of a time option.
func (o *Options) Time(name string) time.Time {
	v, _ := o.values[name].(time.Time)
	return v
}

// OptionAs retrieves an option value as T, reporting whether the option
// exists and holds a T.
func OptionAs[T any](options *Options, name string) (T, bool) {
	raw, ok := options.values[name]
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}

// CallFrame is the ephemeral result of binding one invocation: coerced
// positional values aligned to the command's argument model, and the full
// effective option map. It is handed to the command callback and discarded.
type CallFrame struct {
	Positionals []interface{}
	Options     *Options
}

// Arg returns the positional value at index i, nil when out of range. A
// variadic parameter occupies a single slot holding a []interface{}.
func (f *CallFrame) Arg(i int) interface{} {
	if i < 0 || i >= len(f.Positionals) {
		return nil
	}
	return f.Positionals[i]
}

// StringArg returns the positional at index i as a string.
func (f *CallFrame) StringArg(i int) string {
	v, _ := f.Arg(i).(string)
	return v
}

// IntArg returns the positional at index i as an int64.
func (f *CallFrame) IntArg(i int) int64 {
	v, _ := f.Arg(i).(int64)
	return v
}

// Tail returns the collected variadic values when the command's last
// parameter is variadic, nil otherwise.
func (f *CallFrame) Tail() []interface{} {
	if len(f.Positionals) == 0 {
		return nil
	}
	v, _ := f.Positionals[len(f.Positionals)-1].([]interface{})
	return v
}
