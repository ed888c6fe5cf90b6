// Package parse provides the low-level token handling used by the dispatch
// engine: shell-style splitting of raw command lines and a cursor over an
// argument list.
package parse

import "github.com/google/shlex"

// Split tokenizes a raw command line using shell quoting rules.
func Split(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, err
	}

	return args, nil
}
