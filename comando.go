// Copyright 2024, Luc Harault. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package comando turns a tree of ordinary Go functions into a command-line
// interface. Each function becomes a command, its declared parameters become
// positional arguments, and separately declared switches become options.
//
// Commands are grouped under handlers. A handler is a named node in the tree
// which may declare options of its own; options declared on a handler are
// inherited by every descendant command, and a descendant re-declaring the
// same long name shadows the inherited one for its subtree.
//
// A command declares its positional shape explicitly:
//
//	citing, _ := root.Command("greet", greet,
//	    comando.WithArguments(
//	        comando.Required("name", types.String),
//	        comando.Optional("times", int64(1), types.Int),
//	    ))
//
// Invoking the root handler routes a flat token list down the tree, binds
// the remaining tokens against the selected command's arguments and its
// effective option set, and calls the underlying function with the bound
// call frame. Every handler also answers to an implicit "help" command.
package comando

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// CommandFunc is the callback wrapped by a Command. It receives the fully
// bound call frame and returns the command's result or an error. Errors
// returned here propagate to the Invoke caller unchanged.
type CommandFunc func(frame *CallFrame) (interface{}, error)

// ConfigureHandlerFunc is used when declaring a Handler.
type ConfigureHandlerFunc func(handler *Handler)

// ConfigureCommandFunc is used when declaring a Command.
type ConfigureCommandFunc func(command *Command)

// NameConversionFunc converts a declared name to its command-line form.
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a name to kebab case "my-command-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a name to snake case "my_command_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCase converts a name to lower case "mycommandname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}
)

// helpName is the reserved command name answered by every handler.
const helpName = "help"
