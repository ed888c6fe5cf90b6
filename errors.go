package comando

import (
	"errors"
	"fmt"
)

// The error taxonomy has two roots. ErrDeclaration covers mistakes in the
// tree itself (duplicate names, invalid argument ordering) and is returned
// at declaration time, never during dispatch. ErrCliSyntax covers bad input
// at invocation time; every syntax subkind wraps it, so
// errors.Is(err, ErrCliSyntax) matches any of them.
var (
	ErrDeclaration = errors.New("declaration error")
	ErrCliSyntax   = errors.New("command line syntax error")

	ErrUnknownCommand   = fmt.Errorf("%w: unknown command", ErrCliSyntax)
	ErrUnknownOption    = fmt.Errorf("%w: unknown option", ErrCliSyntax)
	ErrMissingArgument  = fmt.Errorf("%w: missing argument", ErrCliSyntax)
	ErrTooManyArguments = fmt.Errorf("%w: too many arguments", ErrCliSyntax)
	ErrArgumentType     = fmt.Errorf("%w: invalid value", ErrCliSyntax)
)

const fmtErrorWithString = "%w: %s"
