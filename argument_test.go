package comando

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lharault/comando/types"
)

func TestValidateArguments_Ordering(t *testing.T) {
	err := validateArguments("cmd", []*Argument{
		Required("a", types.String),
		Optional("b", "x", types.String),
		Variadic("rest", types.String),
	})
	assert.NoError(t, err, "required, optional, trailing variadic is a legal model")

	err = validateArguments("cmd", []*Argument{
		Optional("a", "x", types.String),
		Required("b", types.String),
	})
	assert.ErrorIs(t, err, ErrDeclaration, "required after optional must be rejected")

	err = validateArguments("cmd", []*Argument{
		Variadic("rest", types.String),
		Required("a", types.String),
	})
	assert.ErrorIs(t, err, ErrDeclaration, "non-trailing variadic must be rejected")
}

func TestValidateArguments_Uniqueness(t *testing.T) {
	err := validateArguments("cmd", []*Argument{
		Required("a", types.String),
		Required("a", types.Int),
	})
	assert.ErrorIs(t, err, ErrDeclaration, "duplicate argument names must be rejected")

	err = validateArguments("cmd", []*Argument{Required("", types.String)})
	assert.ErrorIs(t, err, ErrDeclaration, "unnamed arguments must be rejected")
}

func TestValidateArguments_BooleanPositional(t *testing.T) {
	err := validateArguments("cmd", []*Argument{Required("flag", types.Bool)})
	assert.ErrorIs(t, err, ErrDeclaration, "booleans are option-only and illegal as positionals")
}

func TestArgumentPattern(t *testing.T) {
	assert.Equal(t, "<name>", Required("name", types.String).pattern())
	assert.Equal(t, "[count]", Optional("count", int64(0), types.Int).pattern())
	assert.Equal(t, "[files ... ]", Variadic("files", types.String).pattern())
}
