package comando

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lharault/comando/types"
)

func TestHelpModel_Handler(t *testing.T) {
	var stdout, stderr bytes.Buffer
	root := newGitApp(t, &stdout, &stderr)

	model, err := root.HelpModel()
	assert.NoError(t, err)
	assert.Equal(t, "git", model.Name)
	assert.Equal(t, "the stupid content tracker", model.Brief)

	names := make([]string, 0, len(model.Commands))
	for _, cmd := range model.Commands {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"commit", "help", "remote"}, names,
		"children are listed alphabetically and include the implicit help command")

	assert.Len(t, model.Options, 1)
	assert.Equal(t, "verbose", model.Options[0].Name)
	assert.True(t, model.Options[0].Flag)
}

func TestHelpModel_Command(t *testing.T) {
	root := discardHandler(WithName("tool"))
	assert.NoError(t, root.Option("verbose", "v", types.Bool, nil, "be chatty"))

	cmd, err := root.Command("copy", echoCommand,
		WithCommandBrief("copy a file"),
		WithCommandDescription("Copies source to destination.\n\nOverwrites silently."),
		WithArguments(
			Required("source", types.String),
			Optional("dest", "out", types.String),
			Variadic("extra", types.String),
		),
		WithOption("retries", "r", types.Int, int64(2), "number of attempts"))
	assert.NoError(t, err)

	model, err := cmd.HelpModel()
	assert.NoError(t, err)
	assert.Equal(t, []string{"tool", "copy"}, model.Path)
	assert.Equal(t, "copy [OPTIONS] <source> [dest] [extra ... ]", model.Synopsis)

	assert.Len(t, model.Arguments, 3)
	assert.Equal(t, "source", model.Arguments[0].Name)
	assert.Equal(t, "string", model.Arguments[0].TypeLabel)
	assert.Equal(t, "out", model.Arguments[1].Default)

	// inherited first, own second
	assert.Len(t, model.Options, 2)
	assert.Equal(t, "verbose", model.Options[0].Name)
	assert.Equal(t, "retries", model.Options[1].Name)
	assert.Equal(t, int64(2), model.Options[1].Default)
	assert.Equal(t, "int", model.Options[1].TypeLabel)
}

func TestHelpModel_SynopsisWithoutOptions(t *testing.T) {
	root := discardHandler()
	cmd, err := root.Command("ping", echoCommand)
	assert.NoError(t, err)

	model, err := cmd.HelpModel()
	assert.NoError(t, err)
	assert.Equal(t, "ping", model.Synopsis, "[OPTIONS] only appears when options are in scope")
}

func TestRender_Sections(t *testing.T) {
	root := discardHandler(WithName("tool"), WithBrief("does things"))
	assert.NoError(t, root.Option("verbose", "v", types.Bool, nil, "be chatty"))
	_, err := root.Command("run", echoCommand, WithCommandBrief("run it"))
	assert.NoError(t, err)

	model, err := root.HelpModel()
	assert.NoError(t, err)

	var buf bytes.Buffer
	Render(&buf, model)
	out := buf.String()

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "tool - does things")
	assert.Contains(t, out, "COMMANDS")
	assert.Contains(t, out, "run")
	assert.Contains(t, out, "# run it", "command briefs are rendered as aligned comments")
	assert.Contains(t, out, "OPTIONS")
	assert.Contains(t, out, "-v, --verbose")
	assert.NotContains(t, out, "\x1b[", "no ANSI styling off-terminal")
}

func TestRender_CommandDefaults(t *testing.T) {
	root := discardHandler()
	cmd, err := root.Command("wait", echoCommand,
		WithCommandBrief("wait a while"),
		WithOption("timeout", "t", types.Duration, 30*time.Second, "how long to wait"))
	assert.NoError(t, err)

	model, err := cmd.HelpModel()
	assert.NoError(t, err)

	var buf bytes.Buffer
	Render(&buf, model)
	out := buf.String()

	assert.Contains(t, out, "SYNOPSIS")
	assert.Contains(t, out, "-t <duration>, --timeout <duration>")
	assert.Contains(t, out, "(defaults to: 30s)")
}

func TestWrap(t *testing.T) {
	lines := wrap("alpha beta gamma delta", 11)
	assert.Equal(t, []string{"alpha beta", "gamma delta"}, lines)

	assert.Equal(t, []string{""}, wrap("", 40), "empty text yields one empty line")
	assert.Equal(t, []string{"abcdefghij"}, wrap("abcdefghij", 4), "overlong words stand alone")
}
