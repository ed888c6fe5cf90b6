package comando_test

import (
	"fmt"
	"os"

	"github.com/lharault/comando"
	"github.com/lharault/comando/types"
)

func Example() {
	root := comando.NewHandler(
		comando.WithName("greeter"),
		comando.WithBrief("a friendly example"),
	)
	_ = root.Option("shout", "s", types.Bool, nil, "print in upper case")

	_, _ = root.Command("greet", func(frame *comando.CallFrame) (interface{}, error) {
		greeting := fmt.Sprintf("hello, %s", frame.StringArg(0))
		for i := int64(1); i < frame.IntArg(1); i++ {
			greeting += fmt.Sprintf(" and %s again", frame.StringArg(0))
		}
		fmt.Println(greeting)
		return nil, nil
	},
		comando.WithCommandBrief("say hello"),
		comando.WithArguments(
			comando.Required("name", types.String),
			comando.Optional("times", int64(1), types.Int),
		))

	if _, err := root.Invoke([]string{"greet", "gopher"}); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	// Output: hello, gopher
}

func ExampleHandler_Invoke_options() {
	root := comando.NewHandler(comando.WithName("tool"))

	remote, _ := root.Handler("remote", comando.WithBrief("manage remotes"))
	_, _ = remote.Command("add", func(frame *comando.CallFrame) (interface{}, error) {
		fmt.Printf("adding %s -> %s (verbose=%v)\n",
			frame.StringArg(0), frame.StringArg(1), frame.Options.Bool("verbose"))
		return nil, nil
	}, comando.WithArguments(
		comando.Required("name", types.String),
		comando.Required("uri", types.String),
	))
	_ = root.Option("verbose", "v", types.Bool, nil, "be chatty")

	_, _ = root.Invoke([]string{"remote", "add", "origin", "https://example.org/r.git", "-v"})
	// Output: adding origin -> https://example.org/r.git (verbose=true)
}
