package cmdtest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// Run executes cmd with the given arguments and input and returns the output
// and the execution error. A nil args slice runs cmd without arguments.
func Run(cmd *cobra.Command, args []string, input string) (string, error) {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	return out.String(), err
}

// Output expects cmd to succeed and output want, and returns the actual
// output.
func Output(t *testing.T, cmd *cobra.Command, args []string, input, want string) string {
	t.Helper()

	result, err := Run(cmd, args, input)
	if err != nil {
		t.Fatalf("Command should not fail; failed with %q", err)
	}

	if result != want {
		t.Fatalf("Command has wrong output.\n\nwant:\n%v\n\ngot:\n%v\n", want, result)
	}

	return result
}

// Lines expects cmd to succeed and output the given lines, each terminated by
// a newline.
func Lines(t *testing.T, cmd *cobra.Command, args []string, input string, want ...string) string {
	t.Helper()
	return Output(t, cmd, args, input, strings.Join(want, "\n")+"\n")
}
