package cliargs

import (
	"errors"

	"github.com/spf13/cobra"
)

// None returns a cobra.PositionalArgs that fails with errmsg if any arguments
// are passed.
func None(errmsg string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > 0 {
			return errors.New(errmsg)
		}
		return nil
	}
}
