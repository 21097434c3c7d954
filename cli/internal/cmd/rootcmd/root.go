package rootcmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/modernice/todo/cli/internal/cliargs"
	"github.com/modernice/todo/cli/internal/clifactory"
	"github.com/spf13/cobra"
)

// New returns the root command.
func New(f *clifactory.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Interactive to-do list with undo and redo",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: heredoc.Doc(`
			Manage a to-do list interactively. Each line read from stdin is one
			command:

				add <text>      Add a task
				remove <n>      Remove task n
				toggle <n>      Mark task n as done / not done
				view            Show all tasks
				undo            Undo the last change
				redo            Redo the last undone change
				exit            Quit

			Every change is recorded, so any number of changes can be undone.
			Adding, removing or toggling a task after an undo discards the
			changes that could have been redone.

			Environment:

				TODO_PROMPT     Prompt printed before each command
				TODO_NO_COLOR   Disable colored output
				TODO_VERBOSE    Log recorded commands to stderr
		`),
		Example: heredoc.Doc(`
			$ todo
			$ printf 'add Buy milk\ntoggle 1\nview\n' | todo --no-color
		`),
		Args: cliargs.None("todo does not accept arguments; type commands after it starts."),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.EnvErr(); err != nil {
				return err
			}

			tasks := f.List(cmd.ErrOrStderr())
			d := f.Dispatcher(tasks, cmd.OutOrStdout())

			return d.Run(f.Context, cmd.InOrStdin(), f.Prompt)
		},
	}

	cmd.Flags().StringVar(
		&f.Prompt,
		"prompt",
		f.Prompt,
		"Prompt printed before each command",
	)

	cmd.Flags().BoolVar(
		&f.NoColor,
		"no-color",
		f.NoColor,
		"Disable colored output",
	)

	cmd.Flags().BoolVarP(
		&f.Verbose,
		"verbose", "v",
		f.Verbose,
		"Log recorded commands to stderr",
	)

	return cmd
}
