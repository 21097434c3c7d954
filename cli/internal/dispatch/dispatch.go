package dispatch

//go:generate mockgen -destination=./mocks/tasks.go . Tasks

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/modernice/todo/internal/slice"
	"github.com/modernice/todo/list"
)

const (
	// Welcome is printed once before the first prompt.
	Welcome = "Welcome to your To-Do List!"

	// DefaultPrompt is the prompt that is printed before reading a line.
	DefaultPrompt = "what would you like to do? add/remove/toggle/view/undo/redo/exit: "

	// CompletedMark marks completed items.
	CompletedMark = "✓"
)

// Tasks is the list that a Dispatcher operates on. *list.List implements Tasks.
type Tasks interface {
	Add(text string)
	Remove(index int)
	Toggle(index int)
	Undo() bool
	Redo() bool
	Snapshot() []list.Item
}

// Dispatcher translates lines of user input into calls to Tasks and writes
// the results to an io.Writer.
type Dispatcher struct {
	tasks Tasks
	out   io.Writer
	au    aurora.Aurora
}

// Option is an option for a Dispatcher.
type Option func(*Dispatcher)

// Color returns an Option that enables or disables colored output. Output is
// colored by default.
func Color(enabled bool) Option {
	return func(d *Dispatcher) {
		d.au = aurora.NewAurora(enabled)
	}
}

// New returns a Dispatcher that operates on tasks and writes to out.
func New(tasks Tasks, out io.Writer, opts ...Option) *Dispatcher {
	d := &Dispatcher{tasks: tasks, out: out}
	for _, opt := range opts {
		opt(d)
	}
	if d.au == nil {
		d.au = aurora.NewAurora(true)
	}
	return d
}

// Run prints the welcome message and executes lines from in until the "exit"
// command is given, in is exhausted, or ctx is canceled. Run returns nil on
// "exit" and at the end of the input.
//
// Lines are read ahead by a separate goroutine, so Run may consume one line
// past "exit". After Run returns, that goroutine stays blocked until the next
// read from in completes; callers must not reuse in after Run.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader, prompt string) error {
	fmt.Fprintln(d.out, Welcome)

	done := make(chan struct{})
	defer close(done)

	lines, readErrs := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(d.out, prompt)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErrs:
					return fmt.Errorf("read input: %w", err)
				default:
				}
				fmt.Fprintln(d.out)
				return nil
			}

			if !d.Execute(line) {
				return nil
			}
		}
	}
}

// readLines reads lines from in until the input is exhausted or done is
// closed. A read error is sent on the returned error channel before the line
// channel is closed.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case <-done:
				return
			case lines <- scanner.Text():
			}
		}

		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()

	return lines, errs
}

// Execute executes a single line of input. Execute returns false if the line
// was the "exit" command.
func (d *Dispatcher) Execute(line string) bool {
	keyword, arg, hasArg := split(line)

	switch keyword {
	case "add":
		if !hasArg {
			break
		}
		d.tasks.Add(arg)
		d.println(d.au.Green(fmt.Sprintf("Added task: %q", arg)).String())
		return true

	case "remove":
		index, ok := parseIndex(arg, hasArg)
		if !ok {
			break
		}
		d.tasks.Remove(index)
		d.println(d.au.Green(fmt.Sprintf("Removed task %s", arg)).String())
		return true

	case "toggle":
		index, ok := parseIndex(arg, hasArg)
		if !ok {
			break
		}
		d.tasks.Toggle(index)
		d.println(d.au.Green(fmt.Sprintf("Toggled task %s", arg)).String())
		return true

	case "view":
		d.render()
		return true

	case "undo":
		if !d.tasks.Undo() {
			d.println(d.au.Yellow("Nothing to undo.").String())
			return true
		}
		d.render()
		d.println(d.au.Green("Undid last action.").String())
		return true

	case "redo":
		if !d.tasks.Redo() {
			d.println(d.au.Yellow("Nothing to redo.").String())
			return true
		}
		d.render()
		d.println(d.au.Green("Redid last action.").String())
		return true

	case "exit":
		d.println("Goodbye!")
		return false
	}

	d.println(d.au.Red("Invalid command.").String())
	return true
}

func (d *Dispatcher) render() {
	items := d.tasks.Snapshot()
	if len(items) == 0 {
		d.println("No tasks.")
		return
	}

	for _, line := range slice.MapPos(items, formatItem) {
		d.println(line)
	}
}

func (d *Dispatcher) println(line string) {
	fmt.Fprintln(d.out, line)
}

func formatItem(pos int, item list.Item) string {
	mark := " "
	if item.Completed {
		mark = CompletedMark
	}
	return fmt.Sprintf("%d. [%s] %s", pos, mark, item.Text)
}

// split trims line and splits it into a lower-cased keyword and the remaining
// argument after the first space.
func split(line string) (keyword, arg string, hasArg bool) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	keyword = strings.ToLower(parts[0])
	if len(parts) > 1 {
		return keyword, parts[1], true
	}
	return keyword, "", false
}

// parseIndex accepts only non-empty strings of ASCII digits.
func parseIndex(arg string, hasArg bool) (int, bool) {
	if !hasArg || arg == "" {
		return 0, false
	}
	for _, r := range arg {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, false
	}
	return index, true
}
