package command

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// Add is the name of the command that appends an item to the list.
	Add = "todo.add"

	// Remove is the name of the command that removes the item at a 1-based
	// position.
	Remove = "todo.remove"

	// Toggle is the name of the command that flips the completion status of
	// the item at a 1-based position.
	Toggle = "todo.toggle"
)

// Command is an immutable record of a single user intent. Commands are
// recorded into a Log and replayed to rebuild the list.
type Command struct {
	Data Data
}

// Data contains the actual fields of a Command.
type Data struct {
	ID      uuid.UUID
	Name    string
	Payload any
}

// AddPayload is the payload of an Add command.
type AddPayload struct {
	Text string
}

// IndexPayload is the payload of Remove and Toggle commands. Index is the
// 1-based position of the item at the time the command was issued.
type IndexPayload struct {
	Index int
}

// Option is a command option.
type Option func(*Command)

// ID returns an Option that overrides the auto-generated UUID of a Command.
func ID(id uuid.UUID) Option {
	return func(cmd *Command) {
		cmd.Data.ID = id
	}
}

// New returns a new command with the given name and payload.
func New(name string, pl any, opts ...Option) Command {
	cmd := Command{
		Data: Data{
			ID:      uuid.New(),
			Name:    name,
			Payload: pl,
		},
	}
	for _, opt := range opts {
		opt(&cmd)
	}
	return cmd
}

// AddItem returns an Add command for the given text.
func AddItem(text string, opts ...Option) Command {
	return New(Add, AddPayload{Text: text}, opts...)
}

// RemoveItem returns a Remove command for the given 1-based index.
func RemoveItem(index int, opts ...Option) Command {
	return New(Remove, IndexPayload{Index: index}, opts...)
}

// ToggleItem returns a Toggle command for the given 1-based index.
func ToggleItem(index int, opts ...Option) Command {
	return New(Toggle, IndexPayload{Index: index}, opts...)
}

// ID returns the command id.
func (cmd Command) ID() uuid.UUID {
	return cmd.Data.ID
}

// Name returns the command name.
func (cmd Command) Name() string {
	return cmd.Data.Name
}

// Payload returns the command payload.
func (cmd Command) Payload() any {
	return cmd.Data.Payload
}

// Text returns the text of an Add command, or an empty string for any other
// command.
func (cmd Command) Text() string {
	if pl, ok := cmd.Data.Payload.(AddPayload); ok {
		return pl.Text
	}
	return ""
}

// Index returns the 1-based index of a Remove or Toggle command, or 0 for any
// other command.
func (cmd Command) Index() int {
	if pl, ok := cmd.Data.Payload.(IndexPayload); ok {
		return pl.Index
	}
	return 0
}

func (cmd Command) String() string {
	switch cmd.Data.Payload.(type) {
	case AddPayload:
		return fmt.Sprintf("%s(%q)", cmd.Name(), cmd.Text())
	case IndexPayload:
		return fmt.Sprintf("%s(%d)", cmd.Name(), cmd.Index())
	default:
		return cmd.Name()
	}
}
