package list

import (
	"io"
	"log"

	"github.com/modernice/todo/command"
	"golang.org/x/exp/slices"
)

// Item is an entry of the list. Items have no identity of their own; they are
// addressed by their 1-based position in the current list.
type Item struct {
	Text      string
	Completed bool
}

// List is the projection of a command.Log. Every mutation is recorded into the
// log before it is applied, and undo/redo rebuild the items by replaying the
// active commands of the log from an empty list.
type List struct {
	history  *command.Log
	logger   *log.Logger
	appliers map[string]func(command.Command)

	items []Item
}

// Option is an option for a List.
type Option func(*List)

// WithLog returns an Option that makes a List record its commands into the
// provided Log. The List is replayed from the active commands of the Log.
func WithLog(l *command.Log) Option {
	return func(list *List) {
		list.history = l
	}
}

// WithLogger returns an Option that provides a List with a logger for debug
// output. By default, a List does not log anything.
func WithLogger(l *log.Logger) Option {
	return func(list *List) {
		list.logger = l
	}
}

// New returns a new List.
func New(opts ...Option) *List {
	list := &List{appliers: make(map[string]func(command.Command))}
	for _, opt := range opts {
		opt(list)
	}

	if list.history == nil {
		list.history = command.NewLog()
	}

	if list.logger == nil {
		list.logger = log.New(io.Discard, "", 0)
	}

	list.applyWith(command.Add, list.add)
	list.applyWith(command.Remove, list.remove)
	list.applyWith(command.Toggle, list.toggle)

	if list.history.Cursor() > 0 {
		list.Replay()
	}

	return list
}

// Add appends a new, uncompleted item with the given text.
func (list *List) Add(text string) {
	list.execute(command.AddItem(text))
}

// Remove removes the item at the given 1-based index. Out-of-range indices are
// ignored and not recorded.
func (list *List) Remove(index int) {
	if !list.inRange(index) {
		return
	}
	list.execute(command.RemoveItem(index))
}

// Toggle flips the completion status of the item at the given 1-based index.
// Out-of-range indices are ignored and not recorded.
func (list *List) Toggle(index int) {
	if !list.inRange(index) {
		return
	}
	list.execute(command.ToggleItem(index))
}

// Undo reverts the most recent active command. Undo returns false if there is
// nothing to undo.
func (list *List) Undo() bool {
	if !list.history.StepBack() {
		return false
	}
	list.Replay()
	return true
}

// Redo re-applies the most recently undone command. Redo returns false if
// there is nothing to redo.
func (list *List) Redo() bool {
	if !list.history.StepForward() {
		return false
	}
	list.Replay()
	return true
}

// Snapshot returns a copy of the current items.
func (list *List) Snapshot() []Item {
	return slices.Clone(list.items)
}

// Len returns the number of items.
func (list *List) Len() int {
	return len(list.items)
}

// Replay clears the items and applies the active commands of the log in the
// order they were recorded.
func (list *List) Replay() {
	active := list.history.Active()

	list.items = nil
	for _, cmd := range active {
		list.apply(cmd)
	}

	list.logger.Printf("[List] Replayed %d commands. (%d items)", len(active), len(list.items))
}

// apply applies cmd to the items without recording it. Commands with an
// unknown name are ignored.
func (list *List) apply(cmd command.Command) {
	if apply, ok := list.appliers[cmd.Name()]; ok {
		apply(cmd)
	}
}

func (list *List) applyWith(name string, fn func(command.Command)) {
	list.appliers[name] = fn
}

func (list *List) execute(cmd command.Command) {
	list.history.Append(cmd)
	list.apply(cmd)
	list.logger.Printf("[List] Recorded %v. [id=%s, cursor=%d]", cmd, cmd.ID(), list.history.Cursor())
}

func (list *List) inRange(index int) bool {
	return index >= 1 && index <= len(list.items)
}

func (list *List) add(cmd command.Command) {
	list.items = append(list.items, Item{Text: cmd.Text()})
}

func (list *List) remove(cmd command.Command) {
	if i := cmd.Index(); list.inRange(i) {
		list.items = slices.Delete(list.items, i-1, i)
	}
}

func (list *List) toggle(cmd command.Command) {
	if i := cmd.Index(); list.inRange(i) {
		list.items[i-1].Completed = !list.items[i-1].Completed
	}
}
