package command

import "golang.org/x/exp/slices"

// Log is an ordered record of commands with a cursor that marks how many of
// the leading commands are active. Commands after the cursor have been undone
// and can be redone until a new command is appended.
//
// The cursor always stays within [0, Len()].
type Log struct {
	commands []Command
	cursor   int
}

// NewLog returns an empty Log.
func NewLog() *Log {
	return &Log{}
}

// Append records cmd as the next active command. If commands have been undone,
// they are discarded first and can no longer be redone.
func (l *Log) Append(cmd Command) {
	if l.cursor < len(l.commands) {
		l.commands = slices.Delete(l.commands, l.cursor, len(l.commands))
	}
	l.commands = append(l.commands, cmd)
	l.cursor++
}

// StepBack moves the cursor one command back. StepBack returns false and
// leaves the Log unchanged if there is nothing to undo.
func (l *Log) StepBack() bool {
	if l.cursor == 0 {
		return false
	}
	l.cursor--
	return true
}

// StepForward moves the cursor one command forward. StepForward returns false
// and leaves the Log unchanged if there is nothing to redo.
func (l *Log) StepForward() bool {
	if l.cursor == len(l.commands) {
		return false
	}
	l.cursor++
	return true
}

// Active returns the active commands in the order they were recorded. The
// returned slice is a copy.
func (l *Log) Active() []Command {
	return slices.Clone(l.commands[:l.cursor])
}

// Cursor returns the number of active commands.
func (l *Log) Cursor() int {
	return l.cursor
}

// Len returns the number of recorded commands, including undone ones.
func (l *Log) Len() int {
	return len(l.commands)
}
