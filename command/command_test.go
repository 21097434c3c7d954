package command_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/modernice/todo/command"
)

func TestNew(t *testing.T) {
	pl := command.AddPayload{Text: "foo"}
	cmd := command.New("foo", pl)

	if cmd.ID() == uuid.Nil {
		t.Errorf("cmd.ID should return a non-zero UUID; got %s", cmd.ID())
	}

	if cmd.Name() != "foo" {
		t.Errorf("cmd.Name should return %q; got %q", "foo", cmd.Name())
	}

	if cmd.Payload() != pl {
		t.Errorf("cmd.Payload should return %#v; got %#v", pl, cmd.Payload())
	}
}

func TestID(t *testing.T) {
	id := uuid.New()
	cmd := command.AddItem("foo", command.ID(id))

	if cmd.ID() != id {
		t.Fatalf("cmd.ID should return %s; got %s", id, cmd.ID())
	}
}

func TestNew_uniqueIDs(t *testing.T) {
	a := command.AddItem("foo")
	b := command.AddItem("foo")

	if a.ID() == b.ID() {
		t.Fatalf("commands should have different IDs; both are %s", a.ID())
	}
}

func TestAddItem(t *testing.T) {
	cmd := command.AddItem("Buy milk")

	if cmd.Name() != command.Add {
		t.Errorf("cmd.Name should return %q; got %q", command.Add, cmd.Name())
	}

	if cmd.Text() != "Buy milk" {
		t.Errorf("cmd.Text should return %q; got %q", "Buy milk", cmd.Text())
	}

	if cmd.Index() != 0 {
		t.Errorf("cmd.Index should return 0 for an %q command; got %d", command.Add, cmd.Index())
	}
}

func TestRemoveItem(t *testing.T) {
	cmd := command.RemoveItem(3)

	if cmd.Name() != command.Remove {
		t.Errorf("cmd.Name should return %q; got %q", command.Remove, cmd.Name())
	}

	if cmd.Index() != 3 {
		t.Errorf("cmd.Index should return %d; got %d", 3, cmd.Index())
	}

	if cmd.Text() != "" {
		t.Errorf("cmd.Text should be empty for a %q command; got %q", command.Remove, cmd.Text())
	}
}

func TestToggleItem(t *testing.T) {
	cmd := command.ToggleItem(2)

	if cmd.Name() != command.Toggle {
		t.Errorf("cmd.Name should return %q; got %q", command.Toggle, cmd.Name())
	}

	if cmd.Index() != 2 {
		t.Errorf("cmd.Index should return %d; got %d", 2, cmd.Index())
	}
}

func TestCommand_String(t *testing.T) {
	tests := map[string]struct {
		cmd  command.Command
		want string
	}{
		"add":     {cmd: command.AddItem("foo"), want: `todo.add("foo")`},
		"remove":  {cmd: command.RemoveItem(1), want: "todo.remove(1)"},
		"toggle":  {cmd: command.ToggleItem(4), want: "todo.toggle(4)"},
		"unknown": {cmd: command.New("foo", nil), want: "foo"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Fatalf("String() should return %q; got %q", tt.want, got)
			}
		})
	}
}
