package clifactory

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/modernice/todo/cli/internal/dispatch"
	"github.com/modernice/todo/list"
)

// Config is the environment configuration of the CLI. Flags of the root
// command override these values.
type Config struct {
	Prompt  string `env:"TODO_PROMPT"`
	NoColor bool   `env:"TODO_NO_COLOR"`
	Verbose bool   `env:"TODO_VERBOSE"`
}

// Factory is used by commands to provide common configuration.
type Factory struct {
	Config

	Context context.Context
	In      io.Reader
	Out     io.Writer
	Err     io.Writer

	environment map[string]string
	envErr      error
}

// Option is a Factory option.
type Option func(*Factory)

// Context returns an Option that sets the Context of a Factory.
func Context(ctx context.Context) Option {
	return func(f *Factory) {
		f.Context = ctx
	}
}

// IO returns an Option that sets the input and outputs of a Factory. Nil
// values keep the defaults (stdin, stdout, stderr).
func IO(in io.Reader, out, errOut io.Writer) Option {
	return func(f *Factory) {
		if in != nil {
			f.In = in
		}
		if out != nil {
			f.Out = out
		}
		if errOut != nil {
			f.Err = errOut
		}
	}
}

// Environment returns an Option that makes the Factory read its Config from
// the provided variables instead of the process environment.
func Environment(vars map[string]string) Option {
	return func(f *Factory) {
		f.environment = vars
	}
}

// New returns a new Factory.
func New(opts ...Option) *Factory {
	f := Factory{
		Config: Config{Prompt: dispatch.DefaultPrompt},
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
	for _, opt := range opts {
		opt(&f)
	}
	if f.Context == nil {
		f.Context = context.Background()
	}

	cfg := f.Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: f.environment}); err != nil {
		f.envErr = fmt.Errorf("parse environment: %w", err)
	} else {
		f.Config = cfg
	}

	return &f
}

// EnvErr returns the error that occurred while parsing the environment, if any.
func (f *Factory) EnvErr() error {
	return f.envErr
}

// Logger returns the logger for debug output. The logger writes to w if
// Verbose is true and discards everything otherwise.
func (f *Factory) Logger(w io.Writer) *log.Logger {
	if !f.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "", log.Ltime)
}

// List returns a new, empty list that writes debug output to w.
func (f *Factory) List(w io.Writer) *list.List {
	return list.New(list.WithLogger(f.Logger(w)))
}

// Dispatcher returns a Dispatcher that operates on tasks and writes to out.
func (f *Factory) Dispatcher(tasks dispatch.Tasks, out io.Writer) *dispatch.Dispatcher {
	return dispatch.New(tasks, out, dispatch.Color(!f.NoColor))
}
