// Package watch reports changes to a single file without blocking the caller.
//
// Two strategies share the Source contract: Notifier receives file-system
// notifications on a background goroutine and queues them, Poller compares the
// file's modification time each time it is asked.
package watch

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Source reports whether the watched file changed since the last call.
// TryRecv never blocks; any number of changes since the previous call are
// reported once.
type Source interface {
	TryRecv() (path string, ok bool)
	Close() error
}

// Acknowledger is implemented by sources that must be told when a reported
// change was loaded successfully. Until Ack is called the change may be
// reported again.
type Acknowledger interface {
	Ack(path string)
}

// Mode selects a Source strategy.
type Mode string

const (
	ModeNotify Mode = "notify"
	ModePoll   Mode = "poll"
)

// UnmarshalText lets Mode be read from YAML and environment variables.
func (m *Mode) UnmarshalText(text []byte) error {
	switch v := Mode(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case ModeNotify, ModePoll:
		*m = v
		return nil
	default:
		return fmt.Errorf("unknown watch mode %q (want notify or poll)", string(text))
	}
}

// New returns the Source for mode watching path.
func New(mode Mode, path string, queueSize int, log zerolog.Logger) (Source, error) {
	switch mode {
	case ModeNotify, "":
		return NewNotifier(path, queueSize, log)
	case ModePoll:
		return NewPoller(path, log)
	default:
		return nil, fmt.Errorf("unknown watch mode %q", mode)
	}
}
