package watch

import (
	"time"

	"github.com/djherbis/times"
	"github.com/rs/zerolog"
)

// Poller is the poll-mode Source: every TryRecv stats the file and reports a
// change when its modification time is strictly newer than the one recorded at
// the last successful load. The baseline only moves on Ack, so a change whose
// load failed keeps being reported until a load of it succeeds.
type Poller struct {
	path    string
	loaded  time.Time
	pending time.Time
	failing bool
	log     zerolog.Logger
}

// NewPoller takes the file's current modification time as the baseline, since
// the caller has just loaded it. A missing file is not an error; its first
// appearance counts as a change.
func NewPoller(path string, log zerolog.Logger) (*Poller, error) {
	p := &Poller{
		path: path,
		log:  log.With().Str("component", "watch").Str("path", path).Logger(),
	}
	if ts, err := times.Stat(path); err == nil {
		p.loaded = ts.ModTime()
	}
	return p, nil
}

// TryRecv stats the file once. Stat errors are logged once per failure streak
// and count as no change.
func (p *Poller) TryRecv() (string, bool) {
	ts, err := times.Stat(p.path)
	if err != nil {
		if !p.failing {
			p.log.Warn().Err(err).Msg("cannot stat watched file")
			p.failing = true
		}
		return "", false
	}
	if p.failing {
		p.log.Info().Msg("watched file readable again")
		p.failing = false
	}
	mod := ts.ModTime()
	if !mod.After(p.loaded) {
		return "", false
	}
	p.pending = mod
	return p.path, true
}

// Ack records the modification time last reported by TryRecv as loaded.
func (p *Poller) Ack(string) {
	if p.pending.After(p.loaded) {
		p.loaded = p.pending
	}
}

// Close is a no-op; a Poller holds no resources.
func (p *Poller) Close() error {
	return nil
}
