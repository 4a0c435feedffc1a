// Package audio provides the ambient "dialing" sound played while a simulated
// call is open. A terminal has no audio element, so the sound is the terminal
// bell rung on an interval.
package audio

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// ErrPlaybackUnavailable is returned by Play when the output cannot make a
// sound, e.g. it is not a terminal.
var ErrPlaybackUnavailable = errors.New("audio playback unavailable")

const defaultBellInterval = 2 * time.Second

// Player plays a looping sound. Stop halts playback and rewinds, so the next
// Play starts from the beginning.
type Player interface {
	Play() error
	Stop()
	Playing() bool
}

// NopPlayer never makes a sound.
type NopPlayer struct{}

func (NopPlayer) Play() error   { return nil }
func (NopPlayer) Stop()         {}
func (NopPlayer) Playing() bool { return false }

// BellPlayer rings the terminal bell every interval until stopped.
type BellPlayer struct {
	mu         sync.Mutex
	out        io.Writer
	interval   time.Duration
	requireTTY bool
	cancel     context.CancelFunc
	done       chan struct{}
	rings      int
}

type BellOption func(*BellPlayer)

func WithInterval(d time.Duration) BellOption {
	return func(p *BellPlayer) {
		if d > 0 {
			p.interval = d
		}
	}
}

// AllowNonTerminal lets the player ring into any writer.
func AllowNonTerminal() BellOption {
	return func(p *BellPlayer) {
		p.requireTTY = false
	}
}

func NewBellPlayer(out io.Writer, opts ...BellOption) *BellPlayer {
	p := &BellPlayer{
		out:        out,
		interval:   defaultBellInterval,
		requireTTY: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play starts the bell loop. Calling Play while already playing is a no-op.
func (p *BellPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return nil
	}
	if p.requireTTY && !isTerminal(p.out) {
		return ErrPlaybackUnavailable
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done
	p.rings = 0

	go p.loop(ctx, done)
	return nil
}

// Stop halts the loop and waits for it to exit.
func (p *BellPlayer) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *BellPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Rings reports how many times the bell rang in the current (or last) loop.
func (p *BellPlayer) Rings() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rings
}

func (p *BellPlayer) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.ring()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.ring()
		}
	}
}

func (p *BellPlayer) ring() {
	p.mu.Lock()
	p.rings++
	p.mu.Unlock()

	_, _ = p.out.Write([]byte{'\a'})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
