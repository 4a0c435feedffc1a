// Package simulator implements the call/message/video session state machine
// shown in the action modal. Nothing it does leaves the process: the timer,
// toggles and sound are all cosmetic and reset on close.
package simulator

import (
	"fmt"

	"go.uber.org/zap"

	"rhystmorgan/veContacts/internal/audio"
	"rhystmorgan/veContacts/internal/models"
)

type Kind int

const (
	KindNone Kind = iota
	KindCall
	KindMessage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindCall:
		return "call"
	case KindMessage:
		return "message"
	case KindVideo:
		return "video"
	default:
		return "none"
	}
}

// Timed reports whether sessions of this kind run the elapsed-time counter
// and the dialing sound.
func (k Kind) Timed() bool {
	return k == KindCall || k == KindVideo
}

func (k Kind) Title() string {
	switch k {
	case KindCall:
		return "Calling"
	case KindMessage:
		return "Messaging"
	case KindVideo:
		return "Video Calling"
	default:
		return ""
	}
}

func (k Kind) EndLabel() string {
	switch k {
	case KindCall:
		return "End Call"
	case KindMessage:
		return "Send"
	case KindVideo:
		return "End Video"
	default:
		return ""
	}
}

type State int

const (
	StateClosed State = iota
	StateActive
)

// Simulator is the modal's state machine. It is driven from a single UI
// goroutine and is not safe for concurrent use.
type Simulator struct {
	player audio.Player
	logger *zap.Logger

	state      State
	kind       Kind
	contact    *models.Contact
	generation uint64
	elapsed    int
	muted      bool
	videoOff   bool
}

func New(player audio.Player, logger *zap.Logger) *Simulator {
	if player == nil {
		player = audio.NopPlayer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{
		player: player,
		logger: logger.Named("simulator"),
	}
}

// Open starts a session of kind with contact and returns its generation.
// Tick messages must carry this generation to advance the timer. An already
// open session is closed first.
func (s *Simulator) Open(contact models.Contact, kind Kind) uint64 {
	if s.state == StateActive {
		s.Close()
	}

	target := contact
	s.state = StateActive
	s.kind = kind
	s.contact = &target
	s.generation++

	s.logger.Debug("Session opened",
		zap.String("kind", kind.String()),
		zap.String("contact_id", contact.ID),
		zap.Uint64("generation", s.generation))

	if kind.Timed() {
		if err := s.player.Play(); err != nil {
			s.logger.Warn("Audio play prevented", zap.String("kind", kind.String()), zap.Error(err))
		}
	}

	return s.generation
}

// Tick advances the timer by one second if gen is the live session and the
// session is timed. It reports whether the tick was applied; stale ticks
// from a closed session are dropped.
func (s *Simulator) Tick(gen uint64) bool {
	if s.state != StateActive || gen != s.generation || !s.kind.Timed() {
		return false
	}
	s.elapsed++
	return true
}

// Close ends the session, stops and rewinds the sound, resets the counter and
// toggles and forgets the contact. It returns the contact that was open so a
// view can keep drawing it while the overlay fades.
func (s *Simulator) Close() *models.Contact {
	if s.state != StateActive {
		return nil
	}

	closed := s.contact
	s.player.Stop()

	s.logger.Debug("Session closed",
		zap.String("kind", s.kind.String()),
		zap.Int("elapsed", s.elapsed),
		zap.Uint64("generation", s.generation))

	s.state = StateClosed
	s.kind = KindNone
	s.contact = nil
	s.generation++
	s.elapsed = 0
	s.muted = false
	s.videoOff = false

	return closed
}

func (s *Simulator) ToggleMute() bool {
	if s.state != StateActive || !s.kind.Timed() {
		return false
	}
	s.muted = !s.muted
	return true
}

func (s *Simulator) ToggleVideo() bool {
	if s.state != StateActive || s.kind != KindVideo {
		return false
	}
	s.videoOff = !s.videoOff
	return true
}

// SendMessage is the message session's primary action. The text goes
// nowhere; the session just closes.
func (s *Simulator) SendMessage(text string) bool {
	if s.state != StateActive || s.kind != KindMessage {
		return false
	}
	s.logger.Debug("Discarding simulated message", zap.Int("length", len(text)))
	s.Close()
	return true
}

// Display renders the elapsed time as mm:ss.
func (s *Simulator) Display() string {
	return FormatElapsed(s.elapsed)
}

func (s *Simulator) State() State             { return s.state }
func (s *Simulator) Kind() Kind               { return s.kind }
func (s *Simulator) Active() bool             { return s.state == StateActive }
func (s *Simulator) Elapsed() int             { return s.elapsed }
func (s *Simulator) Muted() bool              { return s.muted }
func (s *Simulator) VideoOff() bool           { return s.videoOff }
func (s *Simulator) Generation() uint64       { return s.generation }
func (s *Simulator) Contact() *models.Contact { return s.contact }

// FormatElapsed formats seconds as zero-padded mm:ss. Minutes keep growing
// past 99.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
