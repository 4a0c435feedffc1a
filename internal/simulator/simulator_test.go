package simulator

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rhystmorgan/veContacts/internal/audio"
	"rhystmorgan/veContacts/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePlayer struct {
	playErr error
	plays   int
	stops   int
	playing bool
}

func (p *fakePlayer) Play() error {
	p.plays++
	if p.playErr != nil {
		return p.playErr
	}
	p.playing = true
	return nil
}

func (p *fakePlayer) Stop() {
	p.stops++
	p.playing = false
}

func (p *fakePlayer) Playing() bool { return p.playing }

var ann = models.Contact{ID: "c1", Name: "Ann Lee", Email: "ann@example.com"}

func TestCallTimerProgressesAndResets(t *testing.T) {
	player := &fakePlayer{}
	sim := New(player, nil)

	gen := sim.Open(ann, KindCall)
	assert.Equal(t, "00:00", sim.Display())

	require.True(t, sim.Tick(gen))
	assert.Equal(t, "00:01", sim.Display())
	require.True(t, sim.Tick(gen))
	assert.Equal(t, "00:02", sim.Display())

	closed := sim.Close()
	require.NotNil(t, closed)
	assert.Equal(t, ann, *closed)
	assert.Equal(t, "00:00", sim.Display())

	assert.False(t, sim.Tick(gen), "ticks after close must be ignored")
	assert.Equal(t, "00:00", sim.Display())
}

func TestOpenStartsAudioForTimedKinds(t *testing.T) {
	tests := []struct {
		kind      Kind
		wantPlays int
	}{
		{kind: KindCall, wantPlays: 1},
		{kind: KindVideo, wantPlays: 1},
		{kind: KindMessage, wantPlays: 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			player := &fakePlayer{}
			sim := New(player, nil)

			sim.Open(ann, tt.kind)
			assert.Equal(t, tt.wantPlays, player.plays)
			assert.Equal(t, StateActive, sim.State())
			assert.Equal(t, tt.kind, sim.Kind())

			sim.Close()
			assert.False(t, player.playing)
			assert.Equal(t, 1, player.stops)
		})
	}
}

func TestMessageSessionHasNoTimer(t *testing.T) {
	sim := New(&fakePlayer{}, nil)

	gen := sim.Open(ann, KindMessage)

	assert.False(t, sim.Tick(gen))
	assert.Equal(t, "00:00", sim.Display())
	assert.False(t, sim.ToggleMute())
	assert.False(t, sim.ToggleVideo())
}

func TestPlaybackFailureIsNotFatal(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	player := &fakePlayer{playErr: errors.New("NotAllowedError")}
	sim := New(player, zap.New(core))

	gen := sim.Open(ann, KindVideo)

	assert.True(t, sim.Active())
	assert.True(t, sim.Tick(gen))
	assert.Equal(t, "00:01", sim.Display())
	assert.Equal(t, 1, logs.FilterMessage("Audio play prevented").Len())
}

func TestTogglesAreScopedByKind(t *testing.T) {
	sim := New(nil, nil)

	assert.False(t, sim.ToggleMute(), "closed simulator has nothing to mute")

	sim.Open(ann, KindCall)
	assert.True(t, sim.ToggleMute())
	assert.True(t, sim.Muted())
	assert.False(t, sim.ToggleVideo(), "calls have no video")
	assert.False(t, sim.VideoOff())

	sim.Open(ann, KindVideo)
	assert.False(t, sim.Muted(), "reopening starts from defaults")
	assert.True(t, sim.ToggleVideo())
	assert.True(t, sim.VideoOff())
	assert.True(t, sim.ToggleMute())
	assert.True(t, sim.ToggleMute())
	assert.False(t, sim.Muted())
}

func TestCloseResetsEverything(t *testing.T) {
	sim := New(&fakePlayer{}, nil)
	gen := sim.Open(ann, KindVideo)
	sim.Tick(gen)
	sim.ToggleMute()
	sim.ToggleVideo()

	sim.Close()

	assert.Equal(t, StateClosed, sim.State())
	assert.Equal(t, KindNone, sim.Kind())
	assert.Nil(t, sim.Contact(), "contact reference is cleared immediately")
	assert.Zero(t, sim.Elapsed())
	assert.False(t, sim.Muted())
	assert.False(t, sim.VideoOff())
	assert.Nil(t, sim.Close(), "closing twice is a no-op")
}

func TestReopenIgnoresOldGeneration(t *testing.T) {
	player := &fakePlayer{}
	sim := New(player, nil)

	oldGen := sim.Open(ann, KindCall)
	sim.Tick(oldGen)
	newGen := sim.Open(models.Contact{ID: "c2", Name: "Bob"}, KindCall)

	assert.NotEqual(t, oldGen, newGen)
	assert.Equal(t, 1, player.stops, "switching sessions stops the old sound")
	assert.Equal(t, "00:00", sim.Display())
	assert.False(t, sim.Tick(oldGen))
	assert.True(t, sim.Tick(newGen))
	assert.Equal(t, "c2", sim.Contact().ID)
}

func TestOpenCopiesContact(t *testing.T) {
	sim := New(nil, nil)
	c := ann

	sim.Open(c, KindCall)
	c.Name = "changed"

	assert.Equal(t, "Ann Lee", sim.Contact().Name)
}

func TestSendMessage(t *testing.T) {
	sim := New(nil, nil)

	assert.False(t, sim.SendMessage("hi"), "nothing open")

	sim.Open(ann, KindCall)
	assert.False(t, sim.SendMessage("hi"), "calls cannot send")
	assert.True(t, sim.Active())

	sim.Open(ann, KindMessage)
	assert.True(t, sim.SendMessage("hello"))
	assert.False(t, sim.Active())
}

func TestFormatElapsed(t *testing.T) {
	tests := map[int]string{
		-5:   "00:00",
		0:    "00:00",
		9:    "00:09",
		59:   "00:59",
		60:   "01:00",
		61:   "01:01",
		3599: "59:59",
		6000: "100:00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatElapsed(in), "seconds=%d", in)
	}
}

func TestKindLabels(t *testing.T) {
	assert.Equal(t, "Calling", KindCall.Title())
	assert.Equal(t, "Messaging", KindMessage.Title())
	assert.Equal(t, "Video Calling", KindVideo.Title())
	assert.Equal(t, "End Call", KindCall.EndLabel())
	assert.Equal(t, "Send", KindMessage.EndLabel())
	assert.Equal(t, "End Video", KindVideo.EndLabel())
	assert.Equal(t, "none", KindNone.String())
}

func TestCloseStopsBellLoop(t *testing.T) {
	player := audio.NewBellPlayer(io.Discard, audio.AllowNonTerminal(), audio.WithInterval(time.Millisecond))
	sim := New(player, nil)

	sim.Open(ann, KindCall)
	require.True(t, player.Playing())

	sim.Close()
	assert.False(t, player.Playing())
}
