// Package notifier delivers completion feedback and reminders. A Notifier
// is chosen once from the user's settings; callers never branch on the
// backend.
package notifier

import (
	"io"
	"strings"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
)

// Pattern is a feedback waveform. Timings alternate off and on durations,
// starting with an off segment.
type Pattern struct {
	Name    string
	Timings []time.Duration
}

var (
	// PatternShort is a single pulse, used for deletions.
	PatternShort = Pattern{Name: "short", Timings: []time.Duration{0, 100 * time.Millisecond}}
	// PatternSuccess marks a logged habit.
	PatternSuccess = Pattern{Name: "success", Timings: []time.Duration{0, 50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond}}
	// PatternConfirm marks an explicit confirmation such as the add form.
	PatternConfirm = Pattern{Name: "confirm", Timings: []time.Duration{0, 50 * time.Millisecond, 50 * time.Millisecond, 100 * time.Millisecond}}
)

// Pulses is the number of on segments in the pattern.
func (p Pattern) Pulses() int {
	return len(p.Timings) / 2
}

// Milliseconds returns the timings in whole milliseconds.
func (p Pattern) Milliseconds() []uint32 {
	ms := make([]uint32, len(p.Timings))
	for i, d := range p.Timings {
		ms[i] = uint32(d.Milliseconds())
	}
	return ms
}

type Notifier interface {
	Notify(Pattern) error
}

// Bell rings the terminal bell once per pulse.
type Bell struct {
	w     io.Writer
	sleep func(time.Duration)
}

func NewBell(w io.Writer) *Bell {
	return &Bell{w: w, sleep: time.Sleep}
}

func (b *Bell) Notify(p Pattern) error {
	for i := 0; i+1 < len(p.Timings); i += 2 {
		if p.Timings[i] > 0 {
			b.sleep(p.Timings[i])
		}
		if _, err := io.WriteString(b.w, "\a"); err != nil {
			return err
		}
	}
	return nil
}

// Nop discards feedback.
type Nop struct{}

func (Nop) Notify(Pattern) error { return nil }

// FromSettings picks the backend configured in settings. w receives bell
// output.
func FromSettings(settings models.Settings, w io.Writer) Notifier {
	switch strings.ToLower(settings.Feedback) {
	case constants.FeedbackTray:
		return NewTray()
	case constants.FeedbackOff:
		return Nop{}
	default:
		return NewBell(w)
	}
}
