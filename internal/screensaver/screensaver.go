package screensaver

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	// Width is the number of noise columns per frame.
	Width = 50
	// Height is the number of noise rows per frame.
	Height = 14
	// Interval is the default delay between frames.
	Interval = 120 * time.Millisecond

	header        = "~ Dreamless Sleep ~  (press ENTER to wake up)"
	clearSequence = "\x1b[2J\x1b[H"
)

// Cell returns the character drawn at (x, y) in the given frame.
func Cell(x, y, frame int) rune {
	switch v := (x*13 + y*7 + frame*5) % 97; {
	case v <= 10:
		return '.'
	case v <= 25:
		return '*'
	case v <= 40:
		return 'o'
	case v <= 55:
		return '+'
	case v <= 70:
		return ' '
	case v <= 85:
		return '~'
	default:
		return '-'
	}
}

// Frame renders one full screen of noise, header included.
func Frame(frame int) string {
	var b strings.Builder
	b.WriteString(clearSequence)
	b.WriteString(header + "\n\n")
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			b.WriteRune(Cell(x, y, frame))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Screensaver animates to out until the sleeper wakes.
type Screensaver struct {
	out      io.Writer
	interval time.Duration
}

// New creates a screensaver drawing to out at the default Interval.
func New(out io.Writer) *Screensaver {
	return &Screensaver{out: out, interval: Interval}
}

// WithInterval overrides the frame cadence.
func (s *Screensaver) WithInterval(d time.Duration) *Screensaver {
	s.interval = d
	return s
}

// Run draws frames in a background goroutine while wake blocks for input.
// Once wake returns (or ctx is done) the animation is stopped and joined
// before the wake-up message is written, so the two never interleave.
func (s *Screensaver) Run(ctx context.Context, wake func() error) error {
	fmt.Fprintln(s.out, "You lie down in bed. The lights dim. Press ENTER to wake up.")

	animCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.animate(animCtx)
	}()

	err := wake()
	stop()
	<-done

	fmt.Fprint(s.out, clearSequence)
	fmt.Fprintln(s.out, "You awaken feeling oddly refreshed.")
	fmt.Fprintln(s.out)
	return err
}

func (s *Screensaver) animate(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(s.out, Frame(frame))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
