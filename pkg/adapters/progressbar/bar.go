// Package progressbar renders frame progress as a terminal bar using
// github.com/schollz/progressbar/v3.
package progressbar

import (
	"fmt"
	"io"
	"sync"
	"time"

	pb "github.com/schollz/progressbar/v3"

	"github.com/user/timelapse/pkg/ports"
)

// Options configures the rendered bar.
type Options struct {
	Description string
	Color       bool          // Green saucer when true
	Throttle    time.Duration // Minimum time between redraws (0 = every step)
}

// Bar implements ports.ProgressObserver.
type Bar struct {
	w    io.Writer
	opts Options

	mu      sync.Mutex
	bar     *pb.ProgressBar
	total   int
	current int
}

// New creates a bar that renders to w once Start is called.
func New(w io.Writer, opts Options) *Bar {
	return &Bar{w: w, opts: opts}
}

// Start creates the underlying bar for total steps.
func (b *Bar) Start(total int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	theme := pb.Theme{Saucer: "=", SaucerHead: ">", SaucerPadding: " ", BarStart: "|", BarEnd: "|"}
	if b.opts.Color {
		theme.Saucer = "[green]=[reset]"
		theme.SaucerHead = "[green]>[reset]"
	}

	options := []pb.Option{
		pb.OptionSetWriter(b.w),
		pb.OptionSetDescription(b.opts.Description),
		pb.OptionShowCount(),
		pb.OptionSetPredictTime(true),
		pb.OptionEnableColorCodes(b.opts.Color),
		pb.OptionSetTheme(theme),
		pb.OptionSetWidth(40),
	}
	if b.opts.Throttle > 0 {
		options = append(options, pb.OptionThrottle(b.opts.Throttle))
	}

	b.total = total
	b.current = 0
	b.bar = pb.NewOptions(total, options...)
}

// Advance moves the bar one step.
func (b *Bar) Advance() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.bar == nil {
		return
	}
	b.current++
	_ = b.bar.Add(1)
}

// Finish ends the bar line. An incomplete bar stays at its last position.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.bar == nil {
		return
	}
	if b.current >= b.total {
		_ = b.bar.Finish()
	}
	fmt.Fprintln(b.w)
	b.bar = nil
}

var _ ports.ProgressObserver = (*Bar)(nil)
