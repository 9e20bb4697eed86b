// Package sortstat instruments sorting strategies.
//
// Counter counts the comparisons and swaps a strategy makes on a Sequence,
// and Measured wraps a Sorter to report those counts, with the elapsed time, to an Observer.
package sortstat

import (
	"context"
	"time"

	"go.llib.dev/sorters/pkg/logging"
	"go.llib.dev/sorters/port/sorter"
	"go.llib.dev/testcase/clock"
)

// Stats is the work a strategy did on a sequence.
type Stats struct {
	Comparisons int
	Swaps       int
}

// Counter is a Sequence decorator that counts the calls made to Less and Swap.
// It deliberately doesn't forward the Rotator capability, so every element move is counted as swaps.
type Counter struct {
	Sequence sorter.Sequence
	Stats    Stats
}

func (c *Counter) Len() int { return c.Sequence.Len() }

func (c *Counter) Less(i, j int) bool {
	c.Stats.Comparisons++
	return c.Sequence.Less(i, j)
}

func (c *Counter) Swap(i, j int) {
	c.Stats.Swaps++
	c.Sequence.Swap(i, j)
}

// Count runs the strategy on the sequence and returns the work it took.
func Count(seq sorter.Sequence, strategy sorter.Sorter) Stats {
	c := &Counter{Sequence: seq}
	strategy.Sort(c)
	return c.Stats
}

// Report describes a single Sort call.
type Report struct {
	Strategy string
	Len      int
	Stats
	Duration time.Duration
}

// Observer receives a Report after every sort made through Measured.
type Observer interface {
	ObserveSort(Report)
}

// ObserverFunc is a function based Observer.
type ObserverFunc func(Report)

func (fn ObserverFunc) ObserveSort(r Report) { fn(r) }

// Observers fans a Report out to every observer in the list.
type Observers []Observer

func (obs Observers) ObserveSort(r Report) {
	for _, o := range obs {
		o.ObserveSort(r)
	}
}

// Measured is a Sorter decorator that reports every Sort call of the wrapped strategy.
type Measured struct {
	Name     string
	Sorter   sorter.Sorter
	Observer Observer
}

func (m Measured) Sort(seq sorter.Sequence) {
	var (
		counter = &Counter{Sequence: seq}
		start   = clock.Now()
	)
	m.Sorter.Sort(counter)
	if m.Observer == nil {
		return
	}
	m.Observer.ObserveSort(Report{
		Strategy: m.Name,
		Len:      seq.Len(),
		Stats:    counter.Stats,
		Duration: clock.Now().Sub(start),
	})
}

// LoggingObserver writes every Report as a structured log entry.
type LoggingObserver struct {
	// Logger is the destination of the entries, logging.Default when nil.
	Logger *logging.Logger
	// Level of the entries, logging.LevelDebug when empty.
	Level logging.Level
	// Context is used for the log entries, so details attached to it are logged as well.
	Context context.Context
}

func (o LoggingObserver) ObserveSort(r Report) {
	l := o.Logger
	if l == nil {
		l = &logging.Default
	}
	level := o.Level
	if level == "" {
		level = logging.LevelDebug
	}
	ctx := o.Context
	if ctx == nil {
		ctx = context.Background()
	}
	l.Log(ctx, level, "sorted", logging.Fields{
		"strategy":    r.Strategy,
		"len":         r.Len,
		"comparisons": r.Comparisons,
		"swaps":       r.Swaps,
		"duration_ms": float64(r.Duration) / float64(time.Millisecond),
	})
}
