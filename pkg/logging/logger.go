// Package logging provides structured logging.
// With logging, you can use context to add logging details to your call stack.
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/testcase/clock"
)

type Logger struct {
	Out io.Writer

	// Level is the logging level.
	// The default Level is LevelInfo.
	Level Level
	// Separator is used to separate log entries from each other.
	// By default, it is the current operating system's line separator.
	Separator string
	// MarshalFunc is used to serialise the logging entry.
	// When nil it defaults to JSON format.
	MarshalFunc func(any) ([]byte, error)

	outLock sync.Mutex
}

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelError, msg, ds...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelFatal, msg, ds...)
}

func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	if !isLevelEnabled(l.Level, level) {
		return
	}
	_ = l.logTo(l.writer(), l.toEntry(ctx, level, msg, clock.Now(), ds))
}

func (l *Logger) toEntry(ctx context.Context, level Level, msg string, ts time.Time, ds []Detail) entry {
	e := make(entry)
	for _, d := range getDetailsFromContext(ctx) {
		d.addTo(e)
	}
	for _, d := range ds {
		d.addTo(e)
	}
	e["level"] = level
	e["message"] = msg
	e["timestamp"] = ts.Format(time.RFC3339)
	return e
}

func (l *Logger) logTo(out io.Writer, e entry) error {
	bs, err := l.marshalFunc()(e)
	if err != nil {
		return err
	}
	_, err = out.Write(append(bs, []byte(l.separator())...))
	return err
}

func (l *Logger) marshalFunc() func(any) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return json.Marshal
}

func (l *Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	if os.PathSeparator == '\\' {
		return "\r\n"
	}
	return "\n"
}

type syncwriter struct {
	Writer io.Writer
	Locker sync.Locker
}

func (w *syncwriter) Write(p []byte) (n int, err error) {
	w.Locker.Lock()
	defer w.Locker.Unlock()
	return w.Writer.Write(p)
}

func (l *Logger) writer() io.Writer {
	var out io.Writer = os.Stderr
	if l.Out != nil {
		out = l.Out
	}
	return &syncwriter{Writer: out, Locker: &l.outLock}
}

type testingTB interface {
	Helper()
}

// Stub returns a debug level Logger that records its output into the returned buffer.
func Stub(tb testingTB) (*Logger, StubOutput) {
	tb.Helper()
	out := &stubOutput{}
	return &Logger{Level: LevelDebug, Out: out}, out
}

type StubOutput interface {
	io.Reader
	String() string
	Bytes() []byte
}

type stubOutput struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (o *stubOutput) Read(p []byte) (int, error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Read(p)
}

func (o *stubOutput) Write(p []byte) (int, error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Write(p)
}

func (o *stubOutput) String() string {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.String()
}

func (o *stubOutput) Bytes() []byte {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Bytes()
}
