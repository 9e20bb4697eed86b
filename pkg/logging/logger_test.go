package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.llib.dev/sorters/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/clock/timecop"
	"go.llib.dev/testcase/let"
)

func decode(tb testing.TB, out string) []map[string]any {
	var entries []map[string]any
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		e := map[string]any{}
		assert.NoError(tb, dec.Decode(&e))
		entries = append(entries, e)
	}
	return entries
}

func TestLogger(t *testing.T) {
	s := testcase.NewSpec(t)

	now := time.Date(2024, 3, 14, 15, 9, 26, 0, time.UTC)
	s.Before(func(t *testcase.T) {
		timecop.Travel(t, now, timecop.Freeze)
	})

	var (
		buf    = let.Var(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
		level  = let.Var(s, func(t *testcase.T) logging.Level { return "" })
		logger = let.Var(s, func(t *testcase.T) *logging.Logger {
			return &logging.Logger{Out: buf.Get(t), Level: level.Get(t)}
		})
	)

	s.Test("entries are JSON lines with level, message and timestamp", func(t *testcase.T) {
		msg := t.Random.String()
		logger.Get(t).Info(context.Background(), msg)

		entries := decode(t, buf.Get(t).String())
		assert.Equal(t, 1, len(entries))
		assert.Equal[any](t, "info", entries[0]["level"])
		assert.Equal[any](t, msg, entries[0]["message"])
		assert.Equal[any](t, now.Format(time.RFC3339), entries[0]["timestamp"])
	})

	s.Test("fields are part of the entry", func(t *testcase.T) {
		logger.Get(t).Warn(context.Background(), "msg",
			logging.Field("strategy", "merge"),
			logging.Fields{"len": 42},
		)

		entries := decode(t, buf.Get(t).String())
		assert.Equal(t, 1, len(entries))
		assert.Equal[any](t, "merge", entries[0]["strategy"])
		assert.Equal[any](t, float64(42), entries[0]["len"])
	})

	s.Test("error field carries the error message", func(t *testcase.T) {
		logger.Get(t).Error(context.Background(), "boom", logging.ErrField(errors.New("the-message")))

		entries := decode(t, buf.Get(t).String())
		assert.Equal(t, 1, len(entries))
		assert.Equal[any](t, map[string]any{"message": "the-message"}, entries[0]["error"])
	})

	s.Test("nil error field is omitted", func(t *testcase.T) {
		logger.Get(t).Error(context.Background(), "boom", logging.ErrField(nil))

		entries := decode(t, buf.Get(t).String())
		_, ok := entries[0]["error"]
		assert.False(t, ok)
	})

	s.Test("details attached to the context are logged", func(t *testcase.T) {
		ctx := logging.ContextWith(context.Background(), logging.Field("foo", "bar"))
		ctx = logging.ContextWith(ctx, logging.Field("baz", "qux"))
		logger.Get(t).Info(ctx, "msg")

		entries := decode(t, buf.Get(t).String())
		assert.Equal[any](t, "bar", entries[0]["foo"])
		assert.Equal[any](t, "qux", entries[0]["baz"])
	})

	s.Test("nil context is accepted", func(t *testcase.T) {
		//nolint:staticcheck
		logger.Get(t).Info(nil, "msg")
		assert.Contains(t, buf.Get(t).String(), `"msg"`)
	})

	s.When("level is not set", func(s *testcase.Spec) {
		s.Then("debug entries are skipped", func(t *testcase.T) {
			logger.Get(t).Debug(context.Background(), "msg")
			assert.Empty(t, buf.Get(t).String())
		})

		s.Then("info entries are written", func(t *testcase.T) {
			logger.Get(t).Info(context.Background(), "msg")
			assert.NotEmpty(t, buf.Get(t).String())
		})
	})

	s.When("level is error", func(s *testcase.Spec) {
		level.LetValue(s, logging.LevelError)

		s.Then("warn entries are skipped", func(t *testcase.T) {
			logger.Get(t).Warn(context.Background(), "msg")
			assert.Empty(t, buf.Get(t).String())
		})

		s.Then("fatal entries are written", func(t *testcase.T) {
			logger.Get(t).Fatal(context.Background(), "msg")
			assert.NotEmpty(t, buf.Get(t).String())
		})
	})
}

func TestStub(t *testing.T) {
	l, out := logging.Stub(t)
	l.Debug(context.Background(), "hello")
	assert.Contains(t, out.String(), `"hello"`)
	assert.Contains(t, out.String(), `"debug"`)
}

func TestParseLevel(t *testing.T) {
	for raw, exp := range map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"INFO":    logging.LevelInfo,
		"warning": logging.LevelWarn,
		" e ":     logging.LevelError,
		"crit":    "",
	} {
		got, err := logging.ParseLevel(raw)
		if exp == "" {
			assert.ErrorIs(t, err, logging.ErrUnknownLevel)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	}
}

func TestLogger_Separator(t *testing.T) {
	buf := &bytes.Buffer{}
	l := &logging.Logger{Out: buf, Separator: "\n---\n"}
	l.Info(context.Background(), "first")
	l.Info(context.Background(), "second")

	parts := strings.Split(buf.String(), "\n---\n")
	assert.Equal(t, 3, len(parts))
	assert.Contains(t, parts[0], `"first"`)
	assert.Contains(t, parts[1], `"second"`)
	assert.Empty(t, parts[2])
}

func TestLogger_MarshalFunc(t *testing.T) {
	t.Run("entries are serialised with the given function", func(t *testing.T) {
		buf := &bytes.Buffer{}
		var got []byte
		l := &logging.Logger{Out: buf, Separator: ";", MarshalFunc: func(v any) ([]byte, error) {
			bs, err := json.Marshal(v)
			got = bs
			return []byte("entry"), err
		}}
		l.Info(context.Background(), "msg", logging.Field("strategy", "heap"))

		assert.Equal(t, "entry;", buf.String())
		entries := decode(t, string(got))
		assert.Equal(t, 1, len(entries))
		assert.Equal[any](t, "heap", entries[0]["strategy"])
	})

	t.Run("marshal errors drop the entry", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logging.Logger{Out: buf, MarshalFunc: func(any) ([]byte, error) {
			return nil, errors.New("boom")
		}}
		l.Info(context.Background(), "msg")
		assert.Empty(t, buf.String())
	})
}

func TestDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	ogOut, ogLevel := logging.Default.Out, logging.Default.Level
	t.Cleanup(func() {
		logging.Default.Out = ogOut
		logging.Default.Level = ogLevel
	})
	logging.Default.Out = buf
	logging.Default.Level = logging.LevelDebug

	ctx := context.Background()
	logging.Debug(ctx, "debug message")
	logging.Info(ctx, "info message")
	logging.Warn(ctx, "warn message")
	logging.Error(ctx, "error message")
	logging.Fatal(ctx, "fatal message")

	entries := decode(t, buf.String())
	assert.Equal(t, 5, len(entries))
	for i, level := range []string{"debug", "info", "warn", "error", "fatal"} {
		assert.Equal[any](t, level, entries[i]["level"])
		assert.Equal[any](t, level+" message", entries[i]["message"])
	}
}
