package main

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"go.llib.dev/sorters/pkg/sortkit"
	"go.llib.dev/sorters/port/sorter"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestApp(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		stdout = let.Var(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
		stderr = let.Var(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
		args   = let.Var(s, func(t *testcase.T) []string { return []string{"3", "1", "2"} })
	)
	act := func(t *testcase.T) error {
		app := newApp(stdout.Get(t), stderr.Get(t))
		return app.Run(append([]string{"sorters"}, args.Get(t)...))
	}
	lines := func(t *testcase.T) []string {
		return strings.Split(strings.TrimSpace(stdout.Get(t).String()), "\n")
	}

	s.Then("the numbers are printed in ascending order with the default strategy", func(t *testcase.T) {
		assert.NoError(t, act(t))
		assert.Equal(t, "1 2 3\n", stdout.Get(t).String())
	})

	s.When("a strategy is named", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"--strategy", "quick", "--verify", "9", "4", "7", "4", "1"}
		})

		s.Then("it sorts with that strategy", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, "1 4 4 7 9\n", stdout.Get(t).String())
		})
	})

	s.When("the strategy comes from the environment", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			t.Setenv("SORTERS_STRATEGY", "heap")
			t.Setenv("SORTERS_STATS", "true")
		})

		s.Then("the environment value is used", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, "1 2 3\n", stdout.Get(t).String())
			assert.Contains(t, stderr.Get(t).String(), `"strategy":"heap"`)
		})
	})

	s.When("the strategy is unknown", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string { return []string{"--strategy", "bogo", "1"} })

		s.Then("an error is returned", func(t *testcase.T) {
			err := act(t)
			assert.ErrorIs(t, err, ErrUnknownStrategy)
			assert.Contains(t, err.Error(), "bogo")
			assert.Empty(t, stdout.Get(t).String())
		})
	})

	s.When("an argument is not a number", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string { return []string{"1", "two"} })

		s.Then("an error names the argument", func(t *testcase.T) {
			err := act(t)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), `invalid number "two"`)
		})
	})

	s.When("the first number is negative", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string { return []string{"--", "-5", "3", "-1"} })

		s.Then("the numbers after the terminator are sorted", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, "-5 -1 3\n", stdout.Get(t).String())
		})
	})

	s.When("help is requested", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string { return []string{"--help"} })

		s.Then("the usage explains the terminator for negative numbers", func(t *testcase.T) {
			assert.NoError(t, act(t))
			out := stdout.Get(t).String()
			assert.Contains(t, out, "[--] [numbers...]")
			assert.Contains(t, out, "sorters -- -5 3")
		})
	})

	s.When("more random numbers are requested than allowed", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"--random", strconv.Itoa(maxRandom + 1 + t.Random.IntN(1024))}
		})

		s.Then("an error is returned before generating anything", func(t *testcase.T) {
			err := act(t)
			assert.ErrorIs(t, err, ErrRandomTooLarge)
			assert.Empty(t, stdout.Get(t).String())
		})
	})

	s.When("the random count would overflow the value range", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"--random", strconv.Itoa(math.MaxInt / 4)}
		})

		s.Then("it is rejected without panicking", func(t *testcase.T) {
			var err error
			assert.NotPanic(t, func() { err = act(t) })
			assert.ErrorIs(t, err, ErrRandomTooLarge)
		})
	})

	s.When("the log level is invalid", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string { return []string{"--log-level", "loud", "1"} })

		s.Then("an error is returned", func(t *testcase.T) {
			err := act(t)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "log-level")
		})
	})

	s.When("every strategy is requested", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string { return []string{"--all", "3", "1", "2"} })

		s.Then("each strategy prints a labeled result", func(t *testcase.T) {
			assert.NoError(t, act(t))
			got := lines(t)
			assert.Equal(t, len(sortkit.Names()), len(got))
			for i, name := range sortkit.Names() {
				assert.Equal(t, name+": 1 2 3", got[i])
			}
		})
	})

	s.When("random input is requested", func(s *testcase.Spec) {
		n := let.Var(s, func(t *testcase.T) int { return t.Random.IntBetween(1, 64) })
		args.Let(s, func(t *testcase.T) []string {
			return []string{"--random", strconv.Itoa(n.Get(t)), "--seed", "42", "--verify"}
		})

		s.Then("n sorted numbers are printed", func(t *testcase.T) {
			assert.NoError(t, act(t))
			fields := strings.Fields(stdout.Get(t).String())
			assert.Equal(t, n.Get(t), len(fields))
			values := make(sorter.Slice[int], len(fields))
			for i, f := range fields {
				v, err := strconv.Atoi(f)
				assert.NoError(t, err)
				values[i] = v
			}
			assert.True(t, sorter.IsSorted(values))
		})

		s.Then("the same seed gives the same output", func(t *testcase.T) {
			assert.NoError(t, act(t))
			first := stdout.Get(t).String()
			stdout.Get(t).Reset()
			assert.NoError(t, act(t))
			assert.Equal(t, first, stdout.Get(t).String())
		})
	})

	s.When("stats are requested", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string { return []string{"--stats", "--strategy", "bubble", "1", "2", "3"} })

		s.Then("comparison and swap counts are logged", func(t *testcase.T) {
			assert.NoError(t, act(t))
			out := stderr.Get(t).String()
			assert.Contains(t, out, `"message":"sorted"`)
			assert.Contains(t, out, `"comparisons":2`)
			assert.Contains(t, out, `"swaps":0`)
		})
	})
}
