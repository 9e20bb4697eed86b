package sortercontract

import (
	"slices"
	"sort"
	"testing"

	"go.llib.dev/sorters/internal/spechelper"
	"go.llib.dev/sorters/pkg/zerokit"
	"go.llib.dev/sorters/port/contract"
	"go.llib.dev/sorters/port/option"
	"go.llib.dev/sorters/port/sorter"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

type Config struct {
	// Stable declares that the Sorter keeps equal elements in their input order.
	Stable bool
	// MaxLength is the upper bound for the length of the randomly generated inputs.
	MaxLength int
}

// minLength is the shortest generated input that still needs a comparison.
const minLength = 2

func (c *Config) Init() {
	c.MaxLength = 64
}

// Normalize raises MaxLength to the shortest input worth sorting.
func (c *Config) Normalize() {
	if c.MaxLength < minLength {
		c.MaxLength = minLength
	}
}

func (c Config) Configure(t *Config) {
	t.Stable = t.Stable || c.Stable
	t.MaxLength = zerokit.Coalesce(c.MaxLength, t.MaxLength)
}

type Option option.Option[Config]

// Stable extends the contract with stability expectations.
func Stable() Option {
	return Config{Stable: true}
}

// MaxLength limits the size of the generated inputs, which is useful for quadratic algorithms.
func MaxLength(n int) Option {
	return Config{MaxLength: n}
}

// Sorter is the contract every sorting strategy must fulfil.
func Sorter(mk contract.Make[sorter.Sorter], opts ...Option) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config](opts)

	subject := let.Var(s, func(t *testcase.T) sorter.Sorter {
		return mk(t)
	})

	s.Describe("#Sort", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []int {
			return spechelper.RandomInts(t.Random, t.Random.IntBetween(minLength, c.MaxLength))
		})
		act := func(t *testcase.T) {
			subject.Get(t).Sort(sorter.Slice[int](values.Get(t)))
		}

		s.Before(func(t *testcase.T) {
			t.OnFail(func() { t.Log("values:", values.Get(t)) })
		})

		s.Then("values end up in ascending order", func(t *testcase.T) {
			act(t)
			assert.NoError(t, sorter.Verify(sorter.Slice[int](values.Get(t))))
		})

		s.Then("values are a permutation of the input, matching the standard library's result", func(t *testcase.T) {
			exp := slices.Clone(values.Get(t))
			slices.Sort(exp)
			act(t)
			assert.Equal(t, exp, values.Get(t))
		})

		s.Then("sorting a second time leaves the values untouched", func(t *testcase.T) {
			act(t)
			sorted := slices.Clone(values.Get(t))
			act(t)
			assert.Equal(t, sorted, values.Get(t))
		})

		s.Then("the length of the sequence is unchanged", func(t *testcase.T) {
			n := len(values.Get(t))
			act(t)
			assert.Equal(t, n, len(values.Get(t)))
		})

		s.When("the sequence is nil", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []int { return nil })

			s.Then("it is a no-op", func(t *testcase.T) {
				assert.NotPanic(t, func() { act(t) })
				assert.Equal(t, 0, len(values.Get(t)))
			})
		})

		s.When("the sequence is empty", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []int { return []int{} })

			s.Then("it is a no-op", func(t *testcase.T) {
				assert.NotPanic(t, func() { act(t) })
				assert.Equal(t, []int{}, values.Get(t))
			})
		})

		s.When("the sequence has a single element", func(s *testcase.Spec) {
			element := let.Var(s, func(t *testcase.T) int { return t.Random.Int() })
			values.Let(s, func(t *testcase.T) []int { return []int{element.Get(t)} })

			s.Then("it is a no-op", func(t *testcase.T) {
				assert.NotPanic(t, func() { act(t) })
				assert.Equal(t, []int{element.Get(t)}, values.Get(t))
			})
		})

		s.When("the sequence has two elements in descending order", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []int { return []int{2, 1} })

			s.Then("they are swapped", func(t *testcase.T) {
				act(t)
				assert.Equal(t, []int{1, 2}, values.Get(t))
			})
		})

		s.When("the sequence is shuffled", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []int { return []int{5, 1, 4, 2, 3} })

			s.Then("it is sorted", func(t *testcase.T) {
				act(t)
				assert.Equal(t, []int{1, 2, 3, 4, 5}, values.Get(t))
			})
		})

		s.When("the sequence is already in ascending order", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []int {
				return spechelper.Ascending(t.Random.IntBetween(minLength, c.MaxLength))
			})

			s.Then("it is left unchanged", func(t *testcase.T) {
				exp := slices.Clone(values.Get(t))
				act(t)
				assert.Equal(t, exp, values.Get(t))
			})
		})

		s.When("the sequence is in descending order", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []int {
				return spechelper.Descending(t.Random.IntBetween(minLength, c.MaxLength))
			})

			s.Then("it is reversed", func(t *testcase.T) {
				exp := spechelper.Ascending(len(values.Get(t)))
				act(t)
				assert.Equal(t, exp, values.Get(t))
			})
		})

		s.When("every element is equal", func(s *testcase.Spec) {
			element := let.Var(s, func(t *testcase.T) int { return t.Random.Int() })
			values.Let(s, func(t *testcase.T) []int {
				vs := make([]int, t.Random.IntBetween(minLength, c.MaxLength))
				for i := range vs {
					vs[i] = element.Get(t)
				}
				return vs
			})

			s.Then("the values stay the same", func(t *testcase.T) {
				exp := slices.Clone(values.Get(t))
				act(t)
				assert.Equal(t, exp, values.Get(t))
			})
		})

		s.When("the sequence has many duplicates", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []int {
				vs := make([]int, t.Random.IntBetween(minLength, c.MaxLength))
				for i := range vs {
					vs[i] = t.Random.IntN(3)
				}
				return vs
			})

			s.Then("values end up in ascending order", func(t *testcase.T) {
				exp := slices.Clone(values.Get(t))
				slices.Sort(exp)
				act(t)
				assert.Equal(t, exp, values.Get(t))
			})
		})
	})

	s.Describe("#Sort with words", func(s *testcase.Spec) {
		words := let.Var(s, func(t *testcase.T) []string {
			return spechelper.Words(t.Random, t.Random.IntBetween(minLength, c.MaxLength))
		})

		s.Then("words end up in lexical order", func(t *testcase.T) {
			exp := slices.Clone(words.Get(t))
			slices.Sort(exp)
			sorter.Sort(words.Get(t), subject.Get(t))
			assert.Equal(t, exp, words.Get(t))
		})
	})

	s.Describe("#Sort with records", func(s *testcase.Spec) {
		records := let.Var(s, func(t *testcase.T) spechelper.Records {
			return spechelper.RandomRecords(t.Random, t.Random.IntBetween(minLength, c.MaxLength))
		})
		act := func(t *testcase.T) {
			sorter.SortSequence(records.Get(t), subject.Get(t))
		}

		s.Then("records end up in ascending key order", func(t *testcase.T) {
			act(t)
			assert.NoError(t, sorter.Verify(records.Get(t)))
		})

		s.Then("no record is lost or duplicated", func(t *testcase.T) {
			exp := records.Get(t).Tags()
			act(t)
			assert.Equal(t, len(exp), records.Get(t).Len())
			got := records.Get(t).Tags()
			slices.Sort(exp)
			slices.Sort(got)
			assert.Equal(t, exp, got)
		})

		if c.Stable {
			s.Then("records with equal keys keep their input order", func(t *testcase.T) {
				exp := records.Get(t).Clone()
				sort.Stable(exp)
				act(t)
				assert.Equal(t, exp.Tags(), records.Get(t).Tags())
			})

			s.When("duplicates are tagged", func(s *testcase.Spec) {
				records.Let(s, func(t *testcase.T) spechelper.Records {
					return spechelper.NewRecords(2, 2, 1, 1)
				})

				s.Then("the tags of equal keys keep their relative order", func(t *testcase.T) {
					og := records.Get(t).Clone()
					act(t)
					assert.Equal(t, []int{1, 1, 2, 2}, records.Get(t).Keys())
					assert.Equal(t, []string{og[2].Tag, og[3].Tag, og[0].Tag, og[1].Tag}, records.Get(t).Tags())
				})
			})
		}
	})

	if c.Stable {
		return s.AsSuite("stable Sorter")
	}
	return s.AsSuite("Sorter")
}

// Test is a shorthand for running the Sorter contract for a strategy.
func Test(t *testing.T, subject sorter.Sorter, opts ...Option) {
	Sorter(func(testing.TB) sorter.Sorter { return subject }, opts...).Test(t)
}
