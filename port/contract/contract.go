// Package contract describes the shape of the reusable behavioural test suites in this module.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make creates a new instance of the subject under test.
type Make[Subject any] func(tb testing.TB) Subject

// Contract is a reusable specification of the expectations a consumer has towards a role interface.
// Every supplier of the role interface can prove that it meets them by running the contract.
type Contract interface {
	testcase.Suite
	// Test asserts the behavioural requirements of the role interface.
	Test(*testing.T)
	// Benchmark measures the aspects of the implementation that matter for the consumer.
	Benchmark(*testing.B)
}
