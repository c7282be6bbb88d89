// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for internal options.
//
// Purpose:
//   - Expose a read-only snapshot of resolved Options and the panic texts to
//     matrix_test without widening the production API.
//   - Compiled only by `go test` (the _test.go suffix), invisible to importers.

// OptionsSnapshot is a stable, read-only view of Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts the way constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// PolicyOf_TestOnly reports the numeric policy carried by m.
func PolicyOf_TestOnly(m *Dense) OptionsSnapshot {
	return OptionsSnapshot{Eps: m.eps, ValidateNaNInf: m.validateNaNInf}
}

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
