// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of Dense.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are resolved once in the constructor and stored on the Dense.
//     Results of operations inherit the policy of the receiver (left operand).
//   - eps drives both Equal and the singularity test in Inverse.
//   - validateNaNInf guards ingestion only (Set, SetValues); arithmetic may
//     still produce ±Inf (e.g. Scale by +Inf) and is not rejected.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute per-element tolerance used by Equal and
	// by the singular-determinant check.
	DefaultEpsilon = 1e-7

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = false

	// DefaultRows and DefaultCols give the shape produced by New().
	DefaultRows = 3
	DefaultCols = 3
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the comparison tolerance.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - A larger eps relaxes Equal and also widens the band of determinants
//     that Inverse treats as singular.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes Set and SetValues reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value guard (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided setters on top of defaults.
// Setters are applied in order (last-writer-wins); nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
