// Package logic implements the expression model shared by every inference
// rule: immutable operator-tagged trees, the two equality modes (strict
// structural and double-negation-tolerant), and the Claim/Premise bundle
// describing a single asserted proof step.
//
// Everything in this package is pure data. Expressions are never mutated
// after construction, so values can be shared freely across goroutines and
// across repeated verification attempts.
//
// Out of scope:
//   - parsing formulas from text (callers supply trees)
//   - proof search (a Claim asserts one step; nothing here discovers steps)
//   - rendering beyond the canonical text form used in diagnostics
package logic
