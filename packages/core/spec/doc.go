// Package spec defines the node model for test-collection trees.
//
// A tree is a forest of suites (grouping nodes) and examples (leaf test
// cases with outcomes), delivered as a single immutable snapshot per run by
// an external test runner. The packages under packages/core turn that
// snapshot into nested, human-readable specification output.
package spec
