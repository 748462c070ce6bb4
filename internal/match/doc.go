// Package match provides identifier normalization, naming helpers for
// generated code and Levenshtein-based "did you mean" suggestions.
package match
