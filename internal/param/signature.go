package param

import (
	"slices"
	"strings"
)

// Parameter is a single typed literal. Only Type takes part in matching;
// Name and Value are payload.
type Parameter struct {
	Type  TypeRef
	Name  string
	Value string // Go expression, emitted verbatim
}

// TypeEquals reports whether a and b have the same type.
func TypeEquals(a, b Parameter) bool {
	return a.Type == b.Type
}

// Signature is an ordered group of parameters.
type Signature []Parameter

// Types returns the parameter types in declaration order.
func (s Signature) Types() []TypeRef {
	types := make([]TypeRef, len(s))
	for i, p := range s {
		types[i] = p.Type
	}

	return types
}

// HasDuplicateTypes reports whether two parameters of s share a type.
func (s Signature) HasDuplicateTypes() bool {
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if TypeEquals(s[i], s[j]) {
				return true
			}
		}
	}

	return false
}

// Find returns the parameter of type t.
func (s Signature) Find(t TypeRef) (Parameter, bool) {
	for _, p := range s {
		if p.Type == t {
			return p, true
		}
	}

	return Parameter{}, false
}

// Key returns the sorted, comma-joined canonical types of s. Two signatures
// without duplicate types are type-equal iff their keys are equal.
func (s Signature) Key() string {
	keys := make([]string, len(s))
	for i, p := range s {
		keys[i] = p.Type.String()
	}

	slices.Sort(keys)

	return strings.Join(keys, ",")
}

// String renders the signature as "(T1, T2)".
func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = p.Type.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// SignatureTypeEquals reports whether a and b have the same length and every
// parameter of each has a type-equal counterpart in the other. Order is ignored.
func SignatureTypeEquals(a, b Signature) bool {
	if len(a) != len(b) {
		return false
	}

	return containsAll(a, b) && containsAll(b, a)
}

func containsAll(a, b Signature) bool {
	for _, x := range a {
		if !slices.ContainsFunc(b, func(y Parameter) bool { return TypeEquals(x, y) }) {
			return false
		}
	}

	return true
}

// UniqueByType reports whether no signature in sigs is type-equal to candidate.
func UniqueByType(sigs []Signature, candidate Signature) bool {
	return !slices.ContainsFunc(sigs, func(s Signature) bool {
		return SignatureTypeEquals(s, candidate)
	})
}
