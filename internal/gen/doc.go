// Package gen provides deterministic Go code generation for enum conversions.
//
// Generation approach uses text/template + go/format for readable,
// allocation-free Go code. For an enum E it emits:
//   - EFromInt and E.Int for the numeric value
//   - ParseE and E.Name for the display name and aliases
//   - E.To<T> per unique outbound signature
//   - EFrom<T1>...<Tn> per unique inbound signature, plus one forwarding
//     overload per other leading parameter
//
// Every generated lookup returns an *InvalidArgumentError wrapping
// ErrInvalidArgument when no member matches. Both are declared once per
// package in the support file.
package gen
