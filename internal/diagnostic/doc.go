// Package diagnostic provides structured errors, warnings and infos for the
// enum conversion generator.
//
// Key capabilities:
//   - The four mapping rule violations reported while collecting member
//     metadata (string targets, duplicate types, repeated type sets,
//     string-only inbound conversions)
//   - Structural errors in descriptor files (missing names, bad types,
//     unresolved values)
//   - Source positions so that editors and go/analysis can point at the
//     offending directive or YAML node
package diagnostic
