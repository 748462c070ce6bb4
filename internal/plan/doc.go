// Package plan turns a descriptor file into per-enum generation plans.
//
// Pipeline:
//  1. Validate the descriptor file (structural errors block an enum)
//  2. Collect one MemberDescriptor per non-ignored member, applying the
//     signature rules and reporting rule diagnostics
//  3. Resolve member values from the enum's constant table
//  4. Dedupe outbound and inbound signatures across members
//
// Rule diagnostics never stop collection; only the offending signature is
// dropped.
package plan
