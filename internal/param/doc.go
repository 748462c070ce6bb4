// Package param provides the parameter model shared by the collector and the
// emitter: typed parameters, signatures (ordered parameter groups) and the
// order-independent type-equality rules used to group them.
//
// Key types:
//   - TypeRef: canonical type identifier (import path + name + generic args)
//   - Parameter: one typed literal (type, name, Go value expression)
//   - Signature: ordered parameters; outbound signatures have one parameter,
//     inbound signatures have pairwise-distinct parameter types
package param
