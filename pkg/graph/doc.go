// Package graph provides the directed graph model consumed by the search
// strategies, plus its serialization formats.
//
// # Core Type
//
// [Digraph] stores an adjacency structure from node ID to an ordered
// successor list. The graph is not required to be acyclic, and a node
// that never appears as a key simply has zero successors. Once built, a
// Digraph is treated as immutable by every traversal.
//
// Ordering matters in two places:
//
//   - [Digraph.Successors] preserves the order edges were added, which is
//     the order a manifest listed them.
//   - [Digraph.SortedSuccessors] returns ascending ID order. The search
//     strategies use this as the sibling tie-break, so "A" is always
//     expanded before "B" when both are undiscovered.
//
// # Serialization
//
// Two formats are supported:
//
//   - JSON node-link wire format ([Graph], [Marshal], [Read]) used by the
//     HTTP API, caching, and run storage.
//   - TOML manifests ([Manifest], [ParseManifest]) as the human-edited
//     configuration format.
//
// [Load] picks the decoder by file extension. [Default] returns the
// built-in eight node example graph.
package graph
