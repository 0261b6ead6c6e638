// Package search implements goal-directed graph exploration with two
// uninformed strategies: breadth-first (FIFO frontier) and depth-first
// (LIFO frontier).
//
// Both strategies share one contract, exposed through [Run]:
//
//   - Nodes are marked visited when discovered, not when expanded. This
//     prevents re-enqueueing and makes cyclic graphs safe.
//   - Parent and level assignments happen once, at discovery time, and
//     are never overwritten (first discoverer wins).
//   - Sibling tie-break is ascending node ID in both strategies. BFS
//     enqueues siblings ascending; DFS pushes them descending so the
//     smallest sits on top of the stack.
//   - The traversal stops the instant the goal is taken off the
//     frontier. The goal's successors are never explored and the final
//     goal expansion is not recorded as a trace step.
//
// Every run produces a [Result] with the reconstructed path (empty when
// the goal is unreachable), the full step-by-step [Step] trace with
// owned frontier/visited snapshots, and the per-node discovery levels.
// For BFS the level of a reachable node equals its minimum edge-count
// distance from the start; for DFS it is only the depth of the discovery
// tree actually walked.
package search
