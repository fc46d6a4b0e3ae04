// Package pqueue implements a mutable, indexable priority queue: an
// array-backed binary heap paired with a location index keyed by element
// identity.
//
// Overview:
//
//   - The ordering is injected as a Comparator at construction. The element
//     the comparator ranks highest is extracted first, so Natural gives a
//     max-first queue and Reverse(Natural) a min-first one.
//   - Every element is stored once. The backing array and the location map
//     are co-owned by the Heap and updated together on every insert, swap and
//     removal, so an element's slot can be found in O(1) for ChangePriority.
//   - Only the extremal element can be removed. There is no arbitrary delete.
//
// Layout:
//
//	slot i has children 2i+1 and 2i+2 and parent (i-1)/2.
//
//	Heap invariant: for every non-leaf slot i, Comparator(p[i], p[child]) >= 0.
//
// Tie handling:
//
//   - Sift-up moves an element only while it is strictly better than its parent.
//   - Sift-down picks the left child unless the right child is strictly better
//     than it, and swaps only if that child is strictly better than the node.
//     Equal priorities therefore never move, and the left child wins ties.
//
// Complexity:
//
//   - Len, Peek, Contains, Priority: O(1).
//   - Insert: O(log n) amortized (slice growth).
//   - Extract, ChangePriority: O(log n).
//   - Valid: O(n).
//
// Errors (sentinel, test with errors.Is):
//
//   - ErrEmptyQueue        Peek/Extract on an empty queue.
//   - ErrDuplicateElement  Insert of an element already present; queue unchanged.
//   - ErrUnknownElement    ChangePriority of an absent element; queue unchanged.
//
// Concurrency:
//
//	A Heap is not safe for concurrent use. Give each goroutine its own queue.
//
// Debug builds (go test -tags assert) additionally assert that the array and
// the location map stay the same size after every mutation.
package pqueue
