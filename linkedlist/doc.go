// Package linkedlist provides a generic singly linked list with head/tail
// tracking, the free-standing node algorithms that operate on raw chains,
// and the doubly linked node primitive used by bounded caches.
//
// What & Why
//
//   - A List[T] owns its chain through Head; Tail is kept for O(1) appends.
//   - All mutations go through List methods so head, tail and length never
//     drift apart.
//   - Node-level helpers (ReverseNodes, MiddleNode, RemoveNthFromEnd, HasCycle,
//     MergeSorted) work on bare *Node[T] chains, the way pointer puzzles are
//     usually stated.
//   - DNode[T] is the bidirectional node used by package lru.
//
// Complexity
//
//	InsertFront / InsertEnd : O(1)
//	DeleteVal / Find        : O(n)
//	Reverse                 : O(n) time, O(1) extra space
//
// Errors
//
//	ErrIndexOutOfRange - RemoveNthFromEnd received n < 1 or n > length.
//
// Absent values are never errors: DeleteVal and Find report them as false.
package linkedlist
