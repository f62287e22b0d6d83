// Package unionfind provides a disjoint-set forest over the dense ids 0..n-1.
//
// The forest combines the two classic optimizations, and both are always on:
//
//   - Path compression: Find re-points every node on the walked path directly
//     at the discovered root.
//   - Union by rank: Union attaches the root of the shallower tree under the
//     root of the deeper one; equal ranks attach y's root under x's root and
//     bump the surviving rank.
//
// Together they give an amortized cost of O(α(n)) per Find/Union, where α is
// the inverse Ackermann function. Dropping either one degrades to O(log n).
//
// Typical uses: connected components, Kruskal's MST, cycle detection in
// undirected graphs.
//
// Errors:
//
//	ErrInvalidSize - New received a negative size.
//	ErrOutOfRange  - an id outside 0..n-1 was passed.
//
// Union on two ids that already share a set is not an error: it returns false.
package unionfind
