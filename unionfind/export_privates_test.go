package unionfind

// Test bridge: white-box access to the forest links for the external tests.

// ParentOf returns the raw parent link of x, without compressing.
func ParentOf(uf *UnionFind, x int) int { return uf.parent[x] }
