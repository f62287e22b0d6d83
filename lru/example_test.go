package lru_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/lru"
)

// ExampleCache shows promotion on Get and eviction of the LRU entry.
func ExampleCache() {
	c, err := lru.New[string, int](2, lru.WithOnEvict(func(k string, v int) {
		fmt.Printf("evicted %s=%d\n", k, v)
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")    // a is now most recently used
	c.Put("c", 3) // b is evicted

	_, ok := c.Get("b")
	fmt.Println(ok, c.Keys())
	// Output:
	// evicted b=2
	// false [c a]
}
