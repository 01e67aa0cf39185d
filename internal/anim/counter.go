package anim

// Counter hands out an increasing sequence starting just above its seed.
// Each Counter owns its own count; two counters never share state.
type Counter struct {
	value int
}

// NewCounter returns a counter whose first Next is seed+1.
func NewCounter(seed int) *Counter {
	return &Counter{value: seed}
}

// Next advances the counter and returns the new value.
func (c *Counter) Next() int {
	c.value++
	return c.value
}

// Value returns the current count without advancing it.
func (c *Counter) Value() int {
	return c.value
}
