package ecs

// Config holds global configuration for the ecs package.
var Config config = config{initialEntityCapacity: 256}

type config struct {
	initialEntityCapacity int
}

// SetInitialEntityCapacity configures how many entity slots worlds and
// columns pre-allocate. Only affects worlds created afterwards.
func (c *config) SetInitialEntityCapacity(n int) {
	if n > 0 {
		c.initialEntityCapacity = n
	}
}
