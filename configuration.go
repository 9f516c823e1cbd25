package orderedlist

type Configuration struct {
	capacity  int
	dumpSize  int
	dumpCount int
}

func Configure() *Configuration {
	return &Configuration{
		capacity:  0,
		dumpSize:  0,
		dumpCount: 0,
	}
}

// Number of nodes to reserve room for on the first insert. The list grows
// on demand past this.
// [0]
func (c *Configuration) Capacity(capacity uint32) *Configuration {
	c.capacity = int(capacity)
	return c
}

// Give the list its own pool of count buffers, each size bytes, used when
// dumping the list. Lists without one share a package-wide pool.
// [shared pool of 64 buffers of 4096 bytes]
func (c *Configuration) DumpBuffer(size, count uint32) *Configuration {
	c.dumpSize = int(size)
	c.dumpCount = int(count)
	return c
}
