package datenorm

import (
	"context"
	"sync"
)

// ResetForTest rearms the compute-once guard and installs a
// replacement probe. Only compiled into test builds.
func (c *Clock) ResetForTest(probe func(ctx context.Context) (bool, error)) {
	c.once = sync.Once{}
	c.use24.Store(false)
	c.probe = probe
}
