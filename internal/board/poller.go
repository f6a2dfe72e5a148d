package board

import (
	"errors"
	"time"
)

const defaultRefreshInterval = 60 * time.Second

// poll fetches immediately and then on every tick until the controller
// context is cancelled.
func (c *Controller) poll(interval time.Duration) {
	defer c.wg.Done()
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := c.Refresh(c.ctx); errors.Is(err, ErrClosed) {
			return
		}
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
