package cpu

import (
	"context"
	"time"
)

// Run drives Clock in a loop, pacing each tick to the Hz the Chip was
// constructed with via New, until ctx is cancelled or Clock returns an
// error (an invalid opcode), whichever comes first. A clockHz of 0 or
// below runs unpaced, as fast as the host can go. Grounded on
// original_source/src/core/cpu.rs's `Iterator for Cpu`, which sleeps
// `1.0 / clock_speed` seconds after every tick.
func (c *Chip) Run(ctx context.Context) error {
	var tick time.Duration
	if c.clockHz > 0 {
		tick = time.Duration(float64(time.Second) / c.clockHz)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := c.Clock(); err != nil {
			return err
		}
		if tick > 0 {
			time.Sleep(tick)
		}
	}
}
