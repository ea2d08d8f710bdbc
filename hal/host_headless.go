//go:build !tinygo

package hal

import (
	"context"
	"time"
)

// HeadlessConfig configures RunHeadless.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
}

// RunHeadless drives the application's step function on a plain ticker
// instead of an ebiten window, for CI and scripted runs where no display
// is available. It has no keyboard source, so the simulated buttons stay
// released for the whole run.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	h := New().(*hostHAL)
	step := newApp(h)

	hz := cfg.Hz
	if hz <= 0 {
		hz = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(hz))
	defer ticker.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			n++
			if cfg.Ticks != 0 && n >= cfg.Ticks {
				return nil
			}
		}
	}
}
