//go:build tinygo

package main

import (
	"spos/app"
	"spos/hal"
	"spos/kernel"
)

func main() {
	h := hal.New()
	step := app.Run(h, app.Config{Strategy: kernel.Even, Seed: 1})

	for range h.Time().Ticks() {
		if err := step(); err != nil {
			return
		}
	}
}
