//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"spos/app"
	"spos/hal"
	"spos/kernel"
)

func main() {
	var cfg hal.HeadlessConfig
	var strategy string
	var seed int64
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&strategy, "strategy", "even", "Scheduling strategy: even, random, run-to-completion, round-robin, inactive-aging.")
	flag.Int64Var(&seed, "seed", 1, "PRNG seed for the random strategy.")
	flag.Parse()

	kind, err := parseStrategy(strategy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	appCfg := app.Config{Strategy: kind, Autostart: demoAutostart(), Seed: seed}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, func(h hal.HAL) func() error {
			return app.Run(h, appCfg)
		}, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(func(h hal.HAL) func() error {
		return app.Run(h, appCfg)
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseStrategy(s string) (kernel.Kind, error) {
	switch s {
	case "even":
		return kernel.Even, nil
	case "random":
		return kernel.Random, nil
	case "run-to-completion":
		return kernel.RunToCompletion, nil
	case "round-robin":
		return kernel.RoundRobin, nil
	case "inactive-aging":
		return kernel.InactiveAging, nil
	default:
		return 0, fmt.Errorf("unknown -strategy %q", s)
	}
}

// demoAutostart spawns a couple of processes so the task-manager overlay
// (chord: buttons 1 and 4 together) has something to show beyond idle.
func demoAutostart() *kernel.AutostartEntry {
	var n1, n2 uint64
	return &kernel.AutostartEntry{
		Program: func() { n1++ },
		Next: &kernel.AutostartEntry{
			Program: func() { n2++ },
		},
	}
}
