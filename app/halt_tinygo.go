//go:build tinygo

package app

// haltForever spins with preemption already effectively stopped: the
// caller never calls System.Tick again after a fatal error, so this just
// parks the goroutine instead of returning into undefined state.
func haltForever() {
	for {
	}
}
