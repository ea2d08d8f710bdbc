//go:build !tinygo

package app

// haltForever matches kernel.defaultFatalHandler's own panic-based
// default: a fatal scheduler error on host builds unwinds the process via
// a real Go panic rather than spinning.
func haltForever() {
	panic("spos: fatal scheduler error, see log")
}
