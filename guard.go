package certainmap

import "fmt"

// Guard enforces the one-live-handler rule of a prefilled store at runtime.
//
// Every handler carries the epoch it was issued under. Transitions consume the
// current epoch and issue the next one, so a handler kept around after a
// transition no longer matches and any use of it panics with ErrStaleHandler.
// The zero Guard is ready to use.
type Guard struct {
	epoch uint64
}

// Acquire invalidates all outstanding handlers and returns a fresh epoch.
func (g *Guard) Acquire() uint64 {
	g.epoch++
	return g.epoch
}

// Check panics if epoch is not the current one.
func (g *Guard) Check(epoch uint64) {
	if epoch != g.epoch {
		panic(&Error{
			Kind:   KindStaleHandler,
			Detail: fmt.Sprintf("handler epoch %d, store epoch %d", epoch, g.epoch),
		})
	}
}

// Advance checks epoch and returns the epoch of the successor handler.
func (g *Guard) Advance(epoch uint64) uint64 {
	g.Check(epoch)
	return g.Acquire()
}
