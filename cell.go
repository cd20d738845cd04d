package certainmap

// Dropper is implemented by slot values that own resources. Drop is called
// exactly once when the value is removed, replaced or released from a
// prefilled map without being taken by the caller. Unfilled maps never call
// it.
type Dropper interface {
	Drop()
}

// Cloner is implemented by slot values that need a deep copy on fork or on an
// owned read. Values without it are copied by Go assignment.
type Cloner[T any] interface {
	Clone() T
}

// Dup returns an independent copy of v.
func Dup[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// drop runs the Dropper hook of v, if any.
func drop[T any](v T) {
	if d, ok := any(v).(Dropper); ok {
		d.Drop()
	}
}

// Cell is one storage slot of a prefilled map. Generated code only touches a
// cell through an operation whose witness proves its state, so the checks
// below fire on contract violations only.
type Cell[T any] struct {
	value T
	live  bool
}

// Live reports whether the cell holds a value.
func (c *Cell[T]) Live() bool {
	return c.live
}

// Write stores v into a vacant cell.
func (c *Cell[T]) Write(v T) {
	if c.live {
		panic(&Error{Kind: KindCellOccupied, Detail: "write to a live cell"})
	}
	c.value = v
	c.live = true
}

// Ref returns a pointer to the stored value. The pointer is valid until the
// slot is taken or removed.
func (c *Cell[T]) Ref() *T {
	c.mustLive("read")
	return &c.value
}

// Copy returns an owned copy of the stored value, see Dup.
func (c *Cell[T]) Copy() T {
	c.mustLive("copy")
	return Dup(c.value)
}

// Take moves the value out and leaves the cell vacant.
func (c *Cell[T]) Take() T {
	c.mustLive("take")
	v := c.value
	var zero T
	c.value = zero
	c.live = false
	return v
}

// Drop destroys the stored value in place. A vacant cell is left untouched.
func (c *Cell[T]) Drop() {
	if !c.live {
		return
	}
	drop(c.Take())
}

func (c *Cell[T]) mustLive(op string) {
	if !c.live {
		panic(&Error{Kind: KindCellVacant, Detail: op + " of an empty cell"})
	}
}
