package certainmap

// Filled carries the value of an occupied slot in an unfilled-style map.
// Unfilled maps are plain values whose copies share slot values, so they
// never run Dropper hooks.
type Filled[T any] struct {
	Value T
}

// Maybe is the per-slot witness of an unfilled-style map holding T.
type Maybe[T any] interface {
	Vacant | Filled[T]
}

// Lookup returns a pointer to the value held by slot s, if it is filled.
func Lookup[T any, S Maybe[T]](s *S) (*T, bool) {
	if f, ok := any(s).(*Filled[T]); ok {
		return &f.Value, true
	}
	return nil, false
}

// CloneSlot duplicates the value held by s with Dup. Vacant slots are
// returned as is.
func CloneSlot[T any, S Maybe[T]](s S) S {
	if f, ok := any(s).(Filled[T]); ok {
		return any(Filled[T]{Value: Dup(f.Value)}).(S)
	}
	return s
}
