package certainmap

// Vacant marks a slot that holds no value.
type Vacant struct{}

// Occupied marks a slot whose storage cell holds a live value.
type Occupied struct{}

func (Vacant) occupied() bool   { return false }
func (Occupied) occupied() bool { return true }

// State is the per-slot witness of a prefilled handler. The set is closed:
// only Vacant and Occupied satisfy it.
type State interface {
	Vacant | Occupied
	occupied() bool
}

// IsOccupied reports the occupancy recorded by witness S.
// The result is a constant per instantiation.
func IsOccupied[S State]() bool {
	var s S
	return s.occupied()
}
