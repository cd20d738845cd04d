package certainmap

import (
	"strconv"
	"strings"
)

// Kind categorizes a contract violation.
type Kind string

const (
	KindStateMismatch Kind = "state_mismatch" // token witness disagrees with cell contents
	KindStaleHandler  Kind = "stale_handler"  // handler superseded by a later transition
	KindCellOccupied  Kind = "cell_occupied"  // write to a live cell
	KindCellVacant    Kind = "cell_vacant"    // read, take or copy of an empty cell
)

// Error describes a violation of the witness/storage pairing.
//
// Only AttachChecked returns one. Everywhere else an Error is a panic payload:
// reaching it means a handler was used outside the generated API, never that a
// slot was missing.
type Error struct {
	Kind   Kind
	Slot   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("certainmap: ")
	b.WriteString(string(e.Kind))
	if e.Slot != "" {
		b.WriteString(" at slot ")
		b.WriteString(strconv.Quote(e.Slot))
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrStateMismatch = &Error{Kind: KindStateMismatch}
	ErrStaleHandler  = &Error{Kind: KindStaleHandler}
	ErrCellOccupied  = &Error{Kind: KindCellOccupied}
	ErrCellVacant    = &Error{Kind: KindCellVacant}
)

// CheckCell compares the witness S of slot against the live flag of its cell.
// Generated AttachChecked methods join the results for every slot.
func CheckCell[S State](slot string, live bool) error {
	want := IsOccupied[S]()
	if want == live {
		return nil
	}
	detail := "token marks slot vacant but cell holds a value"
	if want {
		detail = "token marks slot occupied but cell is empty"
	}
	return &Error{Kind: KindStateMismatch, Slot: slot, Detail: detail}
}
