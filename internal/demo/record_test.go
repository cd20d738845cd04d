package demo

import "testing"

func TestRecord_Scenarios(t *testing.T) {
	var r RecordEmpty = NewRecord()

	withName := r.SetName("ihciah")
	if got := *RecordName(&withName); got != "ihciah" {
		t.Errorf("expected ihciah, got %q", got)
	}

	vacant, name := TakeRecordName(withName)
	if name != "ihciah" {
		t.Errorf("expected taken ihciah, got %q", name)
	}
	vacant = vacant.RemoveName()
	if _, ok := vacant.MaybeName(); ok {
		t.Error("expected name vacant after take and remove")
	}

	withAge := vacant.SetAge(24)
	for i := 0; i < 2; i++ {
		if got := RecordAgeValue(withAge); got != 24 {
			t.Errorf("read %d: expected 24, got %d", i, got)
		}
	}
}

func TestRecord_SetIsTotal(t *testing.T) {
	first, second := NewConn("a"), NewConn("b")
	r := NewRecord().SetConn(first).SetConn(second)
	if first.Closed != 0 {
		t.Errorf("expected overwritten conn left to its other holders, got %d drops", first.Closed)
	}
	if got := *RecordConn(&r); got != second {
		t.Errorf("expected second conn, got %s", got.Addr)
	}

	r2, taken := TakeRecordConn(r)
	if taken != second || second.Closed != 0 {
		t.Errorf("expected take to hand over the conn undropped, closed=%d", second.Closed)
	}
	r2.RemoveConn()
	if second.Closed != 0 {
		t.Errorf("expected remove on vacant slot not to drop, got %d", second.Closed)
	}
}

// Old copies stay usable after a transition, so unfilled operations must
// not destroy values another copy can still reach.
func TestRecord_CopiesNeverDrop(t *testing.T) {
	conn := NewConn("db")
	r := NewRecord().SetConn(conn)
	r.RemoveConn()
	r.RemoveConn()
	if conn.Closed > 1 {
		t.Fatalf("expected at most 1 drop, got %d", conn.Closed)
	}
	if conn.Closed != 0 {
		t.Errorf("expected unfilled remove not to drop, got %d", conn.Closed)
	}

	x, y := NewConn("x"), NewConn("y")
	r2 := NewRecord().SetConn(x)
	r2.SetConn(y)
	_, taken := TakeRecordConn(r2)
	if taken != x || x.Closed != 0 {
		t.Errorf("expected the superseded copy to hand back a live x, got %s closed=%d", taken.Addr, x.Closed)
	}
	if y.Closed != 0 {
		t.Errorf("expected y untouched, got %d drops", y.Closed)
	}
}

func TestRecord_MaybeAndPointer(t *testing.T) {
	r := NewRecord().SetAge(1)
	p, ok := r.MaybeAge()
	if !ok {
		t.Fatal("expected age present")
	}
	*p = 7
	if got := *RecordAge(&r); got != 7 {
		t.Errorf("expected write through MaybeAge pointer, got %d", got)
	}
	if v, ok := r.MaybeAgeValue(); !ok || v != 7 {
		t.Errorf("MaybeAgeValue = %d, %v want 7 true", v, ok)
	}
	if _, ok := r.MaybeName(); ok {
		t.Error("expected name absent")
	}
}

func TestRecord_CloneIsIndependent(t *testing.T) {
	conn := NewConn("db")
	var full RecordFull = NewRecord().SetName("ihciah").SetAge(24).SetConn(conn)

	clone := full.Clone()
	if c := *RecordConn(&clone); c == conn || c.Addr != "db" {
		t.Errorf("expected clone to hold a copy of the conn, got %p (source %p)", c, conn)
	}

	*RecordName(&clone) = "other"
	if got := *RecordName(&full); got != "ihciah" {
		t.Errorf("expected source name untouched, got %q", got)
	}

	empty := NewRecord()
	cloned := empty.Clone()
	if _, ok := cloned.MaybeConn(); ok {
		t.Error("expected clone of empty record to stay empty")
	}
}
