package demo

// UserName is the name slot value.
type UserName string

// UserAge is the age slot value.
type UserAge uint8

// Conn stands in for a value that owns a resource. Drop records the release
// so tests can count it.
type Conn struct {
	Addr   string
	Closed int
}

// NewConn returns an open connection to addr.
func NewConn(addr string) *Conn {
	return &Conn{Addr: addr}
}

// Drop closes c.
func (c *Conn) Drop() {
	c.Closed++
}

// Clone returns an independent open connection to the same address.
func (c *Conn) Clone() *Conn {
	return &Conn{Addr: c.Addr}
}
