package certainmap

// Clearer is implemented by every prefilled store. Clear drops every value
// the store holds and invalidates its handlers. Code that allocates or forks
// a store clears it when done with it.
type Clearer interface {
	Clear()
}

// Storage is implemented by every prefilled store. Handler clears the store
// and returns the all-vacant root handler.
type Storage[H any] interface {
	Clearer
	Handler() H
}

// Forker is implemented by handlers of maps declared with fork. Fork copies
// the occupied values into a new store S and returns a detached token T
// carrying the same witness.
type Forker[S, T any] interface {
	Fork() (S, T)
}

// Attacher is implemented by detached tokens. Attach binds the token to store
// S without checking that the store's contents match the token's witness;
// it is meant for the store returned by the Fork that produced the token.
type Attacher[S, H any] interface {
	Attach(S) H
}
