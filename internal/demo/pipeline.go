package demo

import (
	"context"

	"go.uber.org/zap"

	certainmap "github.com/ihciah/certain-map"
)

// Service handles a number together with a context handler H. Each stage
// states the slots it needs in H's type, so a pipeline assembled in the
// wrong order does not compile.
type Service[H any] interface {
	Call(ctx context.Context, n uint8, h H) (uint8, error)
}

// Add1 records the incoming number as raw_before_add and passes n+1 on.
type Add1[S0, S1 certainmap.State] struct {
	Next Service[CalcHandler[certainmap.Occupied, S1]]
}

func (s Add1[S0, S1]) Call(ctx context.Context, n uint8, h CalcHandler[S0, S1]) (uint8, error) {
	return s.Next.Call(ctx, n+1, h.ReplaceRawBeforeAdd(n))
}

// Mul2 records the incoming number as raw_before_mul and passes n*2 on.
type Mul2[S0, S1 certainmap.State] struct {
	Next Service[CalcHandler[S0, certainmap.Occupied]]
}

func (s Mul2[S0, S1]) Call(ctx context.Context, n uint8, h CalcHandler[S0, S1]) (uint8, error) {
	return s.Next.Call(ctx, n*2, h.ReplaceRawBeforeMul(n))
}

// Identical logs both recorded numbers and returns n unchanged. It only
// accepts a handler with both slots occupied.
type Identical struct {
	Logger *zap.Logger
}

func (s Identical) Call(ctx context.Context, n uint8, h CalcFull) (uint8, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.Logger != nil {
		s.Logger.Info("identical",
			zap.Uint8("before_add", *CalcRawBeforeAdd(h)),
			zap.Uint8("before_mul", *CalcRawBeforeMul(h)),
			zap.Uint8("num", n),
		)
	}
	return n, nil
}

// WithStore allocates a fresh store per call and runs Inner with its root
// handler. Whatever the store still holds afterwards is dropped.
type WithStore[St certainmap.Storage[H], H any] struct {
	New   func() St
	Inner Service[H]
}

func (s WithStore[St, H]) Call(ctx context.Context, n uint8) (uint8, error) {
	store := s.New()
	defer store.Clear()
	return s.Inner.Call(ctx, n, store.Handler())
}

// Twice runs Next on two forks of the incoming handler and returns the sum.
// The incoming handler is left untouched; each fork is cleared after use.
type Twice[In certainmap.Forker[St, T], St certainmap.Clearer, T certainmap.Attacher[St, H], H any] struct {
	Next Service[H]
}

func (s Twice[In, St, T, H]) Call(ctx context.Context, n uint8, h In) (uint8, error) {
	var sum uint8
	for i := 0; i < 2; i++ {
		r, err := s.callFork(ctx, n, h)
		if err != nil {
			return 0, err
		}
		sum += r
	}
	return sum, nil
}

func (s Twice[In, St, T, H]) callFork(ctx context.Context, n uint8, h In) (uint8, error) {
	store, state := h.Fork()
	defer store.Clear()
	return s.Next.Call(ctx, n, state.Attach(store))
}

// NewCalcPipeline returns Add1 -> Mul2 -> Identical over an empty Calc
// handler.
func NewCalcPipeline(logger *zap.Logger) Service[CalcEmpty] {
	return Add1[certainmap.Vacant, certainmap.Vacant]{
		Next: Mul2[certainmap.Occupied, certainmap.Vacant]{
			Next: Identical{Logger: logger},
		},
	}
}

// NewForkingPipeline returns a store-allocating service that runs the Calc
// pipeline twice on forks of the same empty handler.
func NewForkingPipeline(logger *zap.Logger) WithStore[*Calc, CalcEmpty] {
	return WithStore[*Calc, CalcEmpty]{
		New: NewCalc,
		Inner: Twice[CalcEmpty, *Calc, CalcState[certainmap.Vacant, certainmap.Vacant], CalcEmpty]{
			Next: NewCalcPipeline(logger),
		},
	}
}
