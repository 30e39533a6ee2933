package dispatch

import (
	"math/rand/v2"
	"sync"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// DefaultRevealTicks is the number of cosmetic picks shown before the winner.
const DefaultRevealTicks = 10

var ErrEmptyPool = errs.New("no eligible customers in pool")

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

type Result struct {
	Winner *customer.Customer
	// RevealTicks are the ids highlighted by the reveal animation, in order.
	// They are rolled before and independently of the winner.
	RevealTicks []uuid.UUID
}

// Engine picks one uniformly random winner from a pool.
type Engine struct {
	mu    sync.Mutex
	rng   Source
	ticks int
}

func NewEngine(rng Source, revealTicks int) *Engine {
	if rng == nil {
		rng = globalSource{}
	}
	if revealTicks < 0 {
		revealTicks = 0
	}
	return &Engine{rng: rng, ticks: revealTicks}
}

// NewDefaultEngine is the production engine backed by the runtime generator.
func NewDefaultEngine() *Engine {
	return NewEngine(nil, DefaultRevealTicks)
}

func (e *Engine) Draw(pool []*customer.Customer) (Result, error) {
	if len(pool) == 0 {
		return Result{}, ErrEmptyPool
	}

	// Sources such as *rand.Rand are not safe for concurrent use.
	e.mu.Lock()
	defer e.mu.Unlock()

	reveal := make([]uuid.UUID, 0, e.ticks)
	for range e.ticks {
		reveal = append(reveal, pool[e.rng.IntN(len(pool))].ID())
	}
	winner := pool[e.rng.IntN(len(pool))]

	return Result{Winner: winner, RevealTicks: reveal}, nil
}
