// Package ids allocates identifiers for new records and stamps them with
// the current calendar date.
//
// Question and user ids are max+1 over the existing collection and are
// deterministic. Answer ids are derived from the wall clock plus a bounded
// random offset, which makes collisions between rapid successive calls
// unlikely but not impossible.
package ids

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dmitrijs2005/askpro/internal/models"
)

// DateLayout is the ISO calendar date format used for every timestamp field.
const DateLayout = "2006-01-02"

// answerJitter bounds the random offset added to answer ids.
const answerJitter = 1000

// Allocator hands out identifiers and dates. The zero value is not usable;
// construct one with New.
type Allocator struct {
	mu  sync.Mutex
	now func() time.Time
	rnd *rand.Rand
}

// Option customizes an Allocator.
type Option func(*Allocator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Allocator) { a.now = now }
}

// WithRand replaces the random source used for answer ids.
func WithRand(r *rand.Rand) Option {
	return func(a *Allocator) { a.rnd = r }
}

func New(opts ...Option) *Allocator {
	a := &Allocator{
		now: time.Now,
		rnd: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// NextQuestionID returns one more than the largest id in qs, or 1 if qs is empty.
func (a *Allocator) NextQuestionID(qs []models.Question) int64 {
	var highest int64
	for _, q := range qs {
		if q.ID > highest {
			highest = q.ID
		}
	}
	return highest + 1
}

// NextUserID returns one more than the largest id in us, or 1 if us is empty.
func (a *Allocator) NextUserID(us []models.User) int64 {
	var highest int64
	for _, u := range us {
		if u.ID > highest {
			highest = u.ID
		}
	}
	return highest + 1
}

// NextAnswerID returns the current Unix time in milliseconds plus a random
// offset in [0, 1000).
func (a *Allocator) NextAnswerID() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.now().UnixMilli() + a.rnd.Int64N(answerJitter)
}

// Today returns the allocator clock's local date as YYYY-MM-DD.
func (a *Allocator) Today() string {
	return a.now().Format(DateLayout)
}
