package generator

import (
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Session scopes the random sampler's state across calls: its random
// source and the signatures of every combination already produced, so
// repeated fast-mode calls within one session never replay an identical
// schedule. The caller owns the session and passes it explicitly; sessions
// are not safe for concurrent use.
type Session struct {
	rng  *rand.Rand
	seen map[string]bool
}

// NewSession seeds from the wall clock, fine whenever reproducibility does
// not matter.
func NewSession() *Session {
	return NewSeededSession(time.Now().UnixNano())
}

// NewSeededSession fixes the random source so identical calls against an
// identical catalog replay the same attempt order.
func NewSeededSession(seed int64) *Session {
	return &Session{
		rng:  rand.New(rand.NewSource(seed)),
		seen: make(map[string]bool),
	}
}

// signature collapses a combination into an order-independent key.
func signature(courses []Course) string {
	keys := lo.Map(courses, func(course Course, _ int) string {
		return course.Key()
	})
	slices.Sort(keys)
	return strings.Join(keys, "+")
}

// replayed reports whether the combination already surfaced within the
// session.
func (session *Session) replayed(courses []Course) bool {
	return session.seen[signature(courses)]
}

func (session *Session) remember(courses []Course) {
	session.seen[signature(courses)] = true
}
