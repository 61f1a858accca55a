// Package checkout owns the step wizard and the order placement transaction.
package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Step is the wizard position: Shipping -> Payment -> Review.
type Step int

const (
	StepShipping Step = 1
	StepPayment  Step = 2
	StepReview   Step = 3
)

func (s Step) Valid() bool {
	return s >= StepShipping && s <= StepReview
}

// Next advances one step. At Review it stays put; the caller submits the
// order instead of advancing.
func (s Step) Next() Step {
	if s < StepReview {
		return s + 1
	}
	return StepReview
}

// Prev goes back one step, never below Shipping.
func (s Step) Prev() Step {
	if s > StepShipping {
		return s - 1
	}
	return StepShipping
}

const sessionTTL = time.Hour

// SessionStore keeps each user's wizard position in redis so a reload lands
// the shopper back on the step they left.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("checkout:session:%d", userID)
}

// Get returns the stored step, defaulting to Shipping.
func (s *SessionStore) Get(ctx context.Context, userID uint) (Step, error) {
	val, err := s.rdb.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		return StepShipping, nil
	}
	if err != nil {
		return StepShipping, err
	}
	n, err := strconv.Atoi(val)
	if err != nil || !Step(n).Valid() {
		return StepShipping, nil
	}
	return Step(n), nil
}

func (s *SessionStore) Set(ctx context.Context, userID uint, step Step) error {
	return s.rdb.Set(ctx, sessionKey(userID), int(step), sessionTTL).Err()
}

// Clear drops the session, called after a successful order.
func (s *SessionStore) Clear(ctx context.Context, userID uint) error {
	return s.rdb.Del(ctx, sessionKey(userID)).Err()
}
