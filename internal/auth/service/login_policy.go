package service

import (
	"time"
)

// LoginState is the per-account brute-force state as stored on the user row.
type LoginState struct {
	FailedAttempts int
	LockedUntil    *time.Time
}

// LoginPolicy is the brute-force defense state machine. Transitions are pure
// functions of (state, now); persistence is the caller's concern, so the
// policy itself holds no mutable state and is safe across instances.
type LoginPolicy struct {
	MaxAttempts     int
	LockoutDuration time.Duration
}

func NewLoginPolicy(maxAttempts int, lockoutDuration time.Duration) *LoginPolicy {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if lockoutDuration <= 0 {
		lockoutDuration = 30 * time.Minute
	}
	return &LoginPolicy{MaxAttempts: maxAttempts, LockoutDuration: lockoutDuration}
}

// Locked reports whether the account is inside an active lock window.
// An elapsed lock does not clear the attempt history; it only unblocks
// further attempts.
func (p *LoginPolicy) Locked(state LoginState, now time.Time) bool {
	return state.LockedUntil != nil && now.Before(*state.LockedUntil)
}

// Fail returns the state after a failed password verification. Crossing the
// attempt threshold starts a lock window; the caller surfaces that attempt
// as plain invalid credentials so the lock is silent when triggered.
func (p *LoginPolicy) Fail(state LoginState, now time.Time) LoginState {
	next := LoginState{FailedAttempts: state.FailedAttempts + 1}
	if next.FailedAttempts >= p.MaxAttempts {
		until := now.Add(p.LockoutDuration)
		next.LockedUntil = &until
	}
	return next
}

// Succeed returns the state after a successful login: counter and lock reset.
func (p *LoginPolicy) Succeed() LoginState {
	return LoginState{}
}
