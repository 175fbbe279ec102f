package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects for auth lifecycle events consumed elsewhere in the backend.
const (
	SubjectUserRegistered  = "auth.user.registered"
	SubjectUserLocked      = "auth.user.locked"
	SubjectPasswordChanged = "auth.password.changed"
)

type UserRegistered struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

type UserLocked struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	LockedUntil time.Time `json:"locked_until"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type PasswordChanged struct {
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits auth lifecycle events. Publishing is best-effort; callers
// log failures and never fail the request over them.
type Publisher interface {
	Publish(subject string, event any) error
	Close()
}

type NatsPublisher struct {
	nc *nats.Conn
}

func NewNatsPublisher(url string) (*NatsPublisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &NatsPublisher{nc: nc}, nil
}

func (p *NatsPublisher) Publish(subject string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.nc.Publish(subject, data)
}

func (p *NatsPublisher) Close() {
	p.nc.Close()
}

// NoopPublisher drops all events. Used when NATS_URL is unset and in tests.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) Publish(subject string, event any) error { return nil }

func (p *NoopPublisher) Close() {}
