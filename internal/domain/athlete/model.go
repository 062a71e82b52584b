package athlete

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/ndudarev/go_fitness_backend/internal/domain"
)

var (
	ErrAthleteNotFound    = errors.New("athlete not found")
	ErrAthleteExists      = errors.New("athlete already exists")
	ErrSessionExists      = errors.New("session already exists")
	ErrInvalidCredentials = errors.New("email or password is invalid")
	ErrUnauthorized       = errors.New("unauthorized")
)

const (
	EventCreated = "athlete.created"
	EventLogin   = "athlete.login"
	EventLogout  = "athlete.logout"
)

type Hasher interface {
	Hash(password string) string
}

type Authorizer interface {
	Hasher
	Authorize(a *Athlete, password string, dev Device) (*Session, error)
}

// Device is the fingerprint of the client a session was opened from.
type Device struct {
	Browser   string `diff:"browser"`
	OS        string `diff:"os"`
	IPAddress string `diff:"ip_address"`
	Model     string `diff:"model"`
}

type Session struct {
	ID         string     `diff:"-"`
	Secret     string     `diff:"-"`
	CreatedAt  time.Time  `diff:"-"`
	ValidUntil time.Time  `diff:"valid_until"`
	LogoutAt   *time.Time `diff:"logout_at"`
	Device     Device     `diff:"-"`
}

func (s *Session) IsActive() bool {
	return time.Now().Before(s.ValidUntil) && s.LogoutAt == nil
}

// Athlete owns credentials, profile data and open sessions.
// Weight and height here are profile defaults; each sensor package
// still carries the weight used in calorie formulas.
type Athlete struct {
	domain.Aggregate `diff:"-"`
	AthleteID        string     `diff:"-"`
	Email            string     `diff:"email"`
	PasswordHash     string     `diff:"password_hash"`
	FirstName        string     `diff:"first_name"`
	LastName         string     `diff:"last_name"`
	WeightKg         float64    `diff:"weight_kg"`
	HeightCm         float64    `diff:"height_cm"`
	CreatedAt        time.Time  `diff:"-"`
	UpdatedAt        time.Time  `diff:"updated_at"`
	Sessions         []*Session `diff:"-"`
}

func New(athleteID, email, password string, h Hasher) *Athlete {
	now := time.Now().UTC()
	a := &Athlete{
		AthleteID:    athleteID,
		Email:        email,
		PasswordHash: h.Hash(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	a.PushEvent(CreatedEvent{
		At:        a.CreatedAt,
		AthleteID: a.AthleteID,
		Email:     a.Email,
	})
	return a
}

func (a *Athlete) SessionByID(sessionID string) *Session {
	s, ok := lo.Find(a.Sessions, func(s *Session) bool { return s.ID == sessionID })
	if !ok {
		return nil
	}
	return s
}

func (a *Athlete) Authorize(auth Authorizer, password string, dev Device) (*Session, error) {
	s, err := auth.Authorize(a, password, dev)
	if err != nil {
		return nil, err
	}

	a.Sessions = append(a.Sessions, s)
	a.PushEvent(LoginEvent{
		At:        time.Now().UTC(),
		AthleteID: a.AthleteID,
		SessionID: s.ID,
		Device:    s.Device,
	})
	return s, nil
}

func (a *Athlete) Logout(sessionID string) error {
	s := a.SessionByID(sessionID)
	if s == nil {
		return fmt.Errorf("%w: session not found", ErrUnauthorized)
	}
	if s.LogoutAt != nil {
		return fmt.Errorf("%w: session already closed", ErrUnauthorized)
	}

	now := time.Now().UTC()
	s.LogoutAt = &now

	a.PushEvent(LogoutEvent{
		At:        now,
		AthleteID: a.AthleteID,
		SessionID: s.ID,
	})
	return nil
}

// UpdateProfile replaces the mutable profile fields and bumps UpdatedAt.
func (a *Athlete) UpdateProfile(firstName, lastName string, weightKg, heightCm float64) {
	a.FirstName = firstName
	a.LastName = lastName
	a.WeightKg = weightKg
	a.HeightCm = heightCm
	a.UpdatedAt = time.Now().UTC()
}

type CreatedEvent struct {
	At        time.Time
	AthleteID string
	Email     string
}

func (e CreatedEvent) Type() string {
	return EventCreated
}

func (e CreatedEvent) PublishedAt() time.Time {
	return e.At
}

type LoginEvent struct {
	At        time.Time
	AthleteID string
	SessionID string
	Device    Device
}

func (e LoginEvent) Type() string {
	return EventLogin
}

func (e LoginEvent) PublishedAt() time.Time {
	return e.At
}

type LogoutEvent struct {
	At        time.Time
	AthleteID string
	SessionID string
}

func (e LogoutEvent) Type() string {
	return EventLogout
}

func (e LogoutEvent) PublishedAt() time.Time {
	return e.At
}
