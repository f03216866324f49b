package checkout

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"pasal/internal/payments"
)

// State is the explicit checkout state machine value. The original flow
// tracked isLoading/isProcessing flags independently, which made impossible
// combinations reachable; a single enum cannot get there.
type State string

const (
	// StateIdle: the payment method list is selectable.
	StateIdle State = "idle"
	// StateDispatching: one provider's builder/signer is running.
	StateDispatching State = "dispatching"
	// StateAwaiting: control has left for the provider's page/app and has
	// not yet returned. Exits on focus-regain or user cancel, both to idle.
	StateAwaiting State = "awaiting_external"
)

var (
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrNotIdle         = errors.New("a payment attempt is already in flight")
	ErrNotDispatching  = errors.New("no dispatch in progress")
)

type Product struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type Order struct {
	Product     Product `json:"product"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
}

type Session struct {
	ID             string                    `json:"id"`
	Order          Order                     `json:"order"`
	State          State                     `json:"state"`
	SelectedMethod string                    `json:"selected_method,omitempty"`
	LastDispatch   *payments.PaymentResponse `json:"-"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// Store holds live checkout sessions in memory. Sessions are transient by
// contract: they reset on focus-regain or cancel and expire after the TTL,
// and nothing about a payment attempt outlives its dispatch.
type Store struct {
	sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (s *Store) Create(order Order) Session {
	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		Order:     order,
		State:     StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.Lock()
	s.sessions[session.ID] = session
	s.Unlock()

	return *session
}

func (s *Store) Get(id string) (Session, error) {
	s.RLock()
	defer s.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return *session, nil
}

// BeginDispatch moves idle -> dispatching. At most one attempt is in flight
// per session; anything else is rejected here rather than trusted to the UI.
func (s *Store) BeginDispatch(id, method string) error {
	s.Lock()
	defer s.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if session.State != StateIdle {
		return ErrNotIdle
	}

	session.State = StateDispatching
	session.SelectedMethod = method
	session.UpdatedAt = time.Now()
	return nil
}

// CompleteDispatch moves dispatching -> awaiting_external and records the
// dispatch descriptor so form-mode providers can be re-rendered.
func (s *Store) CompleteDispatch(id string, resp *payments.PaymentResponse) error {
	s.Lock()
	defer s.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if session.State != StateDispatching {
		return ErrNotDispatching
	}

	session.State = StateAwaiting
	session.LastDispatch = resp
	session.UpdatedAt = time.Now()
	return nil
}

// AbortDispatch returns a failed attempt to idle. Failures are terminal for
// the attempt; retrying requires a fresh dispatch.
func (s *Store) AbortDispatch(id string) error {
	s.Lock()
	defer s.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if session.State != StateDispatching {
		return ErrNotDispatching
	}

	session.State = StateIdle
	session.SelectedMethod = ""
	session.UpdatedAt = time.Now()
	return nil
}

// RegainFocus applies the focus heuristic: if the session was awaiting the
// external flow it goes back to idle, no matter how focus was lost. It never
// confirms a payment; it only ends the external hop. Returns whether a
// transition happened.
func (s *Store) RegainFocus(id string) (bool, error) {
	s.Lock()
	defer s.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return false, ErrSessionNotFound
	}
	if session.State != StateAwaiting {
		return false, nil
	}

	session.State = StateIdle
	session.SelectedMethod = ""
	session.LastDispatch = nil
	session.UpdatedAt = time.Now()
	return true, nil
}

// Cancel resets the session to idle from any state. It does not abort an
// in-flight provider call or invalidate a signature already computed.
func (s *Store) Cancel(id string) error {
	s.Lock()
	defer s.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	session.State = StateIdle
	session.SelectedMethod = ""
	session.LastDispatch = nil
	session.UpdatedAt = time.Now()
	return nil
}

func (s *Store) Delete(id string) {
	s.Lock()
	delete(s.sessions, id)
	s.Unlock()
}

func (s *Store) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle past the TTL and reports how many were removed.
func (s *Store) Sweep() int {
	cutoff := time.Now().Add(-s.ttl)

	s.Lock()
	defer s.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
