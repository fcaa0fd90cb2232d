// Package reconciler runs supervised per-wedding verification sessions. A
// session owns every timer for its wedding: triggers from any source (a
// fresh checkout, the payer landing on the return URL, an explicit kick)
// collapse into one bounded verification burst, so concurrent triggers can
// never stack unbounded pollers for the same wedding.
package reconciler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/elegantevents/wedding-finance/pkg/gateway"
	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/elegantevents/wedding-finance/pkg/storage"
	"github.com/elegantevents/wedding-finance/pkg/verification"
	"github.com/elegantevents/wedding-finance/pkg/websockets"
)

// State is the lifecycle state of a reconciliation session.
type State string

const (
	StateIdle      State = "IDLE"
	StateActive    State = "ACTIVE"
	StateSettled   State = "SETTLED"
	StateExhausted State = "EXHAUSTED"
)

// DefaultInterval is the background re-check cadence while a session lives.
const DefaultInterval = 10 * time.Second

// Session tracks one wedding's pending checkout attempt until it settles
// or the bounded burst runs out.
type Session struct {
	WeddingID     string
	InstallmentID string
	TxRef         string

	cancel context.CancelFunc
	kick   chan struct{}
	done   chan struct{}

	mu    sync.Mutex
	state State
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Done is closed when the session's goroutine has fully stopped.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Kick requests a verification burst. Kicks arriving while a burst is in
// flight coalesce into at most one follow-up burst.
func (s *Session) Kick() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Manager supervises at most one Session per wedding.
type Manager struct {
	Gateway      gateway.Gateway
	Store        storage.SettlementStore
	Installments storage.InstallmentReader
	Publisher    websockets.Publisher

	// Interval is the background re-check cadence; BaseDelay spaces the
	// attempts inside a burst. Zero values take the defaults.
	Interval  time.Duration
	BaseDelay time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	stopped  bool
}

// NewManager creates a session Manager with default timing.
func NewManager(gw gateway.Gateway, store storage.SettlementStore, installments storage.InstallmentReader, publisher websockets.Publisher) *Manager {
	return &Manager{
		Gateway:      gw,
		Store:        store,
		Installments: installments,
		Publisher:    publisher,
		Interval:     DefaultInterval,
		BaseDelay:    verification.BaseDelay,
		sessions:     make(map[string]*Session),
	}
}

// Track starts (or kicks) the session for a wedding's checkout attempt and
// immediately triggers a burst. The txRef may be empty when only a return
// marker is known; the session then reconciles from stored state alone.
func (m *Manager) Track(weddingID, installmentID, txRef string) *Session {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return nil
	}
	if existing, ok := m.sessions[weddingID]; ok {
		m.mu.Unlock()
		existing.Kick()
		return existing
	}

	ctx, cancel := context.WithCancel(context.Background())
	session := &Session{
		WeddingID:     weddingID,
		InstallmentID: installmentID,
		TxRef:         txRef,
		cancel:        cancel,
		kick:          make(chan struct{}, 1),
		done:          make(chan struct{}),
		state:         StateIdle,
	}
	m.sessions[weddingID] = session
	m.mu.Unlock()

	session.Kick()
	go m.run(ctx, session)
	return session
}

// Kick triggers a burst on the wedding's session, if one exists.
func (m *Manager) Kick(weddingID string) bool {
	m.mu.Lock()
	session, ok := m.sessions[weddingID]
	m.mu.Unlock()
	if ok {
		session.Kick()
	}
	return ok
}

// Session returns the live session for a wedding, if any.
func (m *Manager) Session(weddingID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[weddingID]
	return session, ok
}

// Stop tears down every session and waits for their goroutines to exit.
// Results of calls in flight at Stop time are discarded.
func (m *Manager) Stop() {
	m.mu.Lock()
	m.stopped = true
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.cancel()
		<-s.done
	}
}

func (m *Manager) release(session *Session) {
	m.mu.Lock()
	if current, ok := m.sessions[session.WeddingID]; ok && current == session {
		delete(m.sessions, session.WeddingID)
	}
	m.mu.Unlock()
	session.cancel()
}

func (m *Manager) run(ctx context.Context, session *Session) {
	defer close(session.done)

	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-session.kick:
		case <-ticker.C:
		}

		if m.burst(ctx, session) {
			m.release(session)
			return
		}
	}
}

// burst runs up to MaxAttempts verification attempts, spaced with strictly
// increasing delays. It reports true when the session reached a terminal
// state.
func (m *Manager) burst(ctx context.Context, session *Session) bool {
	session.setState(StateActive)

	for attempt := int32(1); attempt <= verification.MaxAttempts; attempt++ {
		if resolved := m.attempt(ctx, session, attempt); resolved {
			session.setState(StateSettled)
			return true
		}
		if ctx.Err() != nil {
			return false
		}
		if attempt < verification.MaxAttempts {
			if !sleep(ctx, time.Duration(attempt+1)*m.BaseDelay) {
				return false
			}
		}
	}

	// The burst ran out without a confirmed outcome. Clearing the attempt
	// marker stops a page reload from re-triggering the burst; the cron
	// reconciler takes over from here.
	session.setState(StateExhausted)
	if session.TxRef != "" {
		if err := m.Store.ExhaustAttempt(ctx, session.TxRef); err != nil {
			slog.Error("failed to exhaust checkout attempt",
				"txRef", session.TxRef, "error", err)
		}
	}
	slog.Info("reconciliation burst exhausted, payment still pending",
		"weddingId", session.WeddingID, "txRef", session.TxRef)
	return true
}

// attempt performs one verify-then-refresh cycle. A failed verify call
// never suppresses the refresh: the stored installment state is
// authoritative and may have been resolved by the worker in the meantime.
func (m *Manager) attempt(ctx context.Context, session *Session, attempt int32) bool {
	var outcome gateway.Outcome
	if session.TxRef != "" {
		var err error
		outcome, err = m.Gateway.Verify(ctx, session.TxRef)
		if err != nil {
			slog.Warn("reconciliation verify failed, refreshing anyway",
				"txRef", session.TxRef, "attempt", attempt, "error", err)
			outcome = gateway.OutcomePending
		}
	}

	switch outcome {
	case gateway.OutcomePaid:
		return m.settle(ctx, session, models.InstallmentPaid)
	case gateway.OutcomeFailed:
		return m.settle(ctx, session, models.InstallmentFailed)
	}

	return m.refresh(ctx, session)
}

// refresh re-reads the schedule; another verifier may have already
// resolved the installment.
func (m *Manager) refresh(ctx context.Context, session *Session) bool {
	installments, err := m.Installments.ListInstallments(ctx, session.WeddingID)
	if err != nil {
		slog.Warn("failed to refresh installments",
			"weddingId", session.WeddingID, "error", err)
		return false
	}
	for i := range installments {
		if installments[i].Id != session.InstallmentID {
			continue
		}
		if installments[i].Status != models.InstallmentPending {
			if session.TxRef != "" {
				if err := m.Store.SettleAttempt(ctx, session.TxRef); err != nil {
					slog.Error("failed to settle checkout attempt",
						"txRef", session.TxRef, "error", err)
				}
			}
			return true
		}
	}
	return false
}

func (m *Manager) settle(ctx context.Context, session *Session, status models.InstallmentStatus) bool {
	updated, err := m.Store.SetInstallmentOutcome(ctx, session.WeddingID, session.InstallmentID, status, session.TxRef)
	if err != nil {
		slog.Error("failed to record installment outcome",
			"txRef", session.TxRef, "status", status, "error", err)
		return false
	}
	if err := m.Store.SettleAttempt(ctx, session.TxRef); err != nil {
		slog.Error("failed to settle checkout attempt",
			"txRef", session.TxRef, "error", err)
	}
	if updated && m.Publisher != nil {
		msg := websockets.Message{
			Type: websockets.MessageTypePaymentUpdate,
			Payload: websockets.PaymentUpdatePayload{
				WeddingID:     session.WeddingID,
				InstallmentID: session.InstallmentID,
				TxRef:         session.TxRef,
				Status:        string(status),
			},
		}
		if err := m.Publisher.Publish(ctx, msg); err != nil {
			slog.Error("failed to publish payment update",
				"txRef", session.TxRef, "error", err)
		}
	}
	return true
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
