package checkout

import (
	"errors"
	"testing"
	"time"

	"pasal/internal/payments"
)

func widgetOrder() Order {
	return Order{
		Product:     Product{Title: "Widget", Price: 500, Image: "x.png"},
		Quantity:    2,
		TotalAmount: 1000,
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := NewStore(time.Minute)

	session := store.Create(widgetOrder())
	if session.State != StateIdle {
		t.Fatalf("new session state = %q, want idle", session.State)
	}

	if err := store.BeginDispatch(session.ID, "esewa"); err != nil {
		t.Fatalf("BeginDispatch: %v", err)
	}
	got, _ := store.Get(session.ID)
	if got.State != StateDispatching || got.SelectedMethod != "esewa" {
		t.Fatalf("after begin: state=%q method=%q", got.State, got.SelectedMethod)
	}

	// second dispatch while one is in flight must be rejected
	if err := store.BeginDispatch(session.ID, "khalti"); !errors.Is(err, ErrNotIdle) {
		t.Errorf("concurrent dispatch err = %v, want ErrNotIdle", err)
	}

	resp := &payments.PaymentResponse{Mode: payments.ModeFormPost, Reference: "TXN-1"}
	if err := store.CompleteDispatch(session.ID, resp); err != nil {
		t.Fatalf("CompleteDispatch: %v", err)
	}
	got, _ = store.Get(session.ID)
	if got.State != StateAwaiting {
		t.Fatalf("after complete: state = %q, want awaiting_external", got.State)
	}
	if got.LastDispatch == nil || got.LastDispatch.Reference != "TXN-1" {
		t.Error("dispatch descriptor not recorded")
	}
}

func TestRegainFocusAlwaysReturnsToIdle(t *testing.T) {
	store := NewStore(time.Minute)
	session := store.Create(widgetOrder())

	_ = store.BeginDispatch(session.ID, "fonepay")
	_ = store.CompleteDispatch(session.ID, &payments.PaymentResponse{Mode: payments.ModeRedirect})

	transitioned, err := store.RegainFocus(session.ID)
	if err != nil {
		t.Fatalf("RegainFocus: %v", err)
	}
	if !transitioned {
		t.Error("expected transition out of awaiting_external")
	}
	got, _ := store.Get(session.ID)
	if got.State != StateIdle {
		t.Errorf("state = %q, want idle", got.State)
	}
	if got.SelectedMethod != "" || got.LastDispatch != nil {
		t.Error("attempt state not cleared on focus-regain")
	}

	// focus while already idle is a no-op, not an error
	transitioned, err = store.RegainFocus(session.ID)
	if err != nil || transitioned {
		t.Errorf("idle focus: transitioned=%v err=%v, want no-op", transitioned, err)
	}
}

func TestAbortDispatchReturnsToIdle(t *testing.T) {
	store := NewStore(time.Minute)
	session := store.Create(widgetOrder())

	_ = store.BeginDispatch(session.ID, "khalti")
	if err := store.AbortDispatch(session.ID); err != nil {
		t.Fatalf("AbortDispatch: %v", err)
	}
	got, _ := store.Get(session.ID)
	if got.State != StateIdle || got.SelectedMethod != "" {
		t.Errorf("after abort: state=%q method=%q", got.State, got.SelectedMethod)
	}

	if err := store.AbortDispatch(session.ID); !errors.Is(err, ErrNotDispatching) {
		t.Errorf("abort while idle err = %v, want ErrNotDispatching", err)
	}
}

func TestCancelFromAnyState(t *testing.T) {
	store := NewStore(time.Minute)
	session := store.Create(widgetOrder())

	_ = store.BeginDispatch(session.ID, "esewa")
	_ = store.CompleteDispatch(session.ID, &payments.PaymentResponse{})

	if err := store.Cancel(session.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	got, _ := store.Get(session.ID)
	if got.State != StateIdle {
		t.Errorf("state = %q, want idle", got.State)
	}
}

func TestUnknownSession(t *testing.T) {
	store := NewStore(time.Minute)

	if _, err := store.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get err = %v, want ErrSessionNotFound", err)
	}
	if err := store.BeginDispatch("missing", "esewa"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("BeginDispatch err = %v, want ErrSessionNotFound", err)
	}
	if _, err := store.RegainFocus("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("RegainFocus err = %v, want ErrSessionNotFound", err)
	}
}

func TestSweepDropsExpiredSessions(t *testing.T) {
	store := NewStore(10 * time.Millisecond)

	stale := store.Create(widgetOrder())
	time.Sleep(25 * time.Millisecond)
	fresh := store.Create(widgetOrder())

	if removed := store.Sweep(); removed != 1 {
		t.Errorf("swept %d sessions, want 1", removed)
	}
	if _, err := store.Get(stale.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("stale session survived sweep")
	}
	if _, err := store.Get(fresh.ID); err != nil {
		t.Error("fresh session removed by sweep")
	}
}

func TestConfirmationCodes(t *testing.T) {
	codes, err := NewConfirmationCodes("2222610015419744")
	if err != nil {
		t.Fatalf("NewConfirmationCodes: %v", err)
	}

	at := time.UnixMilli(1700000000000)
	first, err := codes.Issue(at)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(first) < 8 {
		t.Errorf("code %q shorter than minimum length", first)
	}

	again, _ := codes.Issue(at)
	if again != first {
		t.Errorf("same timestamp produced different codes: %q vs %q", first, again)
	}
	later, _ := codes.Issue(at.Add(time.Millisecond))
	if later == first {
		t.Error("different timestamps produced the same code")
	}
}
