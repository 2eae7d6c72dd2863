// Package recovery implements the forgot-password wizard as an explicit
// state machine: Email -> Code -> NewPassword -> Done, strictly forward.
// Step inputs are validated locally before any network call, threaded
// forward immutably once a step is passed, and never revisited. "Back to
// login" is modeled as leaving the machine (Reset), not stepping backward.
package recovery

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"unicode"
)

// State identifies the wizard step currently awaiting input.
type State int

const (
	AwaitingEmail State = iota
	AwaitingCode
	AwaitingNewPassword
	Done
)

func (s State) String() string {
	switch s {
	case AwaitingEmail:
		return "awaiting email"
	case AwaitingCode:
		return "awaiting code"
	case AwaitingNewPassword:
		return "awaiting new password"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Validation and sequencing errors. All of them short-circuit before any
// network call is made.
var (
	ErrEmailRequired    = errors.New("enter your email")
	ErrEmailInvalid     = errors.New("enter a valid email address")
	ErrCodeFormat       = errors.New("verification code must be 6 digits")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

	// ErrInvalidState is returned when a submit does not match the current
	// step, including any submit after the machine reached Done.
	ErrInvalidState = errors.New("step does not match wizard state")

	// ErrInFlight is returned when a submit arrives while the previous one
	// is still outstanding. Exactly one request per step is ever in flight.
	ErrInFlight = errors.New("request already in flight")
)

// codeLen is the exact length of the emailed verification code.
const codeLen = 6

// minPasswordLen mirrors the backend's signup rule.
const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeCode strips non-digit characters and truncates to the code
// length, matching what the code input does as the user types.
func NormalizeCode(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
			if b.Len() == codeLen {
				break
			}
		}
	}
	return b.String()
}

// Gateway is the slice of the API client the wizard depends on.
type Gateway interface {
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, password string) error
}

// Wizard drives the three-step reset flow. Methods are safe for concurrent
// use; a second submit while one is outstanding fails fast with ErrInFlight
// instead of issuing a second request.
type Wizard struct {
	gw     Gateway
	onDone func()

	mu        sync.Mutex
	state     State
	email     string
	code      string
	inFlight  bool
	doneFired bool
}

// New builds a Wizard in AwaitingEmail. onDone is invoked exactly once, when
// the final reset succeeds; callers use it to route back to the login
// screen. A nil onDone is allowed.
func New(gw Gateway, onDone func()) *Wizard {
	return &Wizard{gw: gw, onDone: onDone}
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Email returns the address accepted in the first step.
func (w *Wizard) Email() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.email
}

// InFlight reports whether a request is outstanding, for loading indicators.
func (w *Wizard) InFlight() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inFlight
}

// Reset clears every carried field and returns to AwaitingEmail, as when the
// user re-enters the wizard from scratch.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = AwaitingEmail
	w.email = ""
	w.code = ""
	w.doneFired = false
}

// begin validates the step/state match and claims the in-flight slot.
func (w *Wizard) begin(want State) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != want {
		return ErrInvalidState
	}
	if w.inFlight {
		return ErrInFlight
	}
	w.inFlight = true
	return nil
}

// settle releases the in-flight slot; on success it runs apply and advances
// to next, all under the lock.
func (w *Wizard) settle(advance bool, next State, apply func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false
	if advance {
		if apply != nil {
			apply()
		}
		w.state = next
	}
}

// SubmitEmail validates the address and asks the backend to send a
// verification code. On success the wizard advances to AwaitingCode carrying
// the email, and the server's message is returned for display. On any error
// the state is unchanged.
func (w *Wizard) SubmitEmail(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}
	if !emailRe.MatchString(email) {
		return "", ErrEmailInvalid
	}

	if err := w.begin(AwaitingEmail); err != nil {
		return "", err
	}

	msg, err := w.gw.ForgotPassword(ctx, email)
	w.settle(err == nil, AwaitingCode, func() { w.email = email })
	if err != nil {
		return "", err
	}
	return msg, nil
}

// SubmitCode verifies the emailed code against the backend. The raw input is
// normalized first (non-digits dropped, truncated to 6). On success the
// wizard advances to AwaitingNewPassword carrying {email, code}.
func (w *Wizard) SubmitCode(ctx context.Context, code string) error {
	code = NormalizeCode(code)
	if len(code) != codeLen {
		return ErrCodeFormat
	}

	if err := w.begin(AwaitingCode); err != nil {
		return err
	}
	w.mu.Lock()
	email := w.email
	w.mu.Unlock()

	err := w.gw.VerifyCode(ctx, email, code)
	w.settle(err == nil, AwaitingNewPassword, func() { w.code = code })
	return err
}

// SubmitPassword performs the final reset with the carried {email, code}.
// On server-reported success the machine transitions to Done, which is
// terminal, and the completion callback fires once.
func (w *Wizard) SubmitPassword(ctx context.Context, password string) error {
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}

	if err := w.begin(AwaitingNewPassword); err != nil {
		return err
	}
	w.mu.Lock()
	email, code := w.email, w.code
	w.mu.Unlock()

	err := w.gw.ResetPassword(ctx, email, code, password)
	fire := false
	w.mu.Lock()
	w.inFlight = false
	if err == nil {
		w.state = Done
		if !w.doneFired {
			w.doneFired = true
			fire = true
		}
	}
	w.mu.Unlock()

	if fire && w.onDone != nil {
		w.onDone()
	}
	return err
}
