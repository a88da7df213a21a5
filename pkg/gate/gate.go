package gate

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/totpgate/totpgate/pkg/otp"
	"github.com/totpgate/totpgate/pkg/secret"
)

// Verifier is the code-checking capability the gate composes. pkg/otp.Engine
// implements it; tests substitute their own.
type Verifier interface {
	Verify(key []byte, candidate string, t time.Time) (bool, error)
}

// Result is the caller-visible outcome of one authentication attempt. It
// carries no failure detail: every denial looks the same to the caller, and
// operator diagnostics travel on the log channel instead.
type Result struct {
	OK              bool
	SessionDuration time.Duration
}

// Gate answers "is this code currently valid" against the shared community
// secret. Stateless per call; safe for concurrent use. Many callers holding
// the same valid code authenticate independently, which is the point of a
// shared-secret gate.
type Gate struct {
	cfg      Config
	store    secret.Store
	verifier Verifier
	log      *slog.Logger
	now      func() time.Time
	sleep    func(time.Duration)
}

// Option configures optional gate collaborators.
type Option func(*Gate)

// WithLogger sets the diagnostic channel. Failure causes are logged here and
// nowhere else.
func WithLogger(log *slog.Logger) Option {
	return func(g *Gate) {
		if log != nil {
			g.log = log
		}
	}
}

// WithVerifier substitutes the code verifier, mainly for tests.
func WithVerifier(v Verifier) Option {
	return func(g *Gate) {
		if v != nil {
			g.verifier = v
		}
	}
}

// WithClock substitutes the time source for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) {
		if now != nil {
			g.now = now
		}
	}
}

// New validates the configuration and builds a gate over the given store.
// Nonsensical host configuration fails here, fast, rather than denying every
// attempt at runtime for an unrelated-looking reason.
func New(cfg Config, store secret.Store, opts ...Option) (*Gate, error) {
	if store == nil {
		return nil, ErrMissingStore
	}
	if cfg.Digits == 0 {
		cfg.Digits = otp.DefaultDigits
	}
	if cfg.Period == 0 {
		cfg.Period = otp.DefaultPeriod
	}
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = 7 * 24 * time.Hour
	}
	if cfg.SessionDuration < 0 || cfg.FailureDelay < 0 {
		return nil, ErrInvalidConfig
	}

	engine, err := otp.NewEngine(otp.Params{
		Digits: cfg.Digits,
		Period: cfg.Period,
		Grace:  cfg.Grace,
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	g := &Gate{
		cfg:      cfg,
		store:    store,
		verifier: engine,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Authenticate checks one candidate code. The username is accepted for host
// frameworks that always pass one and deliberately ignored: any holder of the
// currently valid code is authenticated. On success the result carries the
// fixed session duration for the host's session manager; on failure it
// carries nothing, and the wall-clock time is padded to FailureDelay so the
// caller cannot tell which step denied it.
func (g *Gate) Authenticate(username, candidate string) Result {
	// began is real wall clock for delay padding; at is the (possibly
	// test-injected) verification time.
	began := time.Now()
	at := g.now()
	attempt := uuid.NewString()
	log := g.log.With(slog.String("attempt_id", attempt))

	candidate = strings.TrimSpace(candidate)
	if !otp.MatchesShape(candidate, g.cfg.Digits) {
		log.Debug("denied: candidate code has wrong shape")
		return g.deny(began)
	}

	key, err := g.store.Load()
	if err != nil {
		// Distinct causes (missing, empty, corrupt, unreadable) matter to
		// the operator; the caller only ever sees a denial.
		log.Error("denied: shared secret unavailable", slog.Any("error", err))
		return g.deny(began)
	}

	ok, err := g.verifier.Verify(key, candidate, at)
	if err != nil {
		log.Error("denied: verification failed", slog.Any("error", err))
		return g.deny(began)
	}
	if !ok {
		log.Debug("denied: code not valid in current window")
		return g.deny(began)
	}

	log.Info("authenticated",
		slog.Duration("session_duration", g.cfg.SessionDuration))
	return Result{OK: true, SessionDuration: g.cfg.SessionDuration}
}

// MemberOf answers group membership queries from host frameworks. The shared
// community code has no group concept, so the answer is always no.
func (g *Gate) MemberOf(username, group string) bool {
	return false
}

// deny pads the failure path out to FailureDelay measured from attempt start,
// then returns the uniform failure result.
func (g *Gate) deny(start time.Time) Result {
	if g.cfg.FailureDelay > 0 {
		if remaining := g.cfg.FailureDelay - time.Since(start); remaining > 0 {
			g.sleep(remaining)
		}
	}
	return Result{}
}
