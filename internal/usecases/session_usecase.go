package usecases

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/pkg/logger"
	"whalebyte.core/pkg/metrics"
	redispkg "whalebyte.core/pkg/redis"
)

// Authenticator is the credential-verification collaborator behind Login.
type Authenticator interface {
	Login(ctx context.Context, creds *entities.LoginCredentials) (*entities.AuthResult, error)
	ValidateToken(ctx context.Context, token string) (*entities.User, error)
}

// TokenPersistence stores the token pair across process restarts. It is the
// only session state expected to survive one.
type TokenPersistence interface {
	Save(ctx context.Context, deviceID string, tokens *redispkg.StoredTokens, expiration time.Duration) error
	Load(ctx context.Context, deviceID string) (*redispkg.StoredTokens, error)
	Clear(ctx context.Context, deviceID string) error
}

// Observer receives the authentication snapshot synchronously on every
// isAuthenticated change, before the mutating call returns.
type Observer func(entities.AuthState)

// SessionUsecase is the single authoritative record of who is logged in.
// All transitions are serialized on one mutex; collaborator calls suspend
// outside it so unrelated interaction is never blocked. An epoch counter
// guards against a login result landing after a logout has already reset
// the session.
type SessionUsecase struct {
	auth       Authenticator
	tokenStore TokenPersistence
	deviceID   string
	tokenTTL   time.Duration

	mu        sync.Mutex
	state     entities.AuthState
	observers []Observer
	epoch     uint64
	inFlight  bool

	refreshToken string
}

// NewSessionUsecase creates a session store in the unauthenticated state
func NewSessionUsecase(auth Authenticator, tokenStore TokenPersistence, deviceID string, tokenTTL time.Duration) *SessionUsecase {
	return &SessionUsecase{
		auth:       auth,
		tokenStore: tokenStore,
		deviceID:   deviceID,
		tokenTTL:   tokenTTL,
	}
}

// Observe registers an observer and immediately delivers the current
// snapshot, closing the missed-update window between registration and the
// first transition.
func (s *SessionUsecase) Observe(fn func(entities.AuthState)) {
	s.mu.Lock()
	snapshot := s.state
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
	fn(snapshot)
}

// Snapshot returns the current authentication state
func (s *SessionUsecase) Snapshot() entities.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Login verifies credentials through the auth collaborator and, on success,
// atomically flips the session to authenticated. At most one login may be in
// flight; a second submit while the first is pending is rejected outright.
func (s *SessionUsecase) Login(ctx context.Context, creds *entities.LoginCredentials) (*entities.User, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, domainerrors.ErrRequestInFlight
	}
	s.inFlight = true
	epoch := s.epoch
	s.state.Loading = true
	s.state.Err = nil
	s.notifyLocked(ctx)
	s.mu.Unlock()

	result, err := s.auth.Login(ctx, creds)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if epoch != s.epoch {
		// the session was reset while the request was pending
		metrics.StaleResponsesDropped.Inc()
		logger.Warn(ctx, "dropping stale login result", zap.String("username", creds.Username))
		return nil, domainerrors.ErrStaleResponse
	}

	if err != nil {
		s.state.Loading = false
		s.state.Err = err
		s.notifyLocked(ctx)
		return nil, err
	}

	s.applyIdentityLocked(ctx, result)
	s.persistTokens(ctx, result)
	return result.User, nil
}

// CommitNewIdentity installs the identity produced by the onboarding flow.
// Same effect as a successful login, but originating from local provisioning.
func (s *SessionUsecase) CommitNewIdentity(ctx context.Context, result *entities.AuthResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyIdentityLocked(ctx, result)
	s.persistTokens(ctx, result)
}

// Logout clears the session unconditionally. Idempotent; it also bumps the
// epoch so any pending login result is discarded on arrival.
func (s *SessionUsecase) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	wasAuthenticated := s.state.IsAuthenticated
	s.state = entities.AuthState{}
	s.refreshToken = ""

	if s.tokenStore != nil {
		if err := s.tokenStore.Clear(ctx, s.deviceID); err != nil {
			logger.Warn(ctx, "failed to clear persisted tokens", zap.Error(err))
		}
	}

	if wasAuthenticated {
		logger.LogTransition(ctx, "session", "authenticated", "unauthenticated")
		metrics.SessionTransitions.WithLabelValues("unauthenticated").Inc()
	}
	s.notifyLocked(ctx)
}

// Invalidate handles an external token-invalidation signal. The session drops
// to unauthenticated with the cause recorded; authentication failure always
// wins over whatever the user was doing.
func (s *SessionUsecase) Invalidate(ctx context.Context, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.state = entities.AuthState{Err: cause}
	s.refreshToken = ""

	if s.tokenStore != nil {
		if err := s.tokenStore.Clear(ctx, s.deviceID); err != nil {
			logger.Warn(ctx, "failed to clear persisted tokens", zap.Error(err))
		}
	}

	logger.LogTransition(ctx, "session", "authenticated", "unauthenticated", zap.Error(cause))
	metrics.SessionTransitions.WithLabelValues("unauthenticated").Inc()
	s.notifyLocked(ctx)
}

// Restore resumes an authenticated session from the persisted token pair at
// process start. A missing or invalid token leaves the session untouched in
// its initial unauthenticated state.
func (s *SessionUsecase) Restore(ctx context.Context) error {
	if s.tokenStore == nil {
		return nil
	}

	tokens, err := s.tokenStore.Load(ctx, s.deviceID)
	if err != nil {
		return nil
	}

	user, err := s.auth.ValidateToken(ctx, tokens.AccessToken)
	if err != nil {
		if clearErr := s.tokenStore.Clear(ctx, s.deviceID); clearErr != nil {
			logger.Warn(ctx, "failed to clear stale tokens", zap.Error(clearErr))
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyIdentityLocked(ctx, &entities.AuthResult{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
	return nil
}

func (s *SessionUsecase) applyIdentityLocked(ctx context.Context, result *entities.AuthResult) {
	s.state = entities.AuthState{
		IsAuthenticated: true,
		User:            result.User,
		Token:           result.AccessToken,
	}
	s.refreshToken = result.RefreshToken

	logger.LogTransition(ctx, "session", "unauthenticated", "authenticated",
		zap.String("username", result.User.Username))
	metrics.SessionTransitions.WithLabelValues("authenticated").Inc()
	s.notifyLocked(ctx)
}

func (s *SessionUsecase) persistTokens(ctx context.Context, result *entities.AuthResult) {
	if s.tokenStore == nil {
		return
	}
	err := s.tokenStore.Save(ctx, s.deviceID, &redispkg.StoredTokens{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, s.tokenTTL)
	if err != nil {
		logger.Warn(ctx, "failed to persist tokens", zap.Error(err))
	}
}

// notifyLocked delivers the current snapshot to every observer while the
// transition lock is held, so no observer ever acts on a stale snapshot.
func (s *SessionUsecase) notifyLocked(_ context.Context) {
	snapshot := s.state
	for _, fn := range s.observers {
		fn(snapshot)
	}
}
