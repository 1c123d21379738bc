package usecases

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/pkg/logger"
	"whalebyte.core/pkg/metrics"
	"whalebyte.core/pkg/passphrase"
)

// Station identifies a step of the onboarding flow. The flow is strictly
// ordered with no cross-shortcuts: Collect -> Generate -> Validate -> Commit.
type Station int

const (
	StationCollect Station = iota
	StationGenerate
	StationValidate
	StationCommit
)

func (s Station) String() string {
	switch s {
	case StationCollect:
		return "collect"
	case StationGenerate:
		return "generate"
	case StationValidate:
		return "validate"
	case StationCommit:
		return "commit"
	default:
		return "unknown"
	}
}

// PassphraseGenerator is the cryptographic collaborator producing recovery
// passphrases. Every call must return a fresh, unpredictable value.
type PassphraseGenerator interface {
	Generate() (string, error)
}

// Provisioner creates the User + Wallet pair at commit time.
type Provisioner interface {
	CreateAccount(ctx context.Context, signup *entities.SignupData, walletSeedMaterial []byte) (*entities.AuthResult, error)
}

// SessionCommitter is the session store's entry point for a locally
// provisioned identity.
type SessionCommitter interface {
	CommitNewIdentity(ctx context.Context, result *entities.AuthResult)
}

// OnboardingUsecase drives the wallet-onboarding passphrase flow. Stations
// 1-3 are pure local transitions; Commit is the only station with an external
// side effect. The generated passphrase lives only in this flow's transient
// state and is wiped the moment the flow leaves the Generate/Validate cycle.
type OnboardingUsecase struct {
	generator   PassphraseGenerator
	provisioner Provisioner
	session     SessionCommitter
	maxAttempts int

	mu         sync.Mutex
	station    Station
	signup     *entities.SignupData
	phrase     string
	attempts   int
	loading    bool
	inFlight   bool
	commitSeq  uint64
	lastErr    error
}

// NewOnboardingUsecase creates an onboarding flow at the Collect station.
// maxAttempts bounds consecutive Validate mismatches before the flow forces
// a restart from Generate; zero or negative means unlimited retries.
func NewOnboardingUsecase(generator PassphraseGenerator, provisioner Provisioner, session SessionCommitter, maxAttempts int) *OnboardingUsecase {
	return &OnboardingUsecase{
		generator:   generator,
		provisioner: provisioner,
		session:     session,
		maxAttempts: maxAttempts,
	}
}

// Station reports the flow's current station
func (u *OnboardingUsecase) Station() Station {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.station
}

// LastErr reports the most recent station error, for the UI to render
func (u *OnboardingUsecase) LastErr() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastErr
}

// Loading reports whether a commit request is in flight
func (u *OnboardingUsecase) Loading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loading
}

// Collect records the signup data and advances to Generate. Only legal at the
// Collect station.
func (u *OnboardingUsecase) Collect(ctx context.Context, signup *entities.SignupData) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.station != StationCollect {
		return domainerrors.ErrFlowNotAtStation
	}
	if signup == nil || signup.Username == "" || signup.Password == "" {
		u.lastErr = domainerrors.NewError("username and password are required", domainerrors.ErrInvalidInput)
		return u.lastErr
	}

	u.signup = signup
	u.lastErr = nil
	u.advanceLocked(ctx, StationGenerate)
	return nil
}

// GeneratePassphrase draws a fresh recovery passphrase and advances to
// Validate. The returned string is for display only; the flow keeps its own
// copy for the exact-match comparison.
func (u *OnboardingUsecase) GeneratePassphrase(ctx context.Context) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.station != StationGenerate {
		return "", domainerrors.ErrFlowNotAtStation
	}

	phrase, err := u.generator.Generate()
	if err != nil {
		u.lastErr = err
		return "", err
	}

	u.phrase = phrase
	u.attempts = 0
	u.lastErr = nil
	u.advanceLocked(ctx, StationValidate)
	return phrase, nil
}

// Validate compares the user's entry against the shown passphrase with exact
// string equality. A mismatch keeps the flow at Validate without touching the
// stored passphrase; after maxAttempts consecutive mismatches the flow drops
// back to Generate and the passphrase is discarded.
func (u *OnboardingUsecase) Validate(ctx context.Context, entered string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.station != StationValidate {
		return domainerrors.ErrFlowNotAtStation
	}

	if !passphrase.Validate(u.phrase, entered) {
		u.attempts++
		metrics.PassphraseMismatches.Inc()

		if u.maxAttempts > 0 && u.attempts >= u.maxAttempts {
			u.phrase = ""
			u.attempts = 0
			u.lastErr = domainerrors.ErrTooManyAttempts
			u.advanceLocked(ctx, StationGenerate)
			return domainerrors.ErrTooManyAttempts
		}

		u.lastErr = domainerrors.ErrPassphraseMismatch
		return domainerrors.ErrPassphraseMismatch
	}

	u.lastErr = nil
	u.advanceLocked(ctx, StationCommit)
	return nil
}

// Commit provisions the User + Wallet pair and installs the new identity in
// the session store. The passphrase is consumed here as one-shot seed
// material and wiped regardless of outcome. On provisioning failure the flow
// returns to Collect; a retry always generates a fresh passphrase.
func (u *OnboardingUsecase) Commit(ctx context.Context) (*entities.User, error) {
	u.mu.Lock()
	if u.station != StationCommit {
		u.mu.Unlock()
		return nil, domainerrors.ErrFlowNotAtStation
	}
	if u.inFlight {
		u.mu.Unlock()
		return nil, domainerrors.ErrRequestInFlight
	}

	u.inFlight = true
	u.loading = true
	seq := u.commitSeq
	signup := u.signup
	seed := []byte(u.phrase)
	u.phrase = ""
	u.mu.Unlock()

	result, err := u.provisioner.CreateAccount(ctx, signup, seed)

	u.mu.Lock()
	u.inFlight = false
	u.loading = false

	if seq != u.commitSeq {
		// the flow was reset while provisioning was pending
		u.mu.Unlock()
		metrics.StaleResponsesDropped.Inc()
		logger.Warn(ctx, "dropping stale commit result")
		return nil, domainerrors.ErrStaleResponse
	}

	if err != nil {
		u.lastErr = err
		u.advanceLocked(ctx, StationCollect)
		u.mu.Unlock()
		metrics.OnboardingOutcomes.WithLabelValues("commit_failed").Inc()
		return nil, err
	}

	u.signup = nil
	u.attempts = 0
	u.lastErr = nil
	u.advanceLocked(ctx, StationCollect)
	u.mu.Unlock()

	u.session.CommitNewIdentity(ctx, result)
	metrics.OnboardingOutcomes.WithLabelValues("committed").Inc()
	logger.Info(ctx, "onboarding committed", zap.String("username", result.User.Username))
	return result.User, nil
}

// Reset abandons the flow and returns to Collect, wiping all transient state.
// A commit still in flight when Reset is called has its result dropped.
func (u *OnboardingUsecase) Reset(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.commitSeq++
	u.signup = nil
	u.phrase = ""
	u.attempts = 0
	u.lastErr = nil
	if u.station != StationCollect {
		u.advanceLocked(ctx, StationCollect)
		metrics.OnboardingOutcomes.WithLabelValues("abandoned").Inc()
	}
}

func (u *OnboardingUsecase) advanceLocked(ctx context.Context, to Station) {
	logger.LogTransition(ctx, "onboarding", u.station.String(), to.String())
	u.station = to
}
