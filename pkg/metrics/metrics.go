package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the core state machines. Registered on the default registry;
// the embedding application owns the exposition endpoint.
var (
	SessionTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whalebyte_session_transitions_total",
		Help: "Root authentication transitions by target state.",
	}, []string{"to"})

	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whalebyte_login_attempts_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	OnboardingOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whalebyte_onboarding_outcomes_total",
		Help: "Onboarding flow terminal outcomes.",
	}, []string{"outcome"})

	PassphraseMismatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "whalebyte_passphrase_mismatches_total",
		Help: "Validation-station mismatches.",
	})

	NavigationRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whalebyte_navigation_rejections_total",
		Help: "Navigation intents rejected before any state change.",
	}, []string{"reason"})

	StaleResponsesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "whalebyte_stale_responses_dropped_total",
		Help: "Collaborator results discarded by the stale-response guard.",
	})
)
