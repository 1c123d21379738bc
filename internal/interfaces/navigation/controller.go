package navigation

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/pkg/logger"
	"whalebyte.core/pkg/metrics"
)

// Root is the top-level authentication gate.
type Root string

const (
	RootUnauthenticated Root = "unauthenticated"
	RootAuthenticated   Root = "authenticated"
)

// SessionObservable is the slice of the session store the controller consumes.
type SessionObservable interface {
	Observe(fn func(entities.AuthState))
}

// Controller is the two-level navigation state machine. Level 1 follows the
// session store's isAuthenticated flag; level 2 is the authenticated shell
// with five peer tabs, each keeping its own history, and modal destinations
// stacking on whichever tab launched them. Crossing the root boundary in
// either direction discards the other side's stacks entirely, so no screen
// survives a logout via back-navigation.
type Controller struct {
	mu sync.Mutex

	root      Root
	authStack []Destination
	activeTab Kind
	tabStacks map[Kind][]Destination
	lastErr   error
}

// NewController creates a controller at the unauthenticated Welcome screen
// and subscribes it to the session store. The immediate snapshot delivered by
// Observe settles the initial root state.
func NewController(session SessionObservable) *Controller {
	c := &Controller{
		root:      RootUnauthenticated,
		authStack: []Destination{Welcome},
		activeTab: KindHome,
		tabStacks: freshTabStacks(),
	}
	session.Observe(c.onAuthState)
	return c
}

func freshTabStacks() map[Kind][]Destination {
	return map[Kind][]Destination{
		KindHome:    {Home},
		KindExplore: {Explore},
		KindSpheres: {Spheres},
		KindProfile: {Profile},
		KindWallet:  {Wallet},
	}
}

// onAuthState is the session observer. Authentication failure always wins
// over in-progress navigation: whatever the user was doing, an
// unauthenticated snapshot forces the root transition.
func (c *Controller) onAuthState(state entities.AuthState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if state.IsAuthenticated && c.root != RootAuthenticated {
		c.root = RootAuthenticated
		c.authStack = nil
		c.activeTab = KindHome
		c.tabStacks = freshTabStacks()
		c.lastErr = nil
		logger.LogTransition(context.Background(), "navigation", string(RootUnauthenticated), string(RootAuthenticated))
		return
	}

	if !state.IsAuthenticated && c.root != RootUnauthenticated {
		c.root = RootUnauthenticated
		c.authStack = []Destination{Welcome}
		c.tabStacks = freshTabStacks()
		c.lastErr = state.Err
		logger.LogTransition(context.Background(), "navigation", string(RootAuthenticated), string(RootUnauthenticated),
			zap.Error(state.Err))
	}
}

// Root reports the current level-1 state
func (c *Controller) Root() Root {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root
}

// LastErr reports the session error that forced the last root transition
func (c *Controller) LastErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// ActiveTab reports the shell's selected tab
func (c *Controller) ActiveTab() Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeTab
}

// Current returns the destination on top of the active stack
func (c *Controller) Current() Destination {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == RootUnauthenticated {
		return c.authStack[len(c.authStack)-1]
	}
	stack := c.tabStacks[c.activeTab]
	return stack[len(stack)-1]
}

// Depth returns the size of the active stack
func (c *Controller) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == RootUnauthenticated {
		return len(c.authStack)
	}
	return len(c.tabStacks[c.activeTab])
}

// Navigate pushes a destination. Rejections happen before any state change:
// the current screen stays current when the intent is invalid.
func (c *Controller) Navigate(dest Destination) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := dest.validate(); err != nil {
		metrics.NavigationRejections.WithLabelValues("missing_param").Inc()
		return err
	}

	if c.root == RootUnauthenticated {
		if !dest.preAuth() {
			metrics.NavigationRejections.WithLabelValues("unreachable").Inc()
			return domainerrors.ErrUnreachableScreen
		}
		if dest.Kind == KindOnboarding && c.authStack[len(c.authStack)-1].Kind != KindSignup {
			// onboarding is entered from signup only
			metrics.NavigationRejections.WithLabelValues("unreachable").Inc()
			return domainerrors.ErrUnreachableScreen
		}
		c.authStack = append(c.authStack, dest)
		return nil
	}

	switch {
	case dest.Tab():
		c.activeTab = dest.Kind
		return nil
	case dest.Modal():
		c.tabStacks[c.activeTab] = append(c.tabStacks[c.activeTab], dest)
		return nil
	default:
		metrics.NavigationRejections.WithLabelValues("unreachable").Inc()
		return domainerrors.ErrUnreachableScreen
	}
}

// Back pops the active stack. The tab root and the Welcome screen never pop.
func (c *Controller) Back() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == RootUnauthenticated {
		if len(c.authStack) <= 1 {
			return false
		}
		c.authStack = c.authStack[:len(c.authStack)-1]
		return true
	}

	stack := c.tabStacks[c.activeTab]
	if len(stack) <= 1 {
		return false
	}
	c.tabStacks[c.activeTab] = stack[:len(stack)-1]
	return true
}
