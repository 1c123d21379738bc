package navigation_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/interfaces/navigation"
)

// fakeSession replays authentication snapshots to its observers, the way the
// session store does: synchronously, with an immediate snapshot on Observe.
type fakeSession struct {
	state     entities.AuthState
	observers []func(entities.AuthState)
}

func (s *fakeSession) Observe(fn func(entities.AuthState)) {
	s.observers = append(s.observers, fn)
	fn(s.state)
}

func (s *fakeSession) set(state entities.AuthState) {
	s.state = state
	for _, fn := range s.observers {
		fn(state)
	}
}

func authenticated() entities.AuthState {
	return entities.AuthState{
		IsAuthenticated: true,
		User:            &entities.User{ID: uuid.New(), Username: "alice"},
		Token:           "access-1",
	}
}

func TestController_StartsUnauthenticatedAtWelcome(t *testing.T) {
	c := navigation.NewController(&fakeSession{})

	assert.Equal(t, navigation.RootUnauthenticated, c.Root())
	assert.Equal(t, navigation.KindWelcome, c.Current().Kind)
}

func TestController_StartsAuthenticatedWhenSessionRestored(t *testing.T) {
	c := navigation.NewController(&fakeSession{state: authenticated()})

	assert.Equal(t, navigation.RootAuthenticated, c.Root())
	assert.Equal(t, navigation.KindHome, c.Current().Kind)
}

func TestController_LoginSwitchesRootAndDiscardsPreAuthStack(t *testing.T) {
	session := &fakeSession{}
	c := navigation.NewController(session)

	require.NoError(t, c.Navigate(navigation.Login))
	require.NoError(t, c.Navigate(navigation.Signup))
	require.Equal(t, 3, c.Depth())

	session.set(authenticated())

	assert.Equal(t, navigation.RootAuthenticated, c.Root())
	assert.Equal(t, navigation.KindHome, c.Current().Kind)
	assert.False(t, c.Back(), "no pre-authentication screen reachable via back")
}

func TestController_LogoutClearsTabHistories(t *testing.T) {
	session := &fakeSession{state: authenticated()}
	c := navigation.NewController(session)

	sphereID := uuid.New()
	details, err := navigation.SphereDetails(sphereID)
	require.NoError(t, err)
	require.NoError(t, c.Navigate(navigation.Spheres))
	require.NoError(t, c.Navigate(details))
	require.Equal(t, 2, c.Depth())

	session.set(entities.AuthState{})

	assert.Equal(t, navigation.RootUnauthenticated, c.Root())
	assert.Equal(t, navigation.KindWelcome, c.Current().Kind)
	assert.False(t, c.Back(), "detail screens are gone after logout")

	// logging back in lands on a fresh shell, not the old sphere detail
	session.set(authenticated())
	assert.Equal(t, navigation.KindHome, c.Current().Kind)
	assert.Equal(t, 1, c.Depth())
}

func TestController_AuthErrorForcesRootTransition(t *testing.T) {
	session := &fakeSession{state: authenticated()}
	c := navigation.NewController(session)

	details, err := navigation.SphereDetails(uuid.New())
	require.NoError(t, err)
	require.NoError(t, c.Navigate(details))

	session.set(entities.AuthState{Err: domainerrors.ErrTokenExpired})

	assert.Equal(t, navigation.RootUnauthenticated, c.Root())
	assert.ErrorIs(t, c.LastErr(), domainerrors.ErrTokenExpired)
}

func TestController_TabsKeepIndependentHistories(t *testing.T) {
	c := navigation.NewController(&fakeSession{state: authenticated()})

	details, err := navigation.SphereDetails(uuid.New())
	require.NoError(t, err)

	require.NoError(t, c.Navigate(navigation.Spheres))
	require.NoError(t, c.Navigate(details))
	require.Equal(t, navigation.KindSphereDetails, c.Current().Kind)

	// switching tabs does not disturb the Spheres stack
	require.NoError(t, c.Navigate(navigation.Wallet))
	assert.Equal(t, navigation.KindWallet, c.Current().Kind)
	assert.Equal(t, 1, c.Depth())

	require.NoError(t, c.Navigate(navigation.Spheres))
	assert.Equal(t, navigation.KindSphereDetails, c.Current().Kind)
	assert.Equal(t, 2, c.Depth())

	assert.True(t, c.Back())
	assert.Equal(t, navigation.KindSpheres, c.Current().Kind)
}

func TestController_ModalStacksOnLaunchingTab(t *testing.T) {
	c := navigation.NewController(&fakeSession{state: authenticated()})

	require.NoError(t, c.Navigate(navigation.Explore))
	require.NoError(t, c.Navigate(navigation.Recommendations))

	assert.Equal(t, navigation.KindExplore, c.ActiveTab())
	assert.Equal(t, navigation.KindRecommendations, c.Current().Kind)
}

func TestController_RejectsShellScreensBeforeLogin(t *testing.T) {
	c := navigation.NewController(&fakeSession{})

	err := c.Navigate(navigation.Home)
	assert.ErrorIs(t, err, domainerrors.ErrUnreachableScreen)
	assert.Equal(t, navigation.KindWelcome, c.Current().Kind, "rejected intent changes nothing")
}

func TestController_OnboardingEnteredFromSignupOnly(t *testing.T) {
	c := navigation.NewController(&fakeSession{})

	err := c.Navigate(navigation.Onboarding)
	assert.ErrorIs(t, err, domainerrors.ErrUnreachableScreen)

	require.NoError(t, c.Navigate(navigation.Signup))
	require.NoError(t, c.Navigate(navigation.Onboarding))
	assert.Equal(t, navigation.KindOnboarding, c.Current().Kind)
}

func TestController_RejectsPreAuthScreensAfterLogin(t *testing.T) {
	c := navigation.NewController(&fakeSession{state: authenticated()})

	err := c.Navigate(navigation.Login)
	assert.ErrorIs(t, err, domainerrors.ErrUnreachableScreen)
}

func TestDestination_ParamsValidatedAtConstruction(t *testing.T) {
	_, err := navigation.SphereDetails(uuid.Nil)
	assert.ErrorIs(t, err, domainerrors.ErrMissingParam)

	_, err = navigation.SphereCreatePost(uuid.Nil)
	assert.ErrorIs(t, err, domainerrors.ErrMissingParam)

	_, err = navigation.PostDetails(uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, domainerrors.ErrMissingParam)
	_, err = navigation.PostDetails(uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrMissingParam)

	dest, err := navigation.PostDetails(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, navigation.KindPostDetails, dest.Kind)
}

func TestController_RejectsHandBuiltDestinationMissingParams(t *testing.T) {
	c := navigation.NewController(&fakeSession{state: authenticated()})
	require.NoError(t, c.Navigate(navigation.Spheres))

	// a struct literal sidesteps the constructors; Navigate still rejects it
	err := c.Navigate(navigation.Destination{Kind: navigation.KindSphereDetails})
	assert.ErrorIs(t, err, domainerrors.ErrMissingParam)
	assert.Equal(t, navigation.KindSpheres, c.Current().Kind, "stack untouched by the rejection")
	assert.Equal(t, 1, c.Depth())

	err = c.Navigate(navigation.Destination{Kind: navigation.KindPostDetails, SphereID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrMissingParam)
	assert.Equal(t, 1, c.Depth())
}

func TestIcon_OutlineVariantWhenUnfocused(t *testing.T) {
	assert.Equal(t, "home", navigation.Icon(navigation.KindHome, true))
	assert.Equal(t, "home-outline", navigation.Icon(navigation.KindHome, false))
	assert.Equal(t, "wallet-outline", navigation.Icon(navigation.KindWallet, false))

	tabs := []navigation.Kind{
		navigation.KindHome, navigation.KindExplore, navigation.KindSpheres,
		navigation.KindProfile, navigation.KindWallet,
	}
	seen := map[string]bool{}
	for _, k := range tabs {
		name := navigation.Icon(k, true)
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "tab icons are distinct")
		seen[name] = true
	}
}
