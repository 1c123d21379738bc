package navigation

import (
	"github.com/google/uuid"
	domainerrors "whalebyte.core/internal/domain/errors"
)

// Kind identifies a navigable screen.
type Kind string

const (
	// Unauthenticated flow
	KindWelcome    Kind = "Welcome"
	KindLogin      Kind = "Login"
	KindSignup     Kind = "Signup"
	KindOnboarding Kind = "Onboarding"

	// Authenticated shell tabs
	KindHome    Kind = "Home"
	KindExplore Kind = "Explore"
	KindSpheres Kind = "Spheres"
	KindProfile Kind = "Profile"
	KindWallet  Kind = "Wallet"

	// Modal destinations stacking on the active tab
	KindSphereDetails    Kind = "SphereDetails"
	KindSphereCreate     Kind = "SphereCreate"
	KindSphereCreatePost Kind = "SphereCreatePost"
	KindPostDetails      Kind = "PostDetails"
	KindRecommendations  Kind = "Recommendations"
)

// Destination is a tagged screen variant. Parameters are validated at
// construction and re-checked on Navigate, so the stacks never hold a
// destination with a missing required id; screens are always renderable.
type Destination struct {
	Kind     Kind
	SphereID uuid.UUID
	PostID   uuid.UUID
}

// Simple destinations without parameters.
var (
	Welcome         = Destination{Kind: KindWelcome}
	Login           = Destination{Kind: KindLogin}
	Signup          = Destination{Kind: KindSignup}
	Onboarding      = Destination{Kind: KindOnboarding}
	Home            = Destination{Kind: KindHome}
	Explore         = Destination{Kind: KindExplore}
	Spheres         = Destination{Kind: KindSpheres}
	Profile         = Destination{Kind: KindProfile}
	Wallet          = Destination{Kind: KindWallet}
	SphereCreate    = Destination{Kind: KindSphereCreate}
	Recommendations = Destination{Kind: KindRecommendations}
)

// SphereDetails opens a sphere's detail screen
func SphereDetails(sphereID uuid.UUID) (Destination, error) {
	d := Destination{Kind: KindSphereDetails, SphereID: sphereID}
	if err := d.validate(); err != nil {
		return Destination{}, err
	}
	return d, nil
}

// SphereCreatePost opens the post composer scoped to a sphere
func SphereCreatePost(sphereID uuid.UUID) (Destination, error) {
	d := Destination{Kind: KindSphereCreatePost, SphereID: sphereID}
	if err := d.validate(); err != nil {
		return Destination{}, err
	}
	return d, nil
}

// PostDetails opens a post's detail screen within its sphere
func PostDetails(sphereID, postID uuid.UUID) (Destination, error) {
	d := Destination{Kind: KindPostDetails, SphereID: sphereID, PostID: postID}
	if err := d.validate(); err != nil {
		return Destination{}, err
	}
	return d, nil
}

// validate checks the parameters a kind requires. The controller runs it on
// every Navigate, so a literal built around the constructors still cannot
// reach a stack with a missing id.
func (d Destination) validate() error {
	switch d.Kind {
	case KindSphereDetails:
		if d.SphereID == uuid.Nil {
			return domainerrors.MissingParam("sphere details requires a sphere id")
		}
	case KindSphereCreatePost:
		if d.SphereID == uuid.Nil {
			return domainerrors.MissingParam("post creation requires a sphere id")
		}
	case KindPostDetails:
		if d.SphereID == uuid.Nil {
			return domainerrors.MissingParam("post details requires a sphere id")
		}
		if d.PostID == uuid.Nil {
			return domainerrors.MissingParam("post details requires a post id")
		}
	}
	return nil
}

// Tab reports whether the destination is one of the five shell tabs
func (d Destination) Tab() bool {
	switch d.Kind {
	case KindHome, KindExplore, KindSpheres, KindProfile, KindWallet:
		return true
	}
	return false
}

// Modal reports whether the destination stacks on top of a tab
func (d Destination) Modal() bool {
	switch d.Kind {
	case KindSphereDetails, KindSphereCreate, KindSphereCreatePost, KindPostDetails, KindRecommendations:
		return true
	}
	return false
}

// preAuth reports whether the destination belongs to the unauthenticated flow
func (d Destination) preAuth() bool {
	switch d.Kind {
	case KindWelcome, KindLogin, KindSignup, KindOnboarding:
		return true
	}
	return false
}
