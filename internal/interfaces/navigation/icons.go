package navigation

// Icon returns the icon identifier for a destination, with the outline
// variant when the destination is not the focused tab. The mapping is
// exhaustive over Kind; an unknown kind falls through to a visible
// placeholder rather than an empty name.
func Icon(kind Kind, focused bool) string {
	var base string
	switch kind {
	case KindHome:
		base = "home"
	case KindExplore:
		base = "search"
	case KindSpheres:
		base = "globe"
	case KindProfile:
		base = "person"
	case KindWallet:
		base = "wallet"
	case KindWelcome:
		base = "planet"
	case KindLogin:
		base = "log-in"
	case KindSignup:
		base = "person-add"
	case KindOnboarding:
		base = "key"
	case KindSphereDetails:
		base = "globe"
	case KindSphereCreate:
		base = "add-circle"
	case KindSphereCreatePost:
		base = "create"
	case KindPostDetails:
		base = "document-text"
	case KindRecommendations:
		base = "sparkles"
	default:
		base = "help-circle"
	}

	if focused {
		return base
	}
	return base + "-outline"
}
