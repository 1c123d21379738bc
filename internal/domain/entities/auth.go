package entities

// LoginCredentials represents input for user login
type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupData is the station-1 output of the onboarding flow: the account
// fields collected before any wallet exists.
type SignupData struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"-"`
}

// AuthState is the process-wide authentication snapshot consumed by the
// navigation controller and every screen.
type AuthState struct {
	IsAuthenticated bool
	User            *User
	Token           string
	Loading         bool
	Err             error
}

// AuthResult is what the auth and provisioning collaborators hand back on
// success.
type AuthResult struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
