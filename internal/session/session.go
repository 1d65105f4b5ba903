// Package session holds the per-visitor view state: whether the visitor is
// logged in, under which username, and which page they are looking at.
//
// The transitions are pure functions over Session values:
//
//	Login ──RequestSignUp──▶ SignUp ──CompleteSignUp──▶ Login
//	Login ──Login(name)────▶ Dashboard ──Logout──────▶ Login
//
// Dashboard is only reachable through Login. There is no terminal state.
package session

import "fmt"

// View selects which form set is rendered.
type View string

const (
	ViewLogin     View = "login"
	ViewSignUp    View = "signup"
	ViewDashboard View = "dashboard"
)

// ParseView converts the string form of a view. Unknown strings are an error.
func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewLogin, ViewSignUp, ViewDashboard:
		return v, nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// Session is the acting visitor's state. The zero value is not the initial
// session; use New.
type Session struct {
	Authenticated bool   `json:"is_authenticated"`
	Username      string `json:"username"`
	View          View   `json:"view"`
}

// New returns the initial session: logged out on the login view.
func New() Session {
	return Session{View: ViewLogin}
}

// Valid reports whether s satisfies the view invariant: the dashboard is only
// shown to an authenticated visitor.
func (s Session) Valid() bool {
	if _, err := ParseView(string(s.View)); err != nil {
		return false
	}
	if s.View == ViewDashboard && !s.Authenticated {
		return false
	}
	return true
}

// OnDashboard reports whether feed operations are available to s.
func (s Session) OnDashboard() bool {
	return s.Authenticated && s.View == ViewDashboard
}

// Login signs the visitor in as username and shows the dashboard. Any
// non-empty username is accepted; callers reject empty ones.
func Login(_ Session, username string) Session {
	return Session{Authenticated: true, Username: username, View: ViewDashboard}
}

// Logout returns to the initial session.
func Logout(Session) Session {
	return New()
}

// RequestSignUp switches to the sign-up view without touching authentication.
func RequestSignUp(s Session) Session {
	s.View = ViewSignUp
	return s
}

// CompleteSignUp returns to the login view. Sign-up details are not kept.
func CompleteSignUp(s Session) Session {
	s.View = ViewLogin
	return s
}
