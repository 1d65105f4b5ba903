package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InitialState(t *testing.T) {
	s := New()
	assert.False(t, s.Authenticated)
	assert.Empty(t, s.Username)
	assert.Equal(t, ViewLogin, s.View)
	assert.True(t, s.Valid())
}

func TestLoginThenLogout(t *testing.T) {
	s := Login(New(), "alice")
	assert.Equal(t, Session{Authenticated: true, Username: "alice", View: ViewDashboard}, s)
	assert.True(t, s.OnDashboard())

	assert.Equal(t, New(), Logout(s))
}

func TestSignUpRoundTrip(t *testing.T) {
	s := RequestSignUp(New())
	assert.Equal(t, ViewSignUp, s.View)
	assert.False(t, s.Authenticated)

	s = CompleteSignUp(s)
	assert.Equal(t, New(), s)
}

func TestRequestSignUp_KeepsAuthentication(t *testing.T) {
	s := RequestSignUp(Login(New(), "bob"))
	assert.True(t, s.Authenticated)
	assert.Equal(t, "bob", s.Username)
	assert.Equal(t, ViewSignUp, s.View)
	assert.True(t, s.Valid())
}

func TestTransitions_DoNotMutateInput(t *testing.T) {
	in := Login(New(), "carol")
	_ = RequestSignUp(in)
	_ = CompleteSignUp(in)
	_ = Logout(in)
	assert.Equal(t, ViewDashboard, in.View)
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		s    Session
		want bool
	}{
		{"initial", New(), true},
		{"dashboard logged in", Session{Authenticated: true, Username: "a", View: ViewDashboard}, true},
		{"dashboard logged out", Session{View: ViewDashboard}, false},
		{"signup", Session{View: ViewSignUp}, true},
		{"unknown view", Session{View: "profile"}, false},
		{"zero value", Session{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Valid())
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec("test-secret", time.Hour)
	for _, s := range []Session{
		New(),
		RequestSignUp(New()),
		Login(New(), "dave"),
	} {
		raw, err := c.Encode(s)
		require.NoError(t, err)

		got, err := c.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestCodec_RejectsWrongSecret(t *testing.T) {
	raw, err := NewCodec("one", time.Hour).Encode(Login(New(), "eve"))
	require.NoError(t, err)

	s, err := NewCodec("two", time.Hour).Decode(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, New(), s)
}

func TestCodec_RejectsExpired(t *testing.T) {
	c := NewCodec("secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	c.now = func() time.Time { return issued }
	raw, err := c.Encode(Login(New(), "frank"))
	require.NoError(t, err)

	c.now = time.Now
	_, err = c.Decode(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_RejectsDashboardWithoutLogin(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{View: string(ViewDashboard)})
	raw, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	s, err := NewCodec("secret", 0).Decode(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, New(), s)
}

func TestCodec_DecodeOrNew(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	s, err := c.DecodeOrNew("")
	assert.NoError(t, err)
	assert.Equal(t, New(), s)

	s, err = c.DecodeOrNew("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, New(), s)
}
