package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"relief-coordination.com/relief-coordination/pkg/constants"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(Identity{UserID: "user-1", Role: constants.RoleAuthority})
	require.NoError(t, err)

	identity, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", identity.UserID)
	require.True(t, identity.IsAuthority())
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Issue(Identity{UserID: "u"})
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.Issue(Identity{UserID: "u", Role: constants.RoleVolunteer})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsUnexpectedAlgorithm(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	claims := Claims{
		UserID: "u",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(unsigned)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_IssueRequiresUserID(t *testing.T) {
	_, err := NewTokenManager("s", time.Hour).Issue(Identity{Role: constants.RoleAuthority})
	require.Error(t, err)
}

func TestIdentityContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	require.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{UserID: "u", Role: constants.RoleVolunteer})
	identity, ok := FromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "u", identity.UserID)
	require.False(t, identity.IsAuthority())
}
