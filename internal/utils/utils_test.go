package utils_test

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"

    "github.com/iliyamo/hotel-room-reservation/internal/utils"
)

func TestAccessToken_RoundTrip(t *testing.T) {
    at, err := utils.NewAccessToken("s3cret", 42, "MANAGER", 15)
    require.NoError(t, err)
    assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), at.Exp, 5*time.Second)

    id, err := utils.ParseAccessToken("s3cret", at.Token)
    require.NoError(t, err)
    assert.Equal(t, utils.Identity{UserID: 42, Role: "MANAGER"}, id)
    assert.Equal(t, "42", id.Subject())
}

func TestParseAccessToken_Rejects(t *testing.T) {
    good, err := utils.NewAccessToken("s3cret", 42, "STAFF", 15)
    require.NoError(t, err)

    expired, err := utils.NewAccessToken("s3cret", 42, "STAFF", -5)
    require.NoError(t, err)

    none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
        "sub": "42", "role": "STAFF", "exp": time.Now().Add(time.Hour).Unix(),
    }).SignedString(jwt.UnsafeAllowNoneSignatureType)
    require.NoError(t, err)

    noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"}).SignedString([]byte("s3cret"))
    require.NoError(t, err)

    badSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "sub": "front-desk", "exp": time.Now().Add(time.Hour).Unix(),
    }).SignedString([]byte("s3cret"))
    require.NoError(t, err)

    cases := map[string]struct{ secret, token string }{
        "WrongSecret": {"other", good.Token},
        "Expired":     {"s3cret", expired.Token},
        "AlgNone":     {"s3cret", none},
        "NoExpiry":    {"s3cret", noExp},
        "NonNumeric":  {"s3cret", badSub},
        "Garbage":     {"s3cret", "not.a.jwt"},
    }
    for name, tc := range cases {
        t.Run(name, func(t *testing.T) {
            _, err := utils.ParseAccessToken(tc.secret, tc.token)
            assert.ErrorIs(t, err, utils.ErrInvalidToken)
        })
    }
}

func TestRefreshToken(t *testing.T) {
    a, err := utils.NewRefreshToken(7)
    require.NoError(t, err)
    b, err := utils.NewRefreshToken(7)
    require.NoError(t, err)
    assert.Len(t, a.Raw, 96)
    assert.NotEqual(t, a.Raw, b.Raw)
    assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), a.Exp, 5*time.Second)

    h := utils.HashRefreshRaw(a.Raw)
    assert.Len(t, h, 64)
    assert.Equal(t, h, utils.HashRefreshRaw(a.Raw))
    assert.NotEqual(t, h, utils.HashRefreshRaw(b.Raw))
}

func TestPassword(t *testing.T) {
    hash, err := utils.HashPassword("correct horse", bcrypt.MinCost)
    require.NoError(t, err)
    assert.True(t, utils.VerifyPassword(hash, "correct horse"))
    assert.False(t, utils.VerifyPassword(hash, "battery staple"))
    assert.False(t, utils.VerifyPassword("not-a-hash", "correct horse"))
}

func TestValidatePassword(t *testing.T) {
    assert.ErrorIs(t, utils.ValidatePassword("short"), utils.ErrPasswordTooShort)
    assert.ErrorIs(t, utils.ValidatePassword(string(make([]byte, 73))), utils.ErrPasswordTooLong)
    assert.NoError(t, utils.ValidatePassword("correct horse"))
}
