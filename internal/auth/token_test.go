package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/model"
)

const testSecret = "test-secret"

func TestIssueAndParse(t *testing.T) {
	user := &model.User{ID: "seller_1", Email: "s@example.com", Role: model.RoleSeller}

	token, err := Issue(testSecret, time.Hour, user)
	require.NoError(t, err)

	sess, err := Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "seller_1", sess.UserID)
	assert.Equal(t, "s@example.com", sess.Email)
	assert.Equal(t, model.RoleSeller, sess.Role)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	user := &model.User{ID: "buyer_1", Role: model.RoleBuyer}

	token, err := Issue(testSecret, -time.Minute, user)
	require.NoError(t, err)

	_, err = Parse(testSecret, token)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))
}

func TestParseRejectsWrongSecret(t *testing.T) {
	user := &model.User{ID: "buyer_1", Role: model.RoleBuyer}

	token, err := Issue(testSecret, time.Hour, user)
	require.NoError(t, err)

	_, err = Parse("other-secret", token)
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))
}

func TestSessionOwns(t *testing.T) {
	seller := &Session{UserID: "seller_1", Role: model.RoleSeller}
	admin := &Session{UserID: "admin_1", Role: model.RoleAdmin}

	assert.True(t, seller.Owns("seller_1"))
	assert.False(t, seller.Owns("seller_2"))
	assert.True(t, admin.Owns("seller_2"))
}
