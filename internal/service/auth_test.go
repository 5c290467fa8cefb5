package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/model"
)

func TestSignUpAndSignIn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.authSvc.SignUp(ctx, dto.SignUpRequest{
		Email:     "buyer@test.com",
		Password:  "buyer-password",
		FirstName: "Awa",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleBuyer, resp.User.Role)

	signedIn, err := env.authSvc.SignIn(ctx, "buyer@test.com", "buyer-password")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, signedIn.User.ID)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.authSvc.SignUp(ctx, dto.SignUpRequest{Email: "buyer@test.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = env.authSvc.SignUp(ctx, dto.SignUpRequest{Email: "buyer@test.com", Password: "pw2"})
	assert.True(t, apperr.IsKind(err, apperr.KindDuplicate))
}

func TestSignInInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.authSvc.SignIn(ctx, "nobody@test.com", "whatever")
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))

	_, err = env.authSvc.SignUp(ctx, dto.SignUpRequest{Email: "buyer@test.com", Password: "right"})
	require.NoError(t, err)

	_, err = env.authSvc.SignIn(ctx, "buyer@test.com", "wrong")
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.authSvc.SeedAdmin(ctx))
	// Seeding twice is a no-op.
	require.NoError(t, env.authSvc.SeedAdmin(ctx))

	resp, err := env.authSvc.AdminLogin(ctx, testAdminCfg.Password)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)

	_, err = env.authSvc.AdminLogin(ctx, "wrong-password")
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))
}

func TestApprovedSellerCanSignIn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")

	resp, err := env.authSvc.SignIn(ctx, "atelier@test.com", "seller-password")
	require.NoError(t, err)
	assert.Equal(t, model.RoleSeller, resp.User.Role)
	// The account id matches the storefront id, so ownership checks hold.
	assert.Equal(t, seller.ID, resp.User.ID)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.authSvc.SignUp(ctx, dto.SignUpRequest{
		Email:     "buyer@test.com",
		Password:  "buyer-password",
		FirstName: "Awa",
	})
	require.NoError(t, err)

	me, err := env.authSvc.Me(ctx, buyerSession(resp.User.ID))
	require.NoError(t, err)
	assert.Equal(t, "buyer@test.com", me.Email)
	assert.Equal(t, "Awa", me.FirstName)

	// A token for a deleted account is rejected.
	_, err = env.authSvc.Me(ctx, buyerSession("user_gone"))
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))
}

func TestIndependentSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.authSvc.SignUp(ctx, dto.SignUpRequest{Email: "a@test.com", Password: "pw-a"})
	require.NoError(t, err)
	second, err := env.authSvc.SignUp(ctx, dto.SignUpRequest{Email: "b@test.com", Password: "pw-b"})
	require.NoError(t, err)

	// Two tokens are valid at the same time; nothing is process-global.
	assert.NotEqual(t, first.User.ID, second.User.ID)
	assert.NotEmpty(t, first.Token)
	assert.NotEmpty(t, second.Token)
}
