package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/testutil"
)

func Test_authDomain_RegisterAndLogin(t *testing.T) {
	ctx := testutil.MockContext(t)
	authDomain := NewAuthDomain(repository.NewUserRepository())

	registered, err := authDomain.Register(ctx, &model.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", registered.User.Name)

	resp, err := authDomain.Login(ctx, &model.LoginRequest{
		Name:     "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, registered.User.ID, resp.User.ID)
}

func Test_authDomain_Register_DuplicateName(t *testing.T) {
	ctx := testutil.MockContext(t)
	authDomain := NewAuthDomain(repository.NewUserRepository())

	_, err := authDomain.Register(ctx, &model.RegisterRequest{
		Name:     "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = authDomain.Register(ctx, &model.RegisterRequest{
		Name:     "alice",
		Password: "another",
	})
	requireErrorCode(t, err, errorx.AlreadyExists)
}

func Test_authDomain_Login_WrongCredentials(t *testing.T) {
	ctx := testutil.MockContext(t)
	authDomain := NewAuthDomain(repository.NewUserRepository())

	_, err := authDomain.Register(ctx, &model.RegisterRequest{
		Name:     "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = authDomain.Login(ctx, &model.LoginRequest{
		Name:     "alice",
		Password: "wrong",
	})
	requireErrorCode(t, err, errorx.Unauthenticated)

	_, err = authDomain.Login(ctx, &model.LoginRequest{
		Name:     "nobody",
		Password: "s3cret",
	})
	requireErrorCode(t, err, errorx.Unauthenticated)
}

func Test_authDomain_Register_InvalidRequest(t *testing.T) {
	ctx := testutil.MockContext(t)
	authDomain := NewAuthDomain(repository.NewUserRepository())

	_, err := authDomain.Register(ctx, &model.RegisterRequest{Name: "alice"})
	requireErrorCode(t, err, errorx.BadRequest)

	_, err = authDomain.Register(ctx, &model.RegisterRequest{Password: "s3cret"})
	requireErrorCode(t, err, errorx.BadRequest)
}
