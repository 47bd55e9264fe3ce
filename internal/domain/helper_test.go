package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/typer-app/backend/internal/common"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/errorx"
)

func requireErrorCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()
	require.Error(t, err)

	errx, ok := err.(errorx.Error)
	require.True(t, ok, "expected an errorx.Error, got %v", err)
	require.Equal(t, code, errx.Code)
}

func newTestRoleVerifier() *common.GroupRoleVerifier {
	return common.NewGroupRoleVerifier(
		repository.NewUserRepository(),
		repository.NewGroupRepository(),
		repository.NewMemberRepository(),
		time.Now,
	)
}
