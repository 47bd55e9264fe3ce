package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/testutil"
	"github.com/typer-app/backend/pkg/xcontext"
)

func newTestCommentDomain() *commentDomain {
	return NewCommentDomain(
		repository.NewCommentRepository(),
		repository.NewMemberRepository(),
		repository.NewUserRepository(),
	)
}

func Test_commentDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User2.ID)
	testutil.CreateFixtureDb(ctx, t)
	commentDomain := newTestCommentDomain()

	_, err := commentDomain.Create(ctx, &model.CreateCommentRequest{
		GroupID:     testutil.Group1.ID,
		Description: "first",
	})
	require.NoError(t, err)

	_, err = commentDomain.Create(ctx, &model.CreateCommentRequest{
		GroupID: testutil.Group1.ID,
	})
	requireErrorCode(t, err, errorx.BadRequest)

	// User2 is not a member of Group2.
	_, err = commentDomain.Create(ctx, &model.CreateCommentRequest{
		GroupID:     testutil.Group2.ID,
		Description: "hello",
	})
	requireErrorCode(t, err, errorx.PermissionDenied)
}

func Test_commentDomain_GetList_NewestFirst(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User2.ID)
	testutil.CreateFixtureDb(ctx, t)
	commentDomain := newTestCommentDomain()

	for _, text := range []string{"first", "second", "third"} {
		_, err := commentDomain.Create(ctx, &model.CreateCommentRequest{
			GroupID:     testutil.Group1.ID,
			Description: text,
		})
		require.NoError(t, err)
	}

	resp, err := commentDomain.GetList(ctx, &model.GetListCommentRequest{
		GroupID: testutil.Group1.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Comments, 3)

	for i := 1; i < len(resp.Comments); i++ {
		require.False(t,
			resp.Comments[i-1].CreatedAt.Before(resp.Comments[i].CreatedAt))
	}
}

func Test_commentDomain_Delete(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User2.ID)
	testutil.CreateFixtureDb(ctx, t)
	commentDomain := newTestCommentDomain()

	created, err := commentDomain.Create(ctx, &model.CreateCommentRequest{
		GroupID:     testutil.Group1.ID,
		Description: "mine",
	})
	require.NoError(t, err)

	// Another user cannot delete it, the author and a super admin can.
	otherCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = commentDomain.Delete(otherCtx, &model.DeleteCommentRequest{
		CommentID: created.ID,
	})
	requireErrorCode(t, err, errorx.PermissionDenied)

	_, err = commentDomain.Delete(ctx, &model.DeleteCommentRequest{
		CommentID: created.ID,
	})
	require.NoError(t, err)

	_, err = commentDomain.Delete(ctx, &model.DeleteCommentRequest{
		CommentID: created.ID,
	})
	requireErrorCode(t, err, errorx.NotFound)
}
