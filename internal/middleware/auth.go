package middleware

import (
	"context"
	"strings"

	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/pkg/authenticator"
	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/xcontext"
)

// WithAuth rejects requests without a valid bearer token and records the
// authenticated user id in the context.
func WithAuth() func(context.Context) (context.Context, error) {
	return func(ctx context.Context) (context.Context, error) {
		token := bearerToken(ctx)
		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "Require an access token")
		}

		engine := xcontext.TokenEngine[authenticator.TokenEngine[model.AccessToken]](ctx)
		accessToken, err := engine.Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}

func bearerToken(ctx context.Context) string {
	header := xcontext.HTTPRequest(ctx).Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}

	return strings.TrimPrefix(header, "Bearer ")
}
