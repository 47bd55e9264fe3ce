package middleware

import (
	"context"
	"errors"

	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/xcontext"
)

// Logger is a closer logging every request with its outcome code.
func Logger() func(context.Context) {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)

		var code errorx.Code
		if err := xcontext.Error(ctx); err != nil {
			errx := errorx.Error{}
			if errors.As(err, &errx) {
				code = errx.Code
			} else {
				code = errorx.Unknown.Code
			}
		}

		xcontext.Logger(ctx).Infof("%s %s [%d]", req.Method, req.URL.Path, code)
	}
}
