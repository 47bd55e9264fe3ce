package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// verifierError passes rule failures from the role verifier through to the
// client and hides everything else behind Unknown.
func verifierError(ctx context.Context, err error) error {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return errx
	}

	xcontext.Logger(ctx).Errorf("Cannot verify permission: %v", err)
	return errorx.Unknown
}

// isUniqueViolation matches duplicate key failures from both mysql and the
// sqlite used in tests.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}
