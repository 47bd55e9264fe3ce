// Package migration brings the database schema up to date.
package migration

import (
	"context"
	"errors"

	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const version = "0001_initial"

func Migrate(ctx context.Context) error {
	if err := entity.MigrateTable(ctx); err != nil {
		return err
	}

	var record entity.Migration
	err := xcontext.DB(ctx).Take(&record, "version=?", version).Error
	if err == nil {
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return xcontext.DB(ctx).Create(&entity.Migration{Version: version}).Error
}
