package entity

import (
	"context"

	"github.com/typer-app/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Group{},
		&Member{},
		&Event{},
		&Bet{},
		&Comment{},
		&Migration{},
	)
}
