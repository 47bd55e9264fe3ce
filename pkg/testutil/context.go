package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/typer-app/backend/config"
	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/pkg/authenticator"
	"github.com/typer-app/backend/pkg/logger"
	"github.com/typer-app/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MockContext returns a context carrying everything a domain needs: configs,
// logger, a fresh in-memory database with the schema migrated, and a token
// engine.
func MockContext(t *testing.T) context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, MockConfigs())
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, MockDatabase(t))
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](MockConfigs().Auth))

	if err := entity.MigrateTable(ctx); err != nil {
		t.Fatalf("cannot migrate table: %v", err)
	}

	return ctx
}

// MockContextWithUserID is MockContext plus an authenticated request user.
func MockContextWithUserID(t *testing.T, userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(t), userID)
}

func MockConfigs() config.Configs {
	return config.Configs{
		Env: "testing",
		ApiServer: config.ServerConfigs{
			Host:           "localhost",
			Port:           "8080",
			AllowedOrigins: []string{"*"},
			DefaultLimit:   10,
			MaxLimit:       50,
		},
		Auth: config.AuthConfigs{
			TokenSecret: "token-secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
		},
	}
}

func MockDatabase(t *testing.T) *gorm.DB {
	// A named shared-cache database keeps every pooled connection of this
	// test on the same in-memory store.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("cannot open in-memory database: %v", err)
	}

	return db
}
