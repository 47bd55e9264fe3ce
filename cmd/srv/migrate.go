package main

import (
	"errors"

	"github.com/google/uuid"
	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/migration"
	"github.com/typer-app/backend/pkg/crypto"
	"github.com/typer-app/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.loadContext()
	s.loadDatabase()

	if err := migration.Migrate(s.ctx); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Migration completed")
	return nil
}

// startProvision creates the first super admin from the bootstrap configs.
// Both the name and the password must come from the environment, the binary
// ships with no credential of its own.
func (s *srv) startProvision(*cli.Context) error {
	s.loadContext()
	s.loadDatabase()

	cfg := xcontext.Configs(s.ctx).Bootstrap
	if cfg.AdminName == "" || cfg.AdminPassword == "" {
		return errors.New("BOOTSTRAP_ADMIN_NAME and BOOTSTRAP_ADMIN_PASSWORD must be set")
	}

	userRepo := repository.NewUserRepository()
	existing, err := userRepo.GetByName(s.ctx, cfg.AdminName)
	if err == nil {
		if existing.IsSuperAdmin() {
			xcontext.Logger(s.ctx).Infof("Super admin %s already provisioned", cfg.AdminName)
			return nil
		}

		return errors.New("the bootstrap admin name is taken by a regular user")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := crypto.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	err = userRepo.Create(s.ctx, &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Name:           cfg.AdminName,
		HashedPassword: hashed,
		Role:           entity.SuperAdminRole,
	})
	if err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Super admin %s provisioned", cfg.AdminName)
	return nil
}
