package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/typer-app/backend/config"
	"github.com/typer-app/backend/internal/common"
	"github.com/typer-app/backend/internal/domain"
	"github.com/typer-app/backend/internal/domain/statistic"
	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/authenticator"
	"github.com/typer-app/backend/pkg/logger"
	"github.com/typer-app/backend/pkg/xcontext"
	"github.com/typer-app/backend/pkg/xredis"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context

	server *http.Server

	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	memberRepo  repository.MemberRepository
	eventRepo   repository.EventRepository
	betRepo     repository.BetRepository
	commentRepo repository.CommentRepository

	leaderboard statistic.Leaderboard

	authDomain      domain.AuthDomain
	groupDomain     domain.GroupDomain
	eventDomain     domain.EventDomain
	betDomain       domain.BetDomain
	commentDomain   domain.CommentDomain
	statisticDomain domain.StatisticDomain

	redisClient xredis.Client
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}

	return value
}

func (s *srv) loadConfig() config.Configs {
	return config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "typer"),
			Password: getEnv("MYSQL_PASSWORD", "secret"),
			Database: getEnv("MYSQL_DATABASE", "typer"),
		},
		ApiServer: config.ServerConfigs{
			Host:           getEnv("HOST", "localhost"),
			Port:           getEnv("PORT", "8080"),
			Cert:           getEnv("SERVER_CERT", ""),
			Key:            getEnv("SERVER_KEY", ""),
			AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
			DefaultLimit:   getEnvInt("DEFAULT_LIMIT", 10),
			MaxLimit:       getEnvInt("MAX_LIMIT", 50),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token-secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Duration(getEnvInt("ACCESS_TOKEN_DURATION_HOURS", 24)) * time.Hour,
			},
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Bootstrap: config.BootstrapConfigs{
			AdminName:     getEnv("BOOTSTRAP_ADMIN_NAME", ""),
			AdminPassword: getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),
		},
	}
}

func (s *srv) loadContext() {
	cfg := s.loadConfig()

	level := logger.INFO
	if cfg.Env == "local" || cfg.Env == "testing" {
		level = logger.DEBUG
	}

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
	s.ctx = xcontext.WithTokenEngine(s.ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth))
}

func (s *srv) loadDatabase() {
	dbCfg := xcontext.Configs(s.ctx).Database
	db, err := gorm.Open(
		mysql.Open(dbCfg.ConnectionString()),
		&gorm.Config{},
	)
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) loadRedis() {
	client, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = client
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.groupRepo = repository.NewGroupRepository()
	s.memberRepo = repository.NewMemberRepository()
	s.eventRepo = repository.NewEventRepository()
	s.betRepo = repository.NewBetRepository()
	s.commentRepo = repository.NewCommentRepository()
}

func (s *srv) loadDomains() {
	roleVerifier := common.NewGroupRoleVerifier(s.userRepo, s.groupRepo, s.memberRepo, time.Now)
	s.leaderboard = statistic.New(s.betRepo, s.redisClient)

	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.groupDomain = domain.NewGroupDomain(
		s.groupRepo, s.memberRepo, s.eventRepo, s.betRepo, s.commentRepo, roleVerifier)
	s.eventDomain = domain.NewEventDomain(s.eventRepo, s.betRepo, roleVerifier, s.leaderboard)
	s.betDomain = domain.NewBetDomain(s.betRepo, s.eventRepo, roleVerifier)
	s.commentDomain = domain.NewCommentDomain(s.commentRepo, s.memberRepo, s.userRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.groupRepo, s.userRepo, s.leaderboard)
}
