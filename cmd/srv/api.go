package main

import (
	"fmt"
	"net/http"

	"github.com/typer-app/backend/internal/middleware"
	"github.com/typer-app/backend/pkg/router"
	"github.com/typer-app/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadContext()
	s.loadDatabase()
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()

	cfg := xcontext.Configs(s.ctx).ApiServer
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: s.loadRouter().Handler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting server on %s:%s", cfg.Host, cfg.Port)
	if cfg.Cert != "" && cfg.Key != "" {
		return s.server.ListenAndServeTLS(cfg.Cert, cfg.Key)
	}

	return s.server.ListenAndServe()
}

func (s *srv) loadRouter() *router.Router {
	rootRouter := router.New(s.ctx)
	rootRouter.AddCloser(middleware.Logger())

	// Public routes.
	onlyTokenRequired := rootRouter.Branch()
	router.POST(onlyTokenRequired, "/register", s.authDomain.Register)
	router.POST(onlyTokenRequired, "/login", s.authDomain.Login)
	router.GET(onlyTokenRequired, "/getListGroup", s.groupDomain.GetList)

	// Routes requiring an authenticated user.
	authRouter := rootRouter.Branch()
	authRouter.Before(middleware.WithAuth())

	router.GET(authRouter, "/getMe", s.authDomain.GetMe)

	router.POST(authRouter, "/createGroup", s.groupDomain.Create)
	router.GET(authRouter, "/getGroup", s.groupDomain.Get)
	router.GET(authRouter, "/getGroupRoster", s.groupDomain.GetRoster)
	router.POST(authRouter, "/joinGroup", s.groupDomain.Join)
	router.POST(authRouter, "/leaveGroup", s.groupDomain.Leave)
	router.POST(authRouter, "/setGroupAdmin", s.groupDomain.SetAdmin)
	router.POST(authRouter, "/deleteGroup", s.groupDomain.Delete)

	router.POST(authRouter, "/createEvent", s.eventDomain.Create)
	router.GET(authRouter, "/getEvent", s.eventDomain.Get)
	router.GET(authRouter, "/getListEvent", s.eventDomain.GetList)
	router.POST(authRouter, "/updateEvent", s.eventDomain.Update)
	router.POST(authRouter, "/setEventResult", s.eventDomain.SetResult)
	router.POST(authRouter, "/deleteEvent", s.eventDomain.Delete)

	router.POST(authRouter, "/placeBet", s.betDomain.Place)
	router.GET(authRouter, "/getMyBets", s.betDomain.GetMyBets)
	router.GET(authRouter, "/getEventBets", s.betDomain.GetEventBets)

	router.POST(authRouter, "/createComment", s.commentDomain.Create)
	router.GET(authRouter, "/getListComment", s.commentDomain.GetList)
	router.POST(authRouter, "/deleteComment", s.commentDomain.Delete)

	router.GET(authRouter, "/getLeaderboard", s.statisticDomain.GetLeaderboard)

	return rootRouter
}
