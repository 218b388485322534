// Package server exposes the recruiting flow over HTTP for the browser
// front end. Public routes cover the job list and candidate sign-up; the
// /admin group requires a bearer token issued by /auth/login.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/spigell/talents/internal/ai"
	"github.com/spigell/talents/internal/auth"
	"github.com/spigell/talents/internal/logger"
	"github.com/spigell/talents/internal/store"
)

const DefaultShutdownTimeout = 10 * time.Second

// Deps are the services behind the API. Nil AI services are disabled and
// a nil store is unconfigured.
type Deps struct {
	Store   store.Store
	Auth    auth.Authenticator
	Tokens  TokenValidator
	Matcher ai.Matcher
	Analyst ai.Analyst
	Logger  *zap.Logger
}

type Server struct {
	app    *fiber.App
	deps   Deps
	logger *zap.Logger
}

func New(deps Deps) *Server {
	if deps.Store == nil {
		deps.Store = store.Unconfigured{}
	}
	if deps.Matcher == nil {
		deps.Matcher = ai.Disabled{}
	}
	if deps.Analyst == nil {
		deps.Analyst = ai.Disabled{}
	}
	log := logger.WithFields(deps.Logger)

	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:      "talents",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 2 * time.Minute,
		}),
		deps:   deps,
		logger: log,
	}
	s.app.Use(accessLog(log))
	s.app.Use(errorMiddleware(log))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health", s.health)
	s.app.Post("/auth/login", s.login)

	// Candidates hold no credentials. Their routes are public and keyed by
	// the random talent id returned at registration.
	s.app.Get("/jobs", s.listPublicJobs)
	s.app.Post("/talents", s.registerTalent)
	s.app.Get("/talents/:id/applications", s.listTalentApplications)
	s.app.Post("/talents/:id/applications", s.apply)

	admin := s.app.Group("/admin", adminOnly(s.deps.Tokens))
	admin.Get("/jobs", s.listJobs)
	admin.Post("/jobs", s.createJob)
	admin.Put("/jobs/:id", s.updateJob)
	admin.Get("/jobs/:id/applications", s.listJobApplications)
	admin.Get("/talents", s.listTalents)
	admin.Get("/talents/:id", s.getTalent)
	admin.Post("/talents/:id/matches", s.rankMatches)
	admin.Post("/talents/:id/culture-fit", s.analyzeCulture)
	admin.Patch("/applications/:id", s.changeApplicationStatus)
}

// App exposes the fiber app, mostly for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", zap.String("addr", addr))
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
