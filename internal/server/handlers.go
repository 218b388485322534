package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/spigell/talents/internal/ai"
	"github.com/spigell/talents/internal/auth"
	"github.com/spigell/talents/internal/filtering"
	"github.com/spigell/talents/internal/talents"
)

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type applyRequest struct {
	JobID string `json:"job_id"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type transcriptRequest struct {
	Transcript string `json:"transcript"`
}

type cultureResponse struct {
	TalentID string `json:"talent_id"`
	Report   string `json:"report"`
}

func bind(c fiber.Ctx, dst any) error {
	if err := c.Bind().Body(dst); err != nil {
		return newAppError(fiber.StatusBadRequest, "malformed request body", err)
	}
	return nil
}

func (s *Server) health(c fiber.Ctx) error {
	return reply(c, fiber.StatusOK, fiber.Map{"status": "up"})
}

func (s *Server) login(c fiber.Ctx) error {
	if s.deps.Auth == nil {
		return newAppError(fiber.StatusServiceUnavailable, "admin login is not configured", nil)
	}
	var creds auth.Credentials
	if err := bind(c, &creds); err != nil {
		return err
	}
	session, err := s.deps.Auth.Authenticate(c.Context(), creds)
	if err != nil {
		return err
	}
	return reply(c, fiber.StatusOK, loginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (s *Server) listPublicJobs(c fiber.Ctx) error {
	jobs, err := s.deps.Store.ListJobs(c.Context())
	if err != nil {
		return err
	}
	deps := filtering.Deps{Applications: s.deps.Store, Logger: s.logger, TalentID: c.Query("talent_id")}
	steps := filtering.Public()
	if deps.TalentID == "" {
		filtering.DisableByName(steps, filtering.AppliedHistoryName, "anonymous request")
	}
	open, err := filtering.Run(c.Context(), &filtering.Config{Keyword: c.Query("q")}, deps, steps, jobs)
	if err != nil {
		return err
	}
	return reply(c, fiber.StatusOK, open)
}

func (s *Server) registerTalent(c fiber.Ctx) error {
	var fields talents.TalentFields
	if err := bind(c, &fields); err != nil {
		return err
	}
	t, err := s.deps.Store.CreateTalentProfile(c.Context(), fields)
	if err != nil {
		return err
	}
	s.logger.Info("candidate registered", zap.String("talent_id", t.ID))
	return reply(c, fiber.StatusCreated, t)
}

func (s *Server) listTalentApplications(c fiber.Ctx) error {
	apps, err := s.deps.Store.ListApplications(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return reply(c, fiber.StatusOK, apps)
}

func (s *Server) apply(c fiber.Ctx) error {
	var req applyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if strings.TrimSpace(req.JobID) == "" {
		return &AppError{
			Status:  fiber.StatusUnprocessableEntity,
			Message: "validation failed",
			Data:    map[string]string{"job_id": "is required"},
		}
	}

	job, err := s.deps.Store.GetJob(c.Context(), req.JobID)
	if err != nil {
		return err
	}
	if !job.IsPublic() {
		return newAppError(fiber.StatusConflict, "job is not open for applications", nil)
	}

	app, err := s.deps.Store.CreateApplication(c.Context(), req.JobID, c.Params("id"))
	if err != nil {
		return err
	}
	return reply(c, fiber.StatusCreated, app)
}

func (s *Server) listJobs(c fiber.Ctx) error {
	jobs, err := s.deps.Store.ListJobs(c.Context())
	if err != nil {
		return err
	}
	return reply(c, fiber.StatusOK, jobs)
}

func (s *Server) createJob(c fiber.Ctx) error {
	var fields talents.JobFields
	if err := bind(c, &fields); err != nil {
		return err
	}
	job, err := s.deps.Store.CreateJob(c.Context(), fields)
	if err != nil {
		return err
	}
	s.logger.Info("job created", zap.String("job_id", job.ID), zap.Any("admin", c.Locals(ctxAdminEmail)))
	return reply(c, fiber.StatusCreated, job)
}

func (s *Server) updateJob(c fiber.Ctx) error {
	var fields talents.JobFields
	if err := bind(c, &fields); err != nil {
		return err
	}
	id := c.Params("id")
	if err := s.deps.Store.UpdateJob(c.Context(), id, fields); err != nil {
		return err
	}
	job, err := s.deps.Store.GetJob(c.Context(), id)
	if err != nil {
		return err
	}
	s.logger.Info("job updated", zap.String("job_id", id), zap.Any("admin", c.Locals(ctxAdminEmail)))
	return reply(c, fiber.StatusOK, job)
}

func (s *Server) listJobApplications(c fiber.Ctx) error {
	id := c.Params("id")
	if _, err := s.deps.Store.GetJob(c.Context(), id); err != nil {
		return err
	}
	apps, err := s.deps.Store.ListJobApplications(c.Context(), id)
	if err != nil {
		return err
	}
	return reply(c, fiber.StatusOK, apps)
}

func (s *Server) listTalents(c fiber.Ctx) error {
	list, err := s.deps.Store.ListTalents(c.Context())
	if err != nil {
		return err
	}
	return reply(c, fiber.StatusOK, list)
}

func (s *Server) getTalent(c fiber.Ctx) error {
	t, err := s.deps.Store.GetTalent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return reply(c, fiber.StatusOK, t)
}

func (s *Server) rankMatches(c fiber.Ctx) error {
	t, err := s.deps.Store.GetTalent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	jobs, err := s.deps.Store.ListJobs(c.Context())
	if err != nil {
		return err
	}
	matches, err := s.deps.Matcher.RankJobMatches(c.Context(), t, jobs)
	if err != nil {
		return err
	}
	ai.SortMatches(matches)
	return reply(c, fiber.StatusOK, matches)
}

func (s *Server) analyzeCulture(c fiber.Ctx) error {
	var req transcriptRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	transcript := talents.SanitizeText(req.Transcript)
	if strings.TrimSpace(transcript) == "" {
		return &AppError{
			Status:  fiber.StatusUnprocessableEntity,
			Message: "validation failed",
			Data:    map[string]string{"transcript": "is required"},
		}
	}

	t, err := s.deps.Store.GetTalent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	report, err := s.deps.Analyst.AnalyzeTranscript(c.Context(), t.Name, t.Bio, transcript)
	if err != nil {
		return err
	}
	return reply(c, fiber.StatusOK, cultureResponse{TalentID: t.ID, Report: report})
}

func (s *Server) changeApplicationStatus(c fiber.Ctx) error {
	var req statusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	status, err := talents.ParseApplicationStatus(req.Status)
	if err != nil {
		return &AppError{
			Status:  fiber.StatusUnprocessableEntity,
			Message: "validation failed",
			Data:    map[string]string{"status": err.Error()},
			Cause:   err,
		}
	}
	app, err := s.deps.Store.UpdateApplicationStatus(c.Context(), c.Params("id"), status)
	if err != nil {
		return err
	}
	s.logger.Info("application status changed", zap.String("application_id", app.ID), zap.String("status", string(app.Status)))
	return reply(c, fiber.StatusOK, app)
}
