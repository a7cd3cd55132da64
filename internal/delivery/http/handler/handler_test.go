package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"staffhive/internal/delivery/http/middleware"
	"staffhive/internal/domain/job"
	"staffhive/internal/domain/matching"
	"staffhive/internal/pkg/jwt"
	"staffhive/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubFeedUsecase struct {
	items []usecase.FeedItem
	total int
	err   error
}

func (s *stubFeedUsecase) Feed(_ context.Context, _ uuid.UUID, _, _ int) ([]usecase.FeedItem, int, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	return s.items, s.total, nil
}

type stubMatchingUsecase struct {
	score matching.Score
	err   error
}

func (s *stubMatchingUsecase) ScoreJob(_ context.Context, _, _ uuid.UUID) (matching.Score, error) {
	if s.err != nil {
		return matching.Score{}, s.err
	}
	return s.score, nil
}

func newTestApp(t *testing.T, jwtSvc jwt.Service, feed usecase.JobFeedUsecase, matchingUC usecase.MatchingUsecase) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	authMw := middleware.NewAuthMiddleware(jwtSvc)
	v1 := app.Group("/api").Group("/v1")
	NewPricingHandler().RegisterRoutes(v1.Group("/pricing"))
	NewMatchHandler(matchingUC, feed).RegisterRoutes(v1.Group("/matches"), authMw)
	return app
}

func testJWTService() jwt.Service {
	return jwt.NewHMACService("access", "refresh", 15*time.Minute, time.Hour)
}

func decodeBody(t *testing.T, r io.Reader, out any) {
	t.Helper()
	if err := json.NewDecoder(r).Decode(out); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}

func TestShiftPreviewEndpoint(t *testing.T) {
	app := newTestApp(t, testJWTService(), &stubFeedUsecase{}, &stubMatchingUsecase{})

	body, _ := json.Marshal(map[string]any{"hoursWorked": 8, "hourlyRate": 20})
	req := httptest.NewRequest("POST", "/api/v1/pricing/shift-preview", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			BaseCost      float64 `json:"baseCost"`
			EmployerTotal float64 `json:"employerTotal"`
			WorkerPayout  float64 `json:"workerPayout"`
		} `json:"data"`
	}
	decodeBody(t, resp.Body, &envelope)

	if !envelope.Success {
		t.Fatal("expected success envelope")
	}
	if envelope.Data.BaseCost != 160 || envelope.Data.EmployerTotal != 184 || envelope.Data.WorkerPayout != 152 {
		t.Fatalf("breakdown = %+v", envelope.Data)
	}
}

func TestShiftPreviewRejectsNegativeInput(t *testing.T) {
	app := newTestApp(t, testJWTService(), &stubFeedUsecase{}, &stubMatchingUsecase{})

	body, _ := json.Marshal(map[string]any{"hoursWorked": -1, "hourlyRate": 20})
	req := httptest.NewRequest("POST", "/api/v1/pricing/shift-preview", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFeedRequiresAuth(t *testing.T) {
	app := newTestApp(t, testJWTService(), &stubFeedUsecase{}, &stubMatchingUsecase{})

	req := httptest.NewRequest("GET", "/api/v1/matches/feed", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestFeedReturnsScoredJobs(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()
	jobID := uuid.New()

	feed := &stubFeedUsecase{
		items: []usecase.FeedItem{{
			Job:             job.Posting{ID: jobID, CompanyID: uuid.New(), Title: "Warehouse Associate", Status: job.StatusPublished},
			Score:           matching.Score{WorkerID: userID, JobID: jobID, OverallScore: 87},
			EstimatedPayout: 152,
		}},
		total: 1,
	}
	app := newTestApp(t, svc, feed, &stubMatchingUsecase{})

	token, err := svc.GenerateAccessToken(userID, "anna@example.com", jwt.RoleWorker)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/matches/feed?page=1&pageSize=20", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    []struct {
			Score struct {
				OverallScore int `json:"overallScore"`
			} `json:"score"`
			EstimatedPayout float64 `json:"estimatedPayout"`
		} `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	decodeBody(t, resp.Body, &envelope)

	if len(envelope.Data) != 1 {
		t.Fatalf("items = %d, want 1", len(envelope.Data))
	}
	if envelope.Data[0].Score.OverallScore != 87 {
		t.Fatalf("score = %d, want 87", envelope.Data[0].Score.OverallScore)
	}
	if envelope.Data[0].EstimatedPayout != 152 {
		t.Fatalf("payout = %v, want 152", envelope.Data[0].EstimatedPayout)
	}
	if envelope.Pagination.Total != 1 {
		t.Fatalf("total = %d, want 1", envelope.Pagination.Total)
	}
}

func TestEmployerRoleRejectedOnWorkerRoutes(t *testing.T) {
	svc := testJWTService()
	app := newTestApp(t, svc, &stubFeedUsecase{}, &stubMatchingUsecase{})

	token, err := svc.GenerateAccessToken(uuid.New(), "maria@logicorp.fi", jwt.RoleEmployer)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/matches/feed", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}
