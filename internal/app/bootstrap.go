package app

import (
	"fmt"
	"strings"

	"staffhive/internal/config"
	"staffhive/internal/delivery/http/handler"
	"staffhive/internal/delivery/http/middleware"
	"staffhive/internal/delivery/http/routes"
	"staffhive/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	authMw := middleware.NewAuthMiddleware(c.JWT)

	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	reg := &routes.Registry{
		Health:  handler.NewHealthHandler(c.DB, c.Redis),
		Auth:    handler.NewAuthHandler(c.Auth),
		Worker:  handler.NewWorkerHandler(c.Worker),
		Job:     handler.NewJobHandler(c.Job),
		Match:   handler.NewMatchHandler(c.Matching, c.JobFeed),
		Shift:   handler.NewShiftHandler(c.Timesheet),
		Invoice: handler.NewInvoiceHandler(c.Invoice),
		Pricing: handler.NewPricingHandler(),
		WS:      ws.NewHandler(c.Hub, c.Logger),
		AuthMW:  authMw,
	}
	reg.Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and app; the returned cleanup closes
// everything the container opened.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run()

	a := New(c)
	return a, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
