package routes

import (
	"staffhive/internal/delivery/http/handler"
	"staffhive/internal/delivery/http/middleware"
	"staffhive/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires every handler into the fiber app. Route groups own
// their middleware; handlers only see their own subtree.
type Registry struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Worker  *handler.WorkerHandler
	Job     *handler.JobHandler
	Match   *handler.MatchHandler
	Shift   *handler.ShiftHandler
	Invoice *handler.InvoiceHandler
	Pricing *handler.PricingHandler
	WS      *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.Auth.RegisterRoutes(v1.Group("/auth"), r.AuthMW)
	r.Worker.RegisterRoutes(v1.Group("/workers"), r.AuthMW)
	r.Job.RegisterRoutes(v1.Group("/jobs"), r.AuthMW)
	r.Match.RegisterRoutes(v1.Group("/matches"), r.AuthMW)
	r.Shift.RegisterRoutes(v1.Group("/shifts"), r.AuthMW)
	r.Invoice.RegisterRoutes(v1.Group("/invoices"), r.AuthMW)
	r.Pricing.RegisterRoutes(v1.Group("/pricing"))

	if r.WS != nil {
		app.Get("/ws/shifts", r.WS.HandleShiftsWS)
	}
}
