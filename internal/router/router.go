package router

import (
	"github.com/stpnv0/CourtBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Health(c *ginext.Context)

	GetAvailability(c *ginext.Context)
	CalculatePrice(c *ginext.Context)

	CreateHold(c *ginext.Context)
	ConfirmReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	JoinReservation(c *ginext.Context)
	MarkSharePaid(c *ginext.Context)
	GetUserReservations(c *ginext.Context)

	PreviewRecurring(c *ginext.Context)
	CreateRecurring(c *ginext.Context)
	ConfirmSeries(c *ginext.Context)

	ListRateRules(c *ginext.Context)
	CreateRateRule(c *ginext.Context)
	UpdateRateRule(c *ginext.Context)
	DeleteRateRule(c *ginext.Context)

	ListCourts(c *ginext.Context)
	CreateCourt(c *ginext.Context)
	DeactivateCourt(c *ginext.Context)
}

func InitRouter(mode string, h Handler, jwtSecret string, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	authed := middleware.RequireRole()
	staff := middleware.RequireRole(middleware.RoleOwner, middleware.RoleAdmin)

	api := router.Group("/api", middleware.Authenticate(jwtSecret))
	{
		api.GET("/availability", h.GetAvailability)

		// Reservations
		api.POST("/reservations/hold", h.CreateHold)
		api.POST("/reservations/confirm", h.ConfirmReservation)
		api.POST("/reservations/calculate", h.CalculatePrice)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/join", h.JoinReservation)
		api.POST("/reservations/:id/shares/:shareId/paid", staff, h.MarkSharePaid)

		// Recurring series
		api.POST("/reservations/recurring/preview", h.PreviewRecurring)
		api.POST("/reservations/recurring", h.CreateRecurring)
		api.POST("/reservations/series/:id/confirm", staff, h.ConfirmSeries)

		// Price rules
		api.GET("/prices", h.ListRateRules)
		api.POST("/prices", staff, h.CreateRateRule)
		api.PUT("/prices/:id", staff, h.UpdateRateRule)
		api.DELETE("/prices/:id", staff, h.DeleteRateRule)

		// Courts
		api.GET("/courts", h.ListCourts)
		api.POST("/courts", staff, h.CreateCourt)
		api.DELETE("/courts/:id", staff, h.DeactivateCourt)

		// Users
		api.GET("/users/:id/reservations", authed, h.GetUserReservations)
	}

	router.GET("/health", h.Health)

	return router
}
