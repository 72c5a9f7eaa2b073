// Package adminconsole предоставляет маршруты консоли администратора.
package adminconsole

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	catalogcities "github.com/leadhub-crm/admin-console/internal/http/handlers/catalogs/cities"
	catalogoffers "github.com/leadhub-crm/admin-console/internal/http/handlers/catalogs/offers"
	"github.com/leadhub-crm/admin-console/internal/http/handlers/health"
	"github.com/leadhub-crm/admin-console/internal/http/handlers/leads/cities"
	"github.com/leadhub-crm/admin-console/internal/http/handlers/leads/commission"
	"github.com/leadhub-crm/admin-console/internal/http/handlers/leads/dynamics"
	"github.com/leadhub-crm/admin-console/internal/http/handlers/leads/list"
	"github.com/leadhub-crm/admin-console/internal/http/handlers/leads/pay"
	"github.com/leadhub-crm/admin-console/internal/http/handlers/leads/summary"
	"github.com/leadhub-crm/admin-console/internal/http/handlers/leads/threads"
	profileupdate "github.com/leadhub-crm/admin-console/internal/http/handlers/profile/update"
	ratescreate "github.com/leadhub-crm/admin-console/internal/http/handlers/rates/create"
	ratesregions "github.com/leadhub-crm/admin-console/internal/http/handlers/rates/regions"
	ratesremove "github.com/leadhub-crm/admin-console/internal/http/handlers/rates/remove"
	ratessearch "github.com/leadhub-crm/admin-console/internal/http/handlers/rates/search"
	ratesupdate "github.com/leadhub-crm/admin-console/internal/http/handlers/rates/update"
	sessionfilter "github.com/leadhub-crm/admin-console/internal/http/handlers/session/filterupdate"
	sessionpage "github.com/leadhub-crm/admin-console/internal/http/handlers/session/page"
	sessionremove "github.com/leadhub-crm/admin-console/internal/http/handlers/session/remove"
	sessionselection "github.com/leadhub-crm/admin-console/internal/http/handlers/session/selection"
	sessionstart "github.com/leadhub-crm/admin-console/internal/http/handlers/session/start"
	sessionstate "github.com/leadhub-crm/admin-console/internal/http/handlers/session/state"
	"github.com/leadhub-crm/admin-console/internal/http/middlewarectx"
	leadsservice "github.com/leadhub-crm/admin-console/internal/services/leads"
	profileservice "github.com/leadhub-crm/admin-console/internal/services/profile"
	ratesservice "github.com/leadhub-crm/admin-console/internal/services/rates"
	"github.com/leadhub-crm/admin-console/internal/services/session"
)

// RegisterRoutes регистрирует все маршруты консоли.
func RegisterRoutes(r chi.Router, logger *slog.Logger, leadsService *leadsservice.Service, ratesService *ratesservice.Service, profileService *profileservice.Service, sessions *session.Store, tokenParser middlewarectx.TokenParser) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(tokenParser, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/leads", list.New(logger, leadsService).ServeHTTP)
			r.Get("/leads/stats/dynamics", dynamics.New(logger, leadsService).ServeHTTP)
			r.Get("/leads/stats/commission", commission.New(logger, leadsService).ServeHTTP)
			r.Get("/leads/stats/cities", cities.New(logger, leadsService).ServeHTTP)
			r.Get("/leads/stats/threads", threads.New(logger, leadsService).ServeHTTP)
			r.Get("/leads/stats/summary", summary.New(logger, leadsService).ServeHTTP)
			r.Patch("/leads/pay", pay.New(logger, leadsService, sessions).ServeHTTP)

			r.Post("/session", sessionstart.New(logger, sessions).ServeHTTP)
			r.Get("/session/{id}", sessionstate.New(logger, sessions).ServeHTTP)
			r.Delete("/session/{id}", sessionremove.New(logger, sessions).ServeHTTP)
			r.Patch("/session/{id}/filter", sessionfilter.New(logger, leadsService, sessions).ServeHTTP)
			r.Patch("/session/{id}/selection", sessionselection.New(logger, sessions).ServeHTTP)
			r.Patch("/session/{id}/page", sessionpage.New(logger, sessions).ServeHTTP)

			r.Get("/rates", ratessearch.New(logger, ratesService).ServeHTTP)
			r.Get("/rates/regions", ratesregions.New(logger, ratesService).ServeHTTP)
			r.Post("/rates", ratescreate.New(logger, ratesService).ServeHTTP)
			r.Put("/rates/{id}", ratesupdate.New(logger, ratesService).ServeHTTP)
			r.Delete("/rates/{id}", ratesremove.New(logger, ratesService).ServeHTTP)

			r.Get("/catalogs/offers", catalogoffers.New(logger, leadsService).ServeHTTP)
			r.Get("/catalogs/cities", catalogcities.New(logger, leadsService).ServeHTTP)

			r.Patch("/profile", profileupdate.New(logger, profileService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
