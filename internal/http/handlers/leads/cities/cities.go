// Package cities реализует обработчик распределения лидов по городам.
package cities

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/leadhub-crm/admin-console/internal/http/filterquery"
	"github.com/leadhub-crm/admin-console/internal/http/middlewarectx"
	"github.com/leadhub-crm/admin-console/internal/http/response"
	"github.com/leadhub-crm/admin-console/internal/leadfilter"
	"github.com/leadhub-crm/admin-console/internal/lib/sl"
	"github.com/leadhub-crm/admin-console/internal/marketplace"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	CityDistribution(ctx context.Context, f leadfilter.Filter, role, userID string) ([]marketplace.CityCount, error)
	ResolveOffer(ctx context.Context, raw string) (int, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает распределение лидов выборки по городам.
//
// @Summary Распределение по городам
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /leads/stats/cities [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leads.cities"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, role, ok := middlewarectx.Identity(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	f, rawOffer, err := filterquery.Parse(r.URL.Query())
	if err != nil {
		log.Error("failed to parse filter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid filter parameters"))
		return
	}
	if rawOffer != "" {
		offerID, err := h.service.ResolveOffer(r.Context(), rawOffer)
		if err != nil {
			log.Error("failed to resolve offer", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown offer"))
			return
		}
		f.OfferID = offerID
	}

	rows, err := h.service.CityDistribution(r.Context(), f, role, userID)
	if err != nil {
		log.Error("failed to fetch city distribution", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch city distribution"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"rows": rows,
	}))
}
