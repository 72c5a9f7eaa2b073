// Package summary реализует обработчик сводки по фильтру — суммы и
// количества комиссии по всем лидам выборки, независимо от пагинации.
package summary

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
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	FilterSummary(ctx context.Context, f leadfilter.Filter, role, userID string) (*leadfilter.FilterSummary, error)
	ResolveOffer(ctx context.Context, raw string) (int, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает серверную сводку по всем лидам выборки.
//
// @Summary Сводка по фильтру
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /leads/stats/summary [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leads.summary"

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

	result, err := h.service.FilterSummary(r.Context(), f, role, userID)
	if err != nil {
		log.Error("failed to fetch filter summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch filter summary"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(result))
}
