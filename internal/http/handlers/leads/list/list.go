// Package list реализует обработчик таблицы лидов.
package list

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
	List(ctx context.Context, f leadfilter.Filter, pag leadfilter.Pagination, role, userID string) (*marketplace.LeadPage, error)
	ResolveOffer(ctx context.Context, raw string) (int, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает страницу таблицы лидов по фильтрам запроса.
//
// @Summary Список лидов
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /leads [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leads.list"

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
	pag := filterquery.ParsePagination(r.URL.Query())

	page, err := h.service.List(r.Context(), f, pag, role, userID)
	if err != nil {
		log.Error("failed to list leads", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list leads"))
		return
	}

	pag.SetTotal(page.Pagination.Total)

	log.Info("leads listed", slog.Int("count", len(page.Items)), slog.Int("total", page.Pagination.Total))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"items": page.Items,
		"pagination": map[string]int{
			"page":      pag.Page,
			"page_size": pag.PageSize,
			"total":     pag.Total,
			"pages":     pag.Pages(),
		},
	}))
}
