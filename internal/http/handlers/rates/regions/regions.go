// Package regions реализует обработчик справочника регионов для формы
// ставки комиссии.
package regions

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/leadhub-crm/admin-console/internal/http/middlewarectx"
	"github.com/leadhub-crm/admin-console/internal/http/response"
	"github.com/leadhub-crm/admin-console/internal/lib/sl"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Regions(ctx context.Context) ([]string, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает список регионов.
//
// @Summary Справочник регионов
// @Tags rates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /rates/regions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rates.regions"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if _, _, ok := middlewarectx.Identity(r.Context()); !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	regions, err := h.service.Regions(r.Context())
	if err != nil {
		log.Error("failed to fetch regions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch regions"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{"items": regions}))
}
