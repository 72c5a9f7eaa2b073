// Package cities реализует обработчик справочника городов для выпадающих
// списков фильтра.
package cities

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
	Cities(ctx context.Context) ([]string, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает справочник городов.
//
// @Summary Справочник городов
// @Tags catalogs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /catalogs/cities [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalogs.cities"

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

	cities, err := h.service.Cities(r.Context())
	if err != nil {
		log.Error("failed to fetch cities", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch cities"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{"items": cities}))
}
