// Package page реализует обработчик пагинации сессии.
package page

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/leadhub-crm/admin-console/internal/http/middlewarectx"
	"github.com/leadhub-crm/admin-console/internal/http/response"
	"github.com/leadhub-crm/admin-console/internal/lib/sl"
	"github.com/leadhub-crm/admin-console/internal/models"
	"github.com/leadhub-crm/admin-console/internal/services/session"
)

type Handler struct {
	log      *slog.Logger
	sessions Sessions
}

type Sessions interface {
	Get(id string) (*session.Console, bool)
}

func New(log *slog.Logger, sessions Sessions) *Handler {
	return &Handler{
		log:      log,
		sessions: sessions,
	}
}

// ServeHTTP меняет страницу или размер страницы таблицы. Смена размера
// возвращает на первую страницу, номер поджимается к доступным пределам.
//
// @Summary Изменение пагинации сессии
// @Tags session
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param input body models.PageUpdate true "Новая страница или размер"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /session/{id}/page [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.page"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, _, ok := middlewarectx.Identity(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	var req models.PageUpdate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			log.Error("request body is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("empty request"))
			return
		}
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return
	}

	if err := validator.New().Struct(req); err != nil {
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			log.Error("invalid request", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}
		log.Error("failed to validate request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request"))
		return
	}

	id := chi.URLParam(r, "id")
	console, ok := h.sessions.Get(id)
	if !ok {
		log.Error("session not found", slog.String("session", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("session not found"))
		return
	}
	if console.UserID() != userID {
		log.Error("session belongs to another user", slog.String("session", id))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden"))
		return
	}

	if req.PageSize != 0 {
		console.SetPageSize(req.PageSize)
	}
	if req.Page != 0 {
		console.SetPage(req.Page)
	}

	render.JSON(w, r, response.StatusOKWithData(console.Snapshot()))
}
