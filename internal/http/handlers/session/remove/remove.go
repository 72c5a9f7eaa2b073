// Package remove реализует обработчик закрытия сессии консоли.
package remove

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/leadhub-crm/admin-console/internal/http/middlewarectx"
	"github.com/leadhub-crm/admin-console/internal/http/response"
	"github.com/leadhub-crm/admin-console/internal/services/session"
)

type Handler struct {
	log      *slog.Logger
	sessions Sessions
}

type Sessions interface {
	Get(id string) (*session.Console, bool)
	Close(id string)
}

func New(log *slog.Logger, sessions Sessions) *Handler {
	return &Handler{
		log:      log,
		sessions: sessions,
	}
}

// ServeHTTP закрывает сессию консоли. Состояние фильтров при этом
// теряется безвозвратно.
//
// @Summary Закрытие сессии консоли
// @Tags session
// @Security BearerAuth
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /session/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.remove"

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

	h.sessions.Close(id)

	log.Info("session closed", slog.String("session", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]string{"session_id": id}))
}
