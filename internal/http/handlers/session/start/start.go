// Package start реализует обработчик открытия сессии консоли.
package start

import (
	"log/slog"
	"net/http"

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
	Open(userID, role string) *session.Console
}

func New(log *slog.Logger, sessions Sessions) *Handler {
	return &Handler{
		log:      log,
		sessions: sessions,
	}
}

// ServeHTTP открывает новую сессию консоли для пользователя и возвращает
// её идентификатор вместе со стартовым состоянием.
//
// @Summary Открытие сессии консоли
// @Tags session
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /session [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.start"

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

	console := h.sessions.Open(userID, role)

	log.Info("session opened", slog.String("session", console.ID()))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"session_id": console.ID(),
		"state":      console.Snapshot(),
	}))
}
