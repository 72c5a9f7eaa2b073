// Package pay реализует обработчик массовой выплаты комиссии по выбору
// текущей сессии консоли: либо по списку выбранных строк, либо по всем
// лидам фильтра.
package pay

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/leadhub-crm/admin-console/internal/http/middlewarectx"
	"github.com/leadhub-crm/admin-console/internal/http/response"
	"github.com/leadhub-crm/admin-console/internal/leadfilter"
	"github.com/leadhub-crm/admin-console/internal/lib/sl"
	"github.com/leadhub-crm/admin-console/internal/services/session"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	sessions Sessions
}

type Service interface {
	PayByFilter(ctx context.Context, f leadfilter.Filter, role, userID string) error
	PayByIDs(ctx context.Context, ids []string) error
}

type Sessions interface {
	Get(id string) (*session.Console, bool)
}

type Request struct {
	SessionID string `json:"session_id" validate:"required"`
}

func New(log *slog.Logger, service Service, sessions Sessions) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sessions: sessions,
	}
}

// ServeHTTP выполняет массовую выплату по плану текущего выбора сессии.
//
// @Summary Массовая выплата комиссии
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body Request true "Идентификатор сессии консоли"
// @Success 200 {object} response.Response
// @Router /leads/pay [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leads.pay"

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

	var req Request
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

	console, ok := h.sessions.Get(req.SessionID)
	if !ok {
		log.Error("session not found", slog.String("session", req.SessionID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("session not found"))
		return
	}
	if console.UserID() != userID {
		log.Error("session belongs to another user", slog.String("session", req.SessionID))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden"))
		return
	}

	plan, ok := console.PayPlan()
	if !ok {
		log.Error("no leads eligible for payment", slog.String("session", req.SessionID))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("nothing to pay"))
		return
	}

	var err error
	if plan.ByFilter {
		err = h.service.PayByFilter(r.Context(), plan.Filter, console.Role(), console.UserID())
	} else {
		err = h.service.PayByIDs(r.Context(), plan.IDs)
	}
	if err != nil {
		log.Error("failed to pay leads", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to pay leads"))
		return
	}

	log.Info("leads paid",
		slog.String("session", req.SessionID), slog.Bool("by_filter", plan.ByFilter))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"by_filter": plan.ByFilter,
		"ids_count": len(plan.IDs),
	}))
}
