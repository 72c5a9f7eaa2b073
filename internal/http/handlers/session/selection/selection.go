// Package selection реализует обработчик изменения выбора строк сессии:
// переключение режима «все по фильтру» и отметку отдельных строк.
package selection

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/leadhub-crm/admin-console/internal/http/middlewarectx"
	"github.com/leadhub-crm/admin-console/internal/http/response"
	"github.com/leadhub-crm/admin-console/internal/leadfilter"
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

// ServeHTTP изменяет выбор строк сессии. Запрос несёт либо select_all,
// либо row_id со снимком строки для подсчёта сумм на стороне консоли.
//
// @Summary Изменение выбора строк
// @Tags session
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param input body models.SelectionUpdate true "Изменение выбора"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /session/{id}/selection [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.selection"

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

	var req models.SelectionUpdate
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
	if req.SelectAll == nil && req.RowID == "" {
		log.Error("selection update carries neither select_all nor row_id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("select_all or row_id is required"))
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

	if req.SelectAll != nil {
		console.SetSelectAll(*req.SelectAll)
	} else {
		console.ToggleRow(req.RowID, leadfilter.RowSnapshot{
			Commission: req.Commission,
			Realized:   req.Realized,
			Paid:       req.Paid,
			Burned:     req.Burned,
		})
	}

	render.JSON(w, r, response.StatusOKWithData(console.Snapshot()))
}
