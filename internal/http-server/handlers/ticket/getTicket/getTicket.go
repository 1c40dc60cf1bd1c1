package getTicket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketGetter
type TicketGetter interface {
	GetTicketByRegistrationID(ctx context.Context, registrationID string) (*models.Ticket, error)
}

func New(log *slog.Logger, getter TicketGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getTicket.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		registrationID := chi.URLParam(r, "registrationId")
		if registrationID == "" {
			log.Info("registration id is empty")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid request"))
			return
		}

		log = log.With(slog.String("registration_id", registrationID))

		ticket, err := getter.GetTicketByRegistrationID(r.Context(), registrationID)
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("ticket not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Ticket not found"))
			return
		}
		if err != nil {
			log.Error("failed to get ticket", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Server error"))
			return
		}

		log.Info("ticket retrieved", slog.String("id", ticket.ID))

		render.JSON(w, r, ticket)
	}
}
