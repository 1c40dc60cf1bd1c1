package getRegDetails

import (
	"context"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeesGetter
type AttendeesGetter interface {
	GetAllAttendees(ctx context.Context) ([]models.Attendee, error)
}

func New(log *slog.Logger, getter AttendeesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.getRegDetails.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		attendees, err := getter.GetAllAttendees(r.Context())
		if err != nil {
			log.Error("failed to get attendees", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Error fetching registration details"))
			return
		}

		if attendees == nil {
			attendees = []models.Attendee{}
		}

		log.Info("registrations retrieved", slog.Int("count", len(attendees)))

		render.JSON(w, r, attendees)
	}
}
