package createEvent

import (
	"context"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	msgCreated     = "Event created successfully!"
	msgCreateError = "Error creating event"
	msgBadRequest  = "failed to decode request"
)

type Request struct {
	EventName   string      `json:"eventName"`
	Venue       string      `json:"venue"`
	EventDate   models.Date `json:"eventDate"`
	StartTime   string      `json:"startTime"`
	EndTime     string      `json:"endTime"`
	ChiefGuest  string      `json:"chiefGuest"`
	ConductedBy string      `json:"conductedBy"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSaver
type EventSaver interface {
	SaveEvent(ctx context.Context, event models.Event) (*models.Event, error)
}

func New(log *slog.Logger, saver EventSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.PlainText(w, r, msgBadRequest)

			return
		}

		log.Debug("request body decoded", slog.Any("request", req))

		event, err := saver.SaveEvent(r.Context(), models.Event{
			EventName:   req.EventName,
			Venue:       req.Venue,
			EventDate:   req.EventDate.Ptr(),
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			ChiefGuest:  req.ChiefGuest,
			ConductedBy: req.ConductedBy,
		})
		if err != nil {
			log.Error("failed to save event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, msgCreateError)

			return
		}

		log.Info("event created", slog.String("id", event.ID))

		render.Status(r, http.StatusCreated)
		render.PlainText(w, r, msgCreated)
	}
}
