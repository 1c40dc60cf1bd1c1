package getAttendeeDetails

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	RegistrationID string `json:"registrationId" validate:"required"`
}

// Response uses a success flag instead of the status envelope; clients
// branch on it directly.
type Response struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Attendee *models.Attendee `json:"attendee,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeGetter
type AttendeeGetter interface {
	GetAttendeeByRegistrationID(ctx context.Context, registrationID string) (*models.Attendee, error)
}

func New(log *slog.Logger, getter AttendeeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.getAttendeeDetails.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			responseError(w, r, http.StatusBadRequest, "failed to decode request")
			return
		}

		if err = validator.New().Struct(req); err != nil {
			log.Error("invalid request", sl.Err(err))
			responseError(w, r, http.StatusBadRequest, "registrationId is required")
			return
		}

		log = log.With(slog.String("registration_id", req.RegistrationID))

		attendee, err := getter.GetAttendeeByRegistrationID(r.Context(), req.RegistrationID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("attendee not found")
				responseError(w, r, http.StatusNotFound, "Attendee not found")
				return
			}

			log.Error("error fetching attendee details", sl.Err(err))
			responseError(w, r, http.StatusInternalServerError, "Server error")
			return
		}

		log.Info("attendee details retrieved")

		render.JSON(w, r, Response{
			Success:  true,
			Attendee: attendee,
		})
	}
}

func responseError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, Response{
		Success: false,
		Message: msg,
	})
}
