package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/auth"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	msgRegistered = "Attendee registered successfully"
	msgSaveError  = "Error saving attendee data"

	msgPasswordTooLong = "password must be at most 72 bytes"
)

// Request is the fixed attendee field set. Anything else in the body is
// dropped and missing fields stay empty.
type Request struct {
	Name             string `json:"name"`
	MailID           string `json:"mailId"`
	Password         string `json:"password"`
	PhoneNo          string `json:"phoneNo"`
	AddressLine1     string `json:"addressLine1"`
	AddressLine2     string `json:"addressLine2"`
	City             string `json:"city"`
	Pincode          string `json:"pincode"`
	State            string `json:"state"`
	Country          string `json:"country"`
	Event            string `json:"event"`
	RegistrationID   string `json:"registrationId"`
	RegistrationDate string `json:"registrationDate"`
}

type Response struct {
	response.Response
	Attendee *models.Attendee `json:"attendee,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeSaver
type AttendeeSaver interface {
	SaveAttendee(ctx context.Context, attendee models.Attendee) (*models.Attendee, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PasswordHasher
type PasswordHasher interface {
	Hash(password string) (string, error)
}

func New(log *slog.Logger, saver AttendeeSaver, hasher PasswordHasher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.register.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log = log.With(slog.String("registration_id", req.RegistrationID))

		var passwordHash string
		if req.Password != "" {
			passwordHash, err = hasher.Hash(req.Password)
			if errors.Is(err, auth.ErrPasswordTooLong) {
				log.Info("attendee password too long")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(msgPasswordTooLong))
				return
			}
			if err != nil {
				log.Error("failed to hash attendee password", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Failure(msgSaveError))
				return
			}
		}

		attendee, err := saver.SaveAttendee(r.Context(), models.Attendee{
			Name:             req.Name,
			MailID:           req.MailID,
			PasswordHash:     passwordHash,
			PhoneNo:          req.PhoneNo,
			AddressLine1:     req.AddressLine1,
			AddressLine2:     req.AddressLine2,
			City:             req.City,
			Pincode:          req.Pincode,
			State:            req.State,
			Country:          req.Country,
			Event:            req.Event,
			RegistrationID:   req.RegistrationID,
			RegistrationDate: req.RegistrationDate,
		})
		if err != nil {
			log.Error("failed to save attendee", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Failure(msgSaveError))
			return
		}

		log.Info("attendee registered", slog.String("id", attendee.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(msgRegistered),
			Attendee: attendee,
		})
	}
}
