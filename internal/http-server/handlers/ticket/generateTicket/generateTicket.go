package generateTicket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const (
	msgGenerated = "Ticket generated successfully"
	msgSaveError = "Error saving ticket data"
)

// Request requires everything but the ticket date. A zero price counts as
// missing.
type Request struct {
	RegistrationID string      `json:"registrationId" validate:"required"`
	Name           string      `json:"name" validate:"required"`
	PhoneNo        string      `json:"phoneNo" validate:"required"`
	EventName      string      `json:"eventName" validate:"required"`
	TicketCategory string      `json:"ticketCategory" validate:"required"`
	TicketPrice    float64     `json:"ticketPrice" validate:"required"`
	TicketDate     models.Date `json:"ticketDate"`
}

type Response struct {
	response.Response
	Ticket *models.Ticket `json:"ticket,omitempty"`
}

type ValidationResponse struct {
	response.Response
	Success bool `json:"success"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketSaver
type TicketSaver interface {
	SaveTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error)
}

func New(log *slog.Logger, saver TicketSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.generateTicket.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ValidationResponse{Response: response.Error("failed to decode request")})
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ValidationResponse{Response: response.ValidationError(validateErr)})
			return
		}

		log = log.With(slog.String("registration_id", req.RegistrationID))

		ticket, err := saver.SaveTicket(r.Context(), models.Ticket{
			RegistrationID: req.RegistrationID,
			Name:           req.Name,
			PhoneNo:        req.PhoneNo,
			EventName:      req.EventName,
			TicketCategory: req.TicketCategory,
			TicketPrice:    req.TicketPrice,
			TicketDate:     req.TicketDate.Ptr(),
		})
		if err != nil {
			log.Error("failed to save ticket", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Failure(msgSaveError))
			return
		}

		log.Info("ticket generated", slog.String("id", ticket.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(msgGenerated),
			Ticket:   ticket,
		})
	}
}
