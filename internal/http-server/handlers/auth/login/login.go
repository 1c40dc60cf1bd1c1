package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgServerError        = "Server error"
)

type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	response.Response
	Token string `json:"token,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserGetter
type UserGetter interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PasswordChecker
type PasswordChecker interface {
	Compare(hash, password string) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenIssuer
type TokenIssuer interface {
	Generate(userID string) (string, error)
}

// New answers unknown emails and wrong passwords with the same body so the
// response does not reveal which accounts exist.
func New(log *slog.Logger, users UserGetter, checker PasswordChecker, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

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

		if err = validator.New().Struct(req); err != nil {
			log.Info("invalid request", sl.Err(err))
			invalidCredentials(w, r)
			return
		}

		user, err := users.GetUserByEmail(r.Context(), req.Email)
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("unknown email")
			invalidCredentials(w, r)
			return
		}
		if err != nil {
			log.Error("failed to get user", sl.Err(err))
			serverError(w, r)
			return
		}

		log = log.With(slog.String("user_id", user.ID))

		ok, err := checker.Compare(user.PasswordHash, req.Password)
		if err != nil {
			log.Error("failed to compare password", sl.Err(err))
			serverError(w, r)
			return
		}
		if !ok {
			log.Info("wrong password")
			invalidCredentials(w, r)
			return
		}

		token, err := issuer.Generate(user.ID)
		if err != nil {
			log.Error("failed to generate token", sl.Err(err))
			serverError(w, r)
			return
		}

		log.Info("user logged in")

		render.JSON(w, r, Response{
			Response: response.OK("Login successful"),
			Token:    token,
		})
	}
}

func invalidCredentials(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, response.Error(msgInvalidCredentials))
}

func serverError(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.Error(msgServerError))
}
