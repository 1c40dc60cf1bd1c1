package signup

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/auth"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const msgSignupError = "Error in signup process"

type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserSaver
type UserSaver interface {
	SaveUser(ctx context.Context, user models.User) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PasswordHasher
type PasswordHasher interface {
	Hash(password string) (string, error)
}

func New(log *slog.Logger, saver UserSaver, hasher PasswordHasher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signup.New"

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
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		hash, err := hasher.Hash(req.Password)
		if errors.Is(err, auth.ErrPasswordTooLong) {
			log.Info("password too long")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("password must be at most 72 bytes"))
			return
		}
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Failure(msgSignupError))
			return
		}

		// The store's unique index on email decides duplicates in one write.
		user, err := saver.SaveUser(r.Context(), models.User{
			Email:        req.Email,
			PasswordHash: hash,
		})
		if errors.Is(err, storage.ErrUserExists) {
			log.Info("user already exists")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("User already exists"))
			return
		}
		if err != nil {
			log.Error("failed to save user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Failure(msgSignupError))
			return
		}

		log.Info("user created", slog.String("id", user.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.OK("User created successfully"))
	}
}
