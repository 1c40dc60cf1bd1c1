package login

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventRegistry/internal/http-server/handlers/auth/login/mocks"
	"eventRegistry/internal/lib/auth"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	user := &models.User{ID: "user-1", Email: "a@x.com", PasswordHash: "stored-hash"}

	type deps struct {
		users   *mocks.UserGetter
		checker *mocks.PasswordChecker
		issuer  *mocks.TokenIssuer
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(d deps)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"email": "a@x.com", "password": "pw"}`,
			mockSetup: func(d deps) {
				d.users.On("GetUserByEmail", mock.Anything, "a@x.com").Return(user, nil)
				d.checker.On("Compare", "stored-hash", "pw").Return(true, nil)
				d.issuer.On("Generate", "user-1").Return("signed.jwt.token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Login successful","token":"signed.jwt.token"}`,
		},
		{
			name:        "Unknown email",
			requestBody: `{"email": "nobody@x.com", "password": "pw"}`,
			mockSetup: func(d deps) {
				d.users.On("GetUserByEmail", mock.Anything, "nobody@x.com").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"Invalid credentials"}`,
		},
		{
			name:        "Wrong password",
			requestBody: `{"email": "a@x.com", "password": "nope"}`,
			mockSetup: func(d deps) {
				d.users.On("GetUserByEmail", mock.Anything, "a@x.com").Return(user, nil)
				d.checker.On("Compare", "stored-hash", "nope").Return(false, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"Invalid credentials"}`,
		},
		{
			name:           "Missing password",
			requestBody:    `{"email": "a@x.com"}`,
			mockSetup:      func(d deps) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"Invalid credentials"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(d deps) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"failed to decode request"}`,
		},
		{
			name:        "Storage error",
			requestBody: `{"email": "a@x.com", "password": "pw"}`,
			mockSetup: func(d deps) {
				d.users.On("GetUserByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"Server error"}`,
		},
		{
			name:        "Malformed stored hash",
			requestBody: `{"email": "a@x.com", "password": "pw"}`,
			mockSetup: func(d deps) {
				d.users.On("GetUserByEmail", mock.Anything, "a@x.com").Return(user, nil)
				d.checker.On("Compare", "stored-hash", "pw").Return(false, errors.New("crypto/bcrypt: hashedSecret too short"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"Server error"}`,
		},
		{
			name:        "Token error",
			requestBody: `{"email": "a@x.com", "password": "pw"}`,
			mockSetup: func(d deps) {
				d.users.On("GetUserByEmail", mock.Anything, "a@x.com").Return(user, nil)
				d.checker.On("Compare", "stored-hash", "pw").Return(true, nil)
				d.issuer.On("Generate", "user-1").Return("", errors.New("sign failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"Server error"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				users:   mocks.NewUserGetter(t),
				checker: mocks.NewPasswordChecker(t),
				issuer:  mocks.NewTokenIssuer(t),
			}
			tc.mockSetup(d)

			req, err := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, d.users, d.checker, d.issuer).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	t.Parallel()

	hasher := auth.NewHasher(4)
	hash, err := hasher.Hash("pw")
	require.NoError(t, err)

	users := mocks.NewUserGetter(t)
	users.On("GetUserByEmail", mock.Anything, "a@x.com").
		Return(&models.User{ID: "user-42", Email: "a@x.com", PasswordHash: hash}, nil)

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	req, err := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"a@x.com","password":"pw"}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	New(slogdiscard.NewDiscardLogger(), users, hasher, jwtManager).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := jwtManager.Parse(resp.Token)
	require.NoError(t, err)

	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "user-42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}
