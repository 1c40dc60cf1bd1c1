package getAttendeeDetails

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventRegistry/internal/http-server/handlers/attendee/getAttendeeDetails/mocks"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAttendeeDetailsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	attendee := &models.Attendee{
		ID:             "att-1",
		Name:           "Ann",
		MailID:         "ann@x.com",
		Event:          "Tech Fest",
		RegistrationID: "REG-1",
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.AttendeeGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Found",
			requestBody: `{"registrationId": "REG-1"}`,
			mockSetup: func(m *mocks.AttendeeGetter) {
				m.On("GetAttendeeByRegistrationID", mock.Anything, "REG-1").Return(attendee, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.True(t, resp.Success)
				require.NotNil(t, resp.Attendee)
				assert.Equal(t, *attendee, *resp.Attendee)
			},
		},
		{
			name:        "Not found",
			requestBody: `{"registrationId": "REG-404"}`,
			mockSetup: func(m *mocks.AttendeeGetter) {
				m.On("GetAttendeeByRegistrationID", mock.Anything, "REG-404").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"message":"Attendee not found"}`,
		},
		{
			name:        "Wrapped not found",
			requestBody: `{"registrationId": "REG-404"}`,
			mockSetup: func(m *mocks.AttendeeGetter) {
				m.On("GetAttendeeByRegistrationID", mock.Anything, "REG-404").
					Return(nil, fmt.Errorf("storage.mongo: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"message":"Attendee not found"}`,
		},
		{
			name:        "Storage error",
			requestBody: `{"registrationId": "REG-1"}`,
			mockSetup: func(m *mocks.AttendeeGetter) {
				m.On("GetAttendeeByRegistrationID", mock.Anything, "REG-1").Return(nil, errors.New("server selection timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Server error"}`,
		},
		{
			name:           "Missing registrationId",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.AttendeeGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"registrationId is required"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `nope`,
			mockSetup:      func(m *mocks.AttendeeGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"failed to decode request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewAttendeeGetter(t)
			tc.mockSetup(getter)

			req, err := http.NewRequest(http.MethodPost, "/get-attendee-details", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, getter).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
