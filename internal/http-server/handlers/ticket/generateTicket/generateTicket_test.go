package generateTicket

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventRegistry/internal/http-server/handlers/ticket/generateTicket/mocks"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func baseTicket() models.Ticket {
	return models.Ticket{
		RegistrationID: "REG-1",
		Name:           "Ann",
		PhoneNo:        "555",
		EventName:      "Tech Fest",
		TicketCategory: "VIP",
		TicketPrice:    499,
	}
}

func TestGenerateTicketHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	ticketDate := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.TicketSaver)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"registrationId": "REG-1",
				"name": "Ann",
				"phoneNo": "555",
				"eventName": "Tech Fest",
				"ticketCategory": "VIP",
				"ticketPrice": 499,
				"ticketDate": "2024-12-25"
			}`,
			mockSetup: func(m *mocks.TicketSaver) {
				in := baseTicket()
				in.TicketDate = &ticketDate
				out := in
				out.ID = "tkt-1"
				m.On("SaveTicket", mock.Anything, in).Return(&out, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, "Ticket generated successfully", resp.Message)
				require.NotNil(t, resp.Ticket)
				assert.Equal(t, "tkt-1", resp.Ticket.ID)
				assert.InDelta(t, 499.0, resp.Ticket.TicketPrice, 0.001)
				require.NotNil(t, resp.Ticket.TicketDate)
				assert.True(t, ticketDate.Equal(*resp.Ticket.TicketDate))
			},
		},
		{
			name: "Ticket date is optional",
			requestBody: `{
				"registrationId": "REG-1",
				"name": "Ann",
				"phoneNo": "555",
				"eventName": "Tech Fest",
				"ticketCategory": "VIP",
				"ticketPrice": 499
			}`,
			mockSetup: func(m *mocks.TicketSaver) {
				out := baseTicket()
				out.ID = "tkt-2"
				m.On("SaveTicket", mock.Anything, baseTicket()).Return(&out, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.NotContains(t, body, "ticketDate")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{"ticketPrice": "free"}`,
			mockSetup:      func(m *mocks.TicketSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","success":false,"message":"failed to decode request"}`,
		},
		{
			name: "Storage error",
			requestBody: `{
				"registrationId": "REG-1",
				"name": "Ann",
				"phoneNo": "555",
				"eventName": "Tech Fest",
				"ticketCategory": "VIP",
				"ticketPrice": 499
			}`,
			mockSetup: func(m *mocks.TicketSaver) {
				m.On("SaveTicket", mock.Anything, baseTicket()).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Error saving ticket data"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			saver := mocks.NewTicketSaver(t)
			tc.mockSetup(saver)

			req, err := http.NewRequest(http.MethodPost, "/generate-ticket", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, saver).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

// Every required field, when dropped, yields 400 and no write. The mock has
// no expectations, so any SaveTicket call fails the test.
func TestMissingRequiredFields(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	full := map[string]any{
		"registrationId": "REG-1",
		"name":           "Ann",
		"phoneNo":        "555",
		"eventName":      "Tech Fest",
		"ticketCategory": "VIP",
		"ticketPrice":    499,
	}

	fieldNames := map[string]string{
		"registrationId": "RegistrationID",
		"name":           "Name",
		"phoneNo":        "PhoneNo",
		"eventName":      "EventName",
		"ticketCategory": "TicketCategory",
		"ticketPrice":    "TicketPrice",
	}

	for jsonKey, field := range fieldNames {
		jsonKey, field := jsonKey, field
		t.Run(jsonKey, func(t *testing.T) {
			t.Parallel()

			body := make(map[string]any, len(full))
			for k, v := range full {
				if k != jsonKey {
					body[k] = v
				}
			}

			b, err := json.Marshal(body)
			require.NoError(t, err)

			saver := mocks.NewTicketSaver(t)

			req, err := http.NewRequest(http.MethodPost, "/generate-ticket", bytes.NewBuffer(b))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, saver).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp ValidationResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			assert.False(t, resp.Success)
			assert.Equal(t, "Error", resp.Status)
			assert.Equal(t, "Missing required fields", resp.Message)
			assert.Equal(t, "field "+field+" is a required field", resp.Error)

			saver.AssertNotCalled(t, "SaveTicket", mock.Anything, mock.Anything)
		})
	}
}

func TestZeroPriceCountsAsMissing(t *testing.T) {
	t.Parallel()

	saver := mocks.NewTicketSaver(t)

	body := `{"registrationId":"REG-1","name":"Ann","phoneNo":"555","eventName":"Tech Fest","ticketCategory":"VIP","ticketPrice":0}`
	req, err := http.NewRequest(http.MethodPost, "/generate-ticket", bytes.NewBufferString(body))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	New(slogdiscard.NewDiscardLogger(), saver).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "TicketPrice")
}
