package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

const MsgMissingFields = "Missing required fields"

func OK(msg string) Response {
	return Response{
		Status:  StatusOK,
		Message: msg,
	}
}

// Error is a client-facing failure carrying a human readable message.
func Error(msg string) Response {
	return Response{
		Status:  StatusError,
		Message: msg,
	}
}

// Failure reports a failed write under the "error" key.
func Failure(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Response{
		Status:  StatusError,
		Message: MsgMissingFields,
		Error:   strings.Join(errMsgs, ", "),
	}
}
