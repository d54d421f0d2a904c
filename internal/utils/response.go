package utils

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// HTTPStatusFromError maps service errors onto response statuses.
func HTTPStatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrMemberNotFound), errors.Is(err, ErrChartNotFound), errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func HTTPCodeConverter(status int, errs ...error) string {
	if len(errs) > 0 && errs[0] != nil {
		err := errs[0]
		switch {
		case errors.Is(err, ErrNoData):
			return "NO_DATA"
		case errors.Is(err, ErrReportGeneration):
			return "REPORT_FAILED"
		case errors.Is(err, ErrUpstream):
			return "UPSTREAM"
		}
	}
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnprocessableEntity:
		return "UNPROCESSABLE"
	case http.StatusBadGateway:
		return "UPSTREAM"
	default:
		return "INTERNAL"
	}
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := ErrorResponse{Error: ErrorDetails{Code: code, Message: message}}
	return json.NewEncoder(w).Encode(resp)
}

// WriteServiceError writes err using the status and code derived from it.
// Internal failures are reported with a generic message.
func WriteServiceError(w http.ResponseWriter, err error) error {
	status := HTTPStatusFromError(err)
	msg := err.Error()
	switch {
	case errors.Is(err, ErrReportGeneration):
		msg = ErrReportGeneration.Error()
	case errors.Is(err, ErrUpstream):
		msg = "failed to fetch pull requests"
	case status == http.StatusInternalServerError:
		msg = ErrInternal.Error()
	}
	return WriteError(w, status, HTTPCodeConverter(status, err), msg)
}
