package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeServerError     = "SERVER_ERROR"
)

// APIError is the single error shape every non-2xx response carries.
// Details is always present, empty when no specific parameter is at fault.
type APIError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondValidationError(c *gin.Context, message string, details ...string) {
	if details == nil {
		details = []string{}
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorEnvelope{
		Error: APIError{
			Code:    CodeValidationError,
			Message: message,
			Details: details,
		},
	})
}

func RespondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorEnvelope{
		Error: APIError{
			Code:    CodeNotFound,
			Message: message,
			Details: []string{},
		},
	})
}

func RespondServerError(c *gin.Context, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ErrorEnvelope{
		Error: APIError{
			Code:    CodeServerError,
			Message: msg,
			Details: []string{},
		},
	})
}
