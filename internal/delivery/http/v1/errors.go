package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/services"
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

// abortWithServiceError maps the service failure taxonomy onto HTTP
// status codes so clients can tell a wrong id from bad input.
func abortWithServiceError(c *gin.Context, err error) {
	var nferr services.TaskNotFoundError
	if errors.As(err, &nferr) {
		abort(c, newNotFoundError(nferr.Error()))
		return
	}

	var verr services.ValidationError
	if errors.As(err, &verr) {
		abort(c, newBadRequestError(verr.Message))
		return
	}

	abort(c, newAPIError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)))
}
