package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/jikgwan/companion-api/lifecycle"
	"github.com/jikgwan/companion-api/policy"
	"github.com/jikgwan/companion-api/store"
	"github.com/jikgwan/companion-api/utils"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "the phone number has been registered",
		1101: "account not found",
		1102: "invalid phone number",
		1103: "invalid phone number or password",
		1104: "unknown role",
		1105: "the password is too short",

		1200: store.ErrNotFound.Error(),
		1201: policy.ErrForbidden.Error(),
		1202: policy.ErrUnauthorized.Error(),
		1203: lifecycle.ErrInvalidStateTransition.Error(),
		1204: store.ErrConflict.Error(),
		1205: lifecycle.ErrValidation.Error(),
		1206: lifecycle.ErrGameNotScheduled.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorPhoneTaken         = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorInvalidPhone       = errorJSON(1102)
	errorInvalidCredentials = errorJSON(1103)
	errorInvalidRole        = errorJSON(1104)
	errorPasswordTooShort   = errorJSON(1105)

	errorNotFound          = errorJSON(1200)
	errorForbidden         = errorJSON(1201)
	errorUnauthorized      = errorJSON(1202)
	errorInvalidTransition = errorJSON(1203)
	errorConflict          = errorJSON(1204)
	errorValidation        = errorJSON(1205)
	errorGameNotScheduled  = errorJSON(1206)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// localized translates the message of an error object by Accept-Language
func localized(c *gin.Context, obj ErrorResponse) ErrorResponse {
	obj.Message = utils.Localize(c.GetHeader("Accept-Language"), fmt.Sprintf("error_%d", obj.Code), obj.Message)
	return obj
}

// abortWithError maps a domain error to its status code and error object
func abortWithError(c *gin.Context, err error) {
	var (
		status int
		obj    ErrorResponse
	)

	switch {
	case errors.Is(err, lifecycle.ErrValidation):
		status, obj = http.StatusBadRequest, errorValidation
	case errors.Is(err, policy.ErrForbidden):
		status, obj = http.StatusForbidden, errorForbidden
	case errors.Is(err, policy.ErrUnauthorized):
		status, obj = http.StatusForbidden, errorUnauthorized
	case errors.Is(err, lifecycle.ErrGameNotScheduled):
		status, obj = http.StatusNotFound, errorGameNotScheduled
	case errors.Is(err, store.ErrNotFound):
		status, obj = http.StatusNotFound, errorNotFound
	case errors.Is(err, store.ErrConflict):
		status, obj = http.StatusConflict, errorConflict
	case errors.Is(err, lifecycle.ErrInvalidStateTransition):
		status, obj = http.StatusConflict, errorInvalidTransition
	default:
		log.WithError(err).Error("unexpected error")
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	obj.Detail = err.Error()
	abortWithEncoding(c, status, obj, err)
}
