package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/martinmanurung/cinecatalog/pkg/constant"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Status    string      `json:"status"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Errors    interface{} `json:"errors,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func Success(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, SuccessResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

func Error(c echo.Context, code int, message string, errDetails interface{}) error {
	requestID, _ := c.Get(string(constant.CtxKeyRequestID)).(string)
	return c.JSON(code, ErrorResponse{
		Status:    "error",
		Code:      code,
		Message:   message,
		Errors:    errDetails,
		RequestID: requestID,
	})
}

// APIError carries an HTTP status and a machine readable message through
// the usecase layer
type APIError struct {
	Code    int
	Message string
	Details interface{}
}

func (e *APIError) Error() string {
	return e.Message
}

func NewError(code int, message string, details interface{}) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// FromError writes err as an error response, honouring *APIError
func FromError(c echo.Context, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		details := apiErr.Details
		if e, ok := details.(error); ok {
			details = e.Error()
		}
		return Error(c, apiErr.Code, apiErr.Message, details)
	}
	return Error(c, http.StatusInternalServerError, "internal_server_error", err.Error())
}

func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		_ = FromError(c, apiErr)
		return
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		var msg string
		if s, ok := echoErr.Message.(string); ok {
			msg = s
		} else {
			msg = http.StatusText(echoErr.Code)
		}
		_ = Error(c, echoErr.Code, msg, nil)
		return
	}

	logger, ok := c.Get(string(constant.CtxKeyLogger)).(*zerolog.Logger)
	if !ok {
		logger = &log.Logger
	}
	logger.Error().Err(err).Msg("Unhandled error")
	_ = Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
}

func InternalServerError(err error) error {
	return &APIError{
		Code:    http.StatusInternalServerError,
		Message: "internal_server_error",
		Details: err,
	}
}
