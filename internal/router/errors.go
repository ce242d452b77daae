package router

import (
	stderrors "errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"studyhub/internal/errors"
)

// newHTTPErrorHandler renders every error as an ErrorResponse. Errors that are
// not echo.HTTPErrors are logged and reported as a generic 500.
func newHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		body := errors.ErrorResponse{Message: "internal server error", Code: "INTERNAL_ERROR"}

		var he *echo.HTTPError
		if stderrors.As(err, &he) {
			if inner, ok := he.Internal.(*echo.HTTPError); ok {
				he = inner
			}
			code = he.Code
			switch msg := he.Message.(type) {
			case errors.ErrorResponse:
				body = msg
			case string:
				body = errors.ErrorResponse{Message: msg, Code: codeFor(code)}
			default:
				body = errors.ErrorResponse{Message: fmt.Sprint(msg), Code: codeFor(code)}
			}
		}

		if code >= http.StatusInternalServerError {
			log.Printf("request %s %s failed (id=%s): %v",
				c.Request().Method, c.Request().URL.Path,
				c.Response().Header().Get(echo.HeaderXRequestID), err)
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(code)
		} else {
			sendErr = c.JSON(code, body)
		}
		if sendErr != nil {
			c.Echo().Logger.Error(sendErr)
		}
	}
}

func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		return "INTERNAL_ERROR"
	}
}
