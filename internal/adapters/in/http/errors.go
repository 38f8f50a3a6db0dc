package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"zonedelivery/internal/core/application/usecases/queries"
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/generated/servers"
	"zonedelivery/internal/pkg/errs"
)

const internalErrorMessage = "Internal server error"

// StatusOf maps an application error onto an HTTP status code.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	status := StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = internalErrorMessage
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

func (s *Server) respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func (s *Server) respondZone(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetZoneQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	z, err := s.handlers.GetZone.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(status, toZone(z))
}

// ErrorHandler renders errors that escape the handlers (routing, parameter
// binding, request validation, rate limiting) with the API error body.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := internalErrorMessage

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else if errs.KindOf(err) != errs.KindInternal {
			status = StatusOf(err)
			message = err.Error()
		} else {
			e.Logger.Error(err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, servers.Error{Code: status, Message: message})
		}
		if writeErr != nil {
			e.Logger.Error(writeErr)
		}
	}
}
