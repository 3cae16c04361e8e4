package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"advocate_site/web/pages"
)

// ErrorHandler renders errors as a page for browsers, JSON for the API and
// plain text for HTMX fragments.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		errorTitle := "Internal Server Error"
		errorMessage := ""

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok && msg != "" {
				errorMessage = msg
			}

			switch code {
			case http.StatusNotFound:
				errorTitle = "Page Not Found"
				if errorMessage == "" || errorMessage == http.StatusText(http.StatusNotFound) {
					errorMessage = "The page you're looking for doesn't exist."
				}
			case http.StatusMethodNotAllowed:
				errorTitle = "Method Not Allowed"
				if errorMessage == "" {
					errorMessage = "This address does not accept that kind of request."
				}
			case http.StatusBadRequest:
				errorTitle = "Bad Request"
				if errorMessage == "" {
					errorMessage = "The request could not be processed."
				}
			default:
				if errorMessage == "" {
					errorMessage = "Something went wrong. Please try again later."
				}
			}
		} else {
			errorMessage = "Something went wrong. Please try again later."
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request error", zap.String("path", c.Request().URL.Path), zap.Error(err))
		} else {
			logger.Debug("request rejected", zap.Int("status", code), zap.String("path", c.Request().URL.Path), zap.Error(err))
		}

		path := c.Request().URL.Path
		switch {
		case c.Request().Method == http.MethodHead:
			_ = c.NoContent(code)
			return
		case strings.HasPrefix(path, "/api/"):
			_ = c.JSON(code, map[string]string{"error": errorMessage})
			return
		case strings.HasPrefix(path, "/partials/"), strings.HasPrefix(path, "/static/"):
			_ = c.String(code, errorMessage)
			return
		}

		props := pages.ErrorPageProps{
			Title:        errorTitle,
			Code:         code,
			ErrorTitle:   errorTitle,
			ErrorMessage: errorMessage,
			BackLink:     "/",
			BackText:     "Back to home",
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(code)
		if renderErr := pages.ErrorPage(props).Render(c.Request().Context(), c.Response()); renderErr != nil {
			// headers are already out; append the plain message
			logger.Error("failed to render error page", zap.Error(renderErr))
			_, _ = c.Response().Write([]byte(errorMessage))
		}
	}
}
