// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error responses so
// handlers can fail in one line.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogBadRequest logs a client error and redirects back with a 303. Bad form
// posts are user mistakes, not failures worth an error page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, what string, err error, backURL string) {
	e.log.Warn(what,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	if backURL == "" {
		backURL = "/"
	}
	http.Redirect(w, r, backURL, http.StatusSeeOther)
}

// LogServerError logs a server-side failure and renders the error page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, what string, err error, userMsg, backURL string) {
	e.log.Error(what,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	RenderServerError(w, r, userMsg, backURL)
}
