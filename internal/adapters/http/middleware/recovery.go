package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-todo-core/internal/adapters/http/dto"
)

// errPanic is what clients see for a recovered panic; the value and stack
// only go to the log.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a logged event and, when nothing has
// been written yet, an RFC 9457 500 response. http.ErrAbortHandler is
// re-raised so net/http can abort the connection as intended.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := wrap(w, r)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				)

				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errPanic)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
