package middleware

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-todo-core/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler runs with a context carrying
// the deadline and writes into a buffer; if it finishes first the buffer is
// replayed, otherwise the client gets an RFC 9457 504 and any later handler
// writes fail with http.ErrHandlerTimeout. A panic in the handler is
// re-raised on the serving goroutine so Recovery still sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			header := w.Header().Clone()
			if header == nil {
				header = make(http.Header)
			}
			bw := &bufferedWriter{header: header}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r)
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				bw.replay(w)
			case <-ctx.Done():
				bw.expire()
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", d, ctx.Err()))
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether to
// send it.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 && !bw.expired {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(p []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(p)
}

func (bw *bufferedWriter) expire() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.expired = true
}

func (bw *bufferedWriter) replay(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	dst := w.Header()
	for k, v := range bw.header {
		dst[k] = v
	}
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	_, _ = w.Write(bw.body.Bytes())
}
