package middleware

import (
	"fmt"
	"net/http"

	"atrium/config"
	"atrium/infras/otel"
	"atrium/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	RequestID(next http.Handler) http.Handler
	Tracing(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
	}
}

// RequestID attaches a request identifier to every response, generating one
// when the client did not send its own.
func (a *appMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestID := request.Header.Get(constant.RequestHeaderRequestID)
		if requestID == constant.Empty {
			requestID = uuid.NewString()
		}

		writer.Header().Set(constant.RequestHeaderRequestID, requestID)

		next.ServeHTTP(writer, request)
	})
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(recorder, request.WithContext(ctx))

		routePattern := chi.RouteContext(request.Context()).RoutePattern()

		scope.SetAttributes(map[string]any{
			"app.name":         a.config.App.Name,
			"http.path":        request.URL.Path,
			"http.route":       routePattern,
			"http.method":      request.Method,
			"http.user_agent":  request.UserAgent(),
			"http.host":        request.Host,
			"http.source":      request.RemoteAddr,
			"http.status_code": recorder.status,
		})
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
