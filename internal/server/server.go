package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/discussion"
	"github.com/osse101/InventoryHub_Go/internal/field"
	"github.com/osse101/InventoryHub_Go/internal/handler"
	"github.com/osse101/InventoryHub_Go/internal/inventory"
	"github.com/osse101/InventoryHub_Go/internal/item"
	"github.com/osse101/InventoryHub_Go/internal/like"
	"github.com/osse101/InventoryHub_Go/internal/logger"
	"github.com/osse101/InventoryHub_Go/internal/metrics"
	"github.com/osse101/InventoryHub_Go/internal/middleware"
	"github.com/osse101/InventoryHub_Go/internal/sse"
	"github.com/osse101/InventoryHub_Go/internal/user"
)

// Options are the listener and request-filtering settings
type Options struct {
	Port           int
	TrustedProxies []string
	// AllowedOrigins are host patterns accepted on websocket upgrades
	AllowedOrigins []string
}

// Dependencies are the services and live components the router serves
type Dependencies struct {
	Users       user.Service
	Inventories inventory.Service
	Items       item.Service
	Fields      field.Service
	Likes       like.Service
	Posts       discussion.Service

	Tokens    auth.Verifier
	Connector *discussion.Connector
	Registry  *discussion.Registry

	// Readiness maps dependency names to their health probes
	Readiness map[string]handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the HTTP routes
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	authn := middleware.NewAuthenticator(deps.Tokens, func(r *http.Request) {
		detector.RecordFailedAuth(extractIP(r, opts.TrustedProxies))
	})

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Readiness))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	// Live discussion feeds authenticate through the connector, not the bearer middleware
	r.Get("/ws/api/posts", discussion.WebSocketHandler(deps.Connector, deps.Registry, opts.AllowedOrigins))

	authHandler := handler.NewAuthHandler(deps.Users)
	inventoryHandler := handler.NewInventoryHandler(deps.Inventories)
	fieldHandler := handler.NewFieldHandler(deps.Fields)
	itemHandler := handler.NewItemHandler(deps.Items)
	likeHandler := handler.NewLikeHandler(deps.Likes)
	postHandler := handler.NewPostHandler(deps.Posts)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Get("/inventories/{id}/posts/stream", sse.Handler(deps.Connector, deps.Registry))

		// Anonymous callers are served what public inventories allow
		r.Group(func(r chi.Router) {
			r.Use(authn.Optional)

			r.Get("/categories", inventoryHandler.HandleCategories)
			r.Get("/tags", inventoryHandler.HandleTags)
			r.Get("/inventories/public", inventoryHandler.HandleListPublic)

			r.Get("/inventories/{id}", inventoryHandler.HandleGet)
			r.Get("/inventories/{id}/access", inventoryHandler.HandleAccess)
			r.Get("/inventories/{id}/fields", fieldHandler.HandleList)
			r.Get("/inventories/{id}/items", itemHandler.HandleList)
			r.Get("/inventories/{id}/posts", postHandler.HandleList)

			r.Get("/items/{id}", itemHandler.HandleGet)
			r.Get("/items/{id}/likes", likeHandler.HandleInfo)
		})

		r.Group(func(r chi.Router) {
			r.Use(authn.Required)

			r.Post("/auth/logout", authHandler.HandleLogout)
			r.Get("/auth/me", authHandler.HandleMe)
			r.Get("/users/search", authHandler.HandleSearchUsers)

			r.Get("/me/inventories", inventoryHandler.HandleListOwned)
			r.Get("/me/accessible-inventories", inventoryHandler.HandleListShared)

			r.Post("/inventories", inventoryHandler.HandleCreate)
			r.Put("/inventories/{id}", inventoryHandler.HandleUpdate)
			r.Delete("/inventories/{id}", inventoryHandler.HandleDelete)
			r.Patch("/inventories/{id}/visibility", inventoryHandler.HandleSetVisibility)

			r.Get("/inventories/{id}/grants", inventoryHandler.HandleListGrants)
			r.Post("/inventories/{id}/grants", inventoryHandler.HandleGrant)
			r.Delete("/inventories/{id}/grants/{userId}", inventoryHandler.HandleRevoke)

			r.Post("/inventories/{id}/fields", fieldHandler.HandleCreate)
			r.Post("/inventories/{id}/items", itemHandler.HandleCreate)
			r.Post("/inventories/{id}/posts", postHandler.HandleCreate)

			r.Put("/fields/{fieldId}", fieldHandler.HandleUpdate)
			r.Delete("/fields/{fieldId}", fieldHandler.HandleDelete)

			r.Put("/items/{id}", itemHandler.HandleUpdate)
			r.Delete("/items/{id}", itemHandler.HandleDelete)
			r.Post("/items/{id}/likes", likeHandler.HandleLike)
			r.Delete("/items/{id}/likes", likeHandler.HandleUnlike)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		rw.written = true
		f.Flush()
	}
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	rw.statusCode = http.StatusSwitchingProtocols
	rw.written = true
	return h.Hijack()
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// HasPrefix also catches variations such as /healthz/
		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
