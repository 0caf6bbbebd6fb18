package main

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// Statistics holds app stats for ops.
type Statistics struct {
	version   string
	container bool
	runtime   string
	platform  string
	called    uint64
	started   time.Time
	status    map[int]uint64
	mu        *sync.RWMutex
}

// Maintenance holds app maintenance mode infos.
type Maintenance struct {
	enabled atomic.Bool
	mu      sync.RWMutex
	message string
	started time.Time
}

// details returns the maintenance message and its starting time.
func (m *Maintenance) details() (string, time.Time) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.message, m.started
}

// APIHandler defines the API handler.
type APIHandler struct {
	logger      *zap.Logger
	config      *Config
	stats       *Statistics
	mode        *Maintenance
	clock       Clocker
	requestIDs  UIDHandler
	metrics     *Metrics
	bookService BookServiceProvider
}

// NewAPIHandler provides a new instance of APIHandler.
func NewAPIHandler(logger *zap.Logger, config *Config, stats *Statistics, clock Clocker, metrics *Metrics, bs BookServiceProvider) *APIHandler {
	stats.status = make(map[int]uint64)
	stats.mu = &sync.RWMutex{}
	return &APIHandler{
		logger:      logger,
		config:      config,
		stats:       stats,
		mode:        &Maintenance{},
		clock:       clock,
		requestIDs:  NewUUIDsHandler(RequestIDPrefix),
		metrics:     metrics,
		bookService: bs,
	}
}

// Index provides same details like `Status` handler by redirecting the request.
func (api *APIHandler) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.Redirect(w, r, "/status", http.StatusSeeOther)
}

// Status provides basics details about the application to the public users.
func (api *APIHandler) Status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	err := WriteJSONResponse(r.Context(), w, http.StatusOK, StatusResponse{
		RequestID: requestID,
		Status:    "up & running since " + Uptime(api.clock, api.stats.started),
		Message:   "Hello. Bookshelf api is available. Enjoy :)",
	})
	if err != nil {
		api.GetLoggerFromContext(r.Context()).Error("failed to send status response", zap.Error(err))
	}
}

// NotFound answers requests on unknown routes with a plain message.
func (api *APIHandler) NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := WriteTextResponse(r.Context(), w, http.StatusNotFound, "Not Found"); err != nil {
			api.logger.Error("failed to send not found response", zap.String("request.path", r.URL.Path), zap.Error(err))
		}
	})
}
