package main

import (
	"encoding/json"
	"expvar"
	"net/http"
	"net/http/pprof"
	"runtime"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// OpsHandlerWrapper adapts a standard handler to the router handle signature.
func (api *APIHandler) OpsHandlerWrapper(h http.Handler) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		h.ServeHTTP(w, r)
	}
}

// GetCPUProfile serves the cpu profile for the duration given in seconds query.
func (api *APIHandler) GetCPUProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	pprof.Profile(w, r)
}

// Maintenance handles request to enable or disable the maintenance mode of the service.
// Enable the maintenance mode : /ops/maintenance?status=enable&msg=message-to-be-displayed-to-users
// Disable the maintenance mode: /ops/maintenance?status=disable
func (api *APIHandler) Maintenance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	logger := api.GetLoggerFromContext(r.Context())
	q := r.URL.Query()
	mstatus := q.Get("status")
	var response map[string]interface{}
	status := http.StatusOK

	switch mstatus {
	case "enable":
		api.mode.mu.Lock()
		api.mode.message = q.Get("msg")
		api.mode.started = api.clock.Now().UTC()
		api.mode.mu.Unlock()
		api.mode.enabled.Store(true)
		message, started := api.mode.details()
		response = map[string]interface{}{
			"requestid":           requestID,
			"maintenance.started": started.Format(time.RFC1123),
			"maintenance.message": message,
			"message":             "Maintenance mode enabled successfully.",
		}
		logger.Info("maintenance mode enabled", zap.String("maintenance.message", message))

	case "disable":
		api.mode.enabled.Store(false)
		api.mode.mu.Lock()
		api.mode.started = time.Time{}
		api.mode.message = ""
		api.mode.mu.Unlock()
		response = map[string]interface{}{
			"requestid": requestID,
			"message":   "Maintenance mode disabled successfully.",
		}
		logger.Info("maintenance mode disabled")

	default:
		status = http.StatusBadRequest
		response = map[string]interface{}{
			"requestid": requestID,
			"message":   "status query parameter must be enable or disable.",
		}
	}

	if err := WriteJSONResponse(r.Context(), w, status, response); err != nil {
		logger.Error("failed to send maintenance response", zap.String("request.maintenance", mstatus), zap.Error(err))
	}
}

// export goroutines to be used by expvar handler.
var goroutines = expvar.NewInt("goroutines")

// GetMemStats returns memory statistics with number of goroutines in json.
func GetMemStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	goroutines.Set(int64(runtime.NumGoroutine()))
	expvar.Handler().ServeHTTP(w, r)
}

// FreeOSMemory forces the garbage collector to and tries to returns the memory
// back to the operating system in an asynchronous fashion.
func (api *APIHandler) FreeOSMemory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	go debug.FreeOSMemory()
	if err := WriteJSONResponse(r.Context(), w, http.StatusOK, map[string]string{"called": "go debug.FreeOSMemory()"}); err != nil {
		api.GetLoggerFromContext(r.Context()).Error("failed to send free os memory response", zap.Error(err))
	}
}

// GetStatistics provides useful details about the application to the internal ops users.
// The stats returns by this handler do not contain the ops request which triggered that.
// That is why we remove 1 from the called field value in order to match the status stats.
func (api *APIHandler) GetStatistics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	message, started := api.mode.details()
	maintenanceModeStartedTime := ""
	if !started.IsZero() {
		maintenanceModeStartedTime = started.Format(time.RFC1123)
	}

	api.stats.mu.RLock()
	status := make(map[int]uint64, len(api.stats.status))
	for code, count := range api.stats.status {
		status[code] = count
	}
	api.stats.mu.RUnlock()

	called := atomic.LoadUint64(&api.stats.called)
	if called > 0 {
		called--
	}

	err := WriteJSONResponse(r.Context(), w, http.StatusOK,
		map[string]interface{}{
			"requestid":     requestID,
			"app.version":   api.stats.version,
			"app.container": api.stats.container,
			"app.platform":  api.stats.platform,
			"go.version":    api.stats.runtime,
			"called":        called,
			"started":       api.stats.started.Format(time.RFC1123),
			"uptime":        Uptime(api.clock, api.stats.started),
			"maintenance": map[string]interface{}{
				"enabled": api.mode.enabled.Load(),
				"started": maintenanceModeStartedTime,
				"message": message,
			},
			"status": status,
		},
	)
	if err != nil {
		api.GetLoggerFromContext(r.Context()).Error("failed to send statistics response", zap.Error(err))
	}
}

// GetConfigs serves current in-use configurations/settings. Secrets are
// excluded from the json encoding of the configuration.
func (api *APIHandler) GetConfigs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	if err := json.NewEncoder(w).Encode(
		map[string]interface{}{
			"requestid": requestID,
			"configs":   api.config,
		},
	); err != nil {
		api.GetLoggerFromContext(r.Context()).Error("failed to send settings response", zap.Error(err))
	}
}

// GetMetrics serves the prometheus metrics.
func (api *APIHandler) GetMetrics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	api.metrics.Handler().ServeHTTP(w, r)
}
