package main

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// MiddlewareFunc is a custom type for ease of use.
type MiddlewareFunc func(httprouter.Handle) httprouter.Handle

// Middlewares is a custom type to represent a stack of
// middleware functions used to build a single chain.
type Middlewares []MiddlewareFunc

// MiddlewaresStacks builds the middlewares chains for public and ops endpoints.
func (api *APIHandler) MiddlewaresStacks() (*Middlewares, *Middlewares) {
	public := &Middlewares{
		api.RequestsCounterMiddleware,
		api.RequestIDMiddleware,
		api.CoreMiddleware,
		api.StatsMiddleware,
		api.PanicRecoveryMiddleware,
		api.MaintenanceModeMiddleware,
		CORSMiddleware,
	}
	ops := &Middlewares{
		api.RequestsCounterMiddleware,
		api.RequestIDMiddleware,
		api.CoreMiddleware,
		api.StatsMiddleware,
		api.PanicRecoveryMiddleware,
	}
	return public, ops
}

// CoreMiddleware setup the duration measurement for each request and logs its result.
func (api *APIHandler) CoreMiddleware(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		start := api.clock.Now()
		logger := api.GetLoggerFromContext(r.Context())

		logger.Info(
			"request",
			zap.String("request.method", r.Method),
			zap.String("request.path", r.URL.Path),
			zap.String("request.ip", GetRequestSourceIP(r)),
			zap.String("request.agent", r.UserAgent()),
			zap.String("request.referer", r.Referer()),
		)

		next(w, r, ps)
		logger.Info(
			"request",
			zap.String("request.method", r.Method),
			zap.String("request.path", r.URL.Path),
			zap.Duration("request.duration", api.clock.Now().Sub(start)),
		)
	}
}

// RequestsCounterMiddleware increments the number of received requests statistics and add this
// new value to the request context to be used during logging as `request.num` field.
func (api *APIHandler) RequestsCounterMiddleware(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx := context.WithValue(r.Context(), RequestNumberContextKey, atomic.AddUint64(&api.stats.called, 1))
		r = r.WithContext(ctx)
		next(w, r, ps)
	}
}

// RequestIDMiddleware generates and add a unique id to the request context along
// with a child logger carrying that id and the request number.
func (api *APIHandler) RequestIDMiddleware(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		requestID := api.requestIDs.Generate()
		logger := api.logger.With(
			zap.String("request.id", requestID),
			zap.Uint64("request.num", GetRequestNumberFromContext(r.Context())),
		)
		ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
		ctx = context.WithValue(ctx, LoggerContextKey, logger)
		w.Header().Set("X-Request-ID", requestID)
		r = r.WithContext(ctx)
		next(w, r, ps)
	}
}

// StatsMiddleware records the response status code of each request into
// the statistics and the prometheus metrics. Route parameters values are
// replaced by their names to keep the metrics labels bounded.
func (api *APIHandler) StatsMiddleware(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		start := api.clock.Now()
		cw := NewCustomResponseWriter(w)
		next(cw, r, ps)

		api.stats.mu.Lock()
		api.stats.status[cw.Status()]++
		api.stats.mu.Unlock()

		if api.metrics != nil {
			api.metrics.Observe(r.Method, RoutePath(r.URL.Path, ps), cw.Status(), api.clock.Now().Sub(start))
		}
	}
}

// RoutePath rebuilds the route pattern of a request path from its parameters.
// Parameters are trailing segments so values are replaced from the end.
func RoutePath(path string, ps httprouter.Params) string {
	for i := len(ps) - 1; i >= 0; i-- {
		p := ps[i]
		if p.Value == "" {
			continue
		}
		if idx := strings.LastIndex(path, "/"+p.Value); idx >= 0 {
			path = path[:idx] + "/:" + p.Key + path[idx+1+len(p.Value):]
		}
	}
	return path
}

// MaintenanceModeMiddleware responds to every request with 503 and the
// maintenance message while the maintenance mode is enabled.
func (api *APIHandler) MaintenanceModeMiddleware(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !api.mode.enabled.Load() {
			next(w, r, ps)
			return
		}
		message, started := api.mode.details()
		err := WriteJSONResponse(r.Context(), w, http.StatusServiceUnavailable, map[string]interface{}{
			"requestid": GetValueFromContext(r.Context(), RequestIDContextKey),
			"message":   "service currently unavailable.",
			"reason":    message,
			"since":     started.Format(time.RFC1123),
		})
		if err != nil {
			api.GetLoggerFromContext(r.Context()).Error("failed to send maintenance response", zap.Error(err))
		}
	}
}

// CORSMiddleware intercepts each incoming HTTP calls then apply cors headers on it.
func CORSMiddleware(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE, HEAD")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Access-Control-Request-Method, Access-Control-Request-Headers, Accept, Content-Type, Content-Length, Accept-Encoding, User-Agent, Accept-Language, Referer, Cache-Control")
		next(w, r, ps)
	}
}

// PanicRecoveryMiddleware catches any panic during the request lifecycle and produces
// an error log for further analysis. It sends a failure response to the client with 500.
func (api *APIHandler) PanicRecoveryMiddleware(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		recovery := func() {
			if err := recover(); err != nil {
				logger := api.GetLoggerFromContext(r.Context())
				logger.Error("panic occurred", zap.Any("error", err))
				if err := WriteTextResponse(r.Context(), w, http.StatusInternalServerError, MsgInternalServerError); err != nil {
					logger.Error("failed to send error response", zap.Error(err))
				}
			}
		}
		defer recovery()
		next(w, r, ps)
	}
}

// Chain wraps a given httprouter.Handle with a list of middlewares.
// It does by starting from the last middleware from the list.
func (m *Middlewares) Chain(h httprouter.Handle) httprouter.Handle {
	if len(*m) == 0 {
		return h
	}
	lg := len(*m)
	handle := (*m)[lg-1](h)

	for i := lg - 2; i >= 0; i-- {
		handle = (*m)[i](handle)
	}

	return handle
}
