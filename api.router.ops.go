package main

import (
	"net/http"
	"net/http/pprof"

	"github.com/julienschmidt/httprouter"
)

// runtimeProfiles are the named pprof profiles served under /ops/debug/pprof.
var runtimeProfiles = []string{"heap", "allocs", "goroutine", "block", "mutex", "threadcreate"}

// SetupOpsRoutes injects the internal operations endpoints. Profiling
// endpoints are only served when the profiler is enabled.
func (api *APIHandler) SetupOpsRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.GET("/ops/configs", m.ops(api.GetConfigs))
	router.GET("/ops/stats", m.ops(api.GetStatistics))
	router.GET("/ops/maintenance", m.ops(api.Maintenance))
	router.GET("/ops/metrics", m.ops(api.GetMetrics))
	router.GET("/ops/debug/vars", m.ops(GetMemStats))
	router.GET("/ops/debug/fos", m.ops(api.FreeOSMemory))

	if !api.config.ProfilerEnable {
		return router
	}

	router.GET("/ops/debug/pprof/", m.ops(api.OpsHandlerWrapper(http.HandlerFunc(pprof.Index))))
	router.GET("/ops/debug/pprof/profile", m.ops(api.GetCPUProfile))
	router.GET("/ops/debug/pprof/trace", m.ops(api.OpsHandlerWrapper(http.HandlerFunc(pprof.Trace))))
	router.GET("/ops/debug/pprof/symbol", m.ops(api.OpsHandlerWrapper(http.HandlerFunc(pprof.Symbol))))
	router.GET("/ops/debug/pprof/cmdline", m.ops(api.OpsHandlerWrapper(http.HandlerFunc(pprof.Cmdline))))
	for _, name := range runtimeProfiles {
		router.GET("/ops/debug/pprof/"+name, m.ops(api.OpsHandlerWrapper(pprof.Handler(name))))
	}
	return router
}
