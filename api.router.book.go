package main

import (
	"github.com/julienschmidt/httprouter"
)

// SetupBookRoutes injects book related the api endpoints.
func (api *APIHandler) SetupBookRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.GET("/", m.public(api.Index))
	router.GET("/status", m.public(api.Status))

	router.GET("/api/books", m.public(api.GetAllBooks))
	router.POST("/api/books", m.public(api.CreateBook))
	router.DELETE("/api/books", m.public(api.DeleteAllBooks))

	router.GET("/api/books/:id", m.public(api.GetOneBook))
	router.POST("/api/books/:id", m.public(api.AddComment))
	router.DELETE("/api/books/:id", m.public(api.DeleteOneBook))
	return router
}
