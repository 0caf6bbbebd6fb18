package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

// TestSetupRoutes ensures all expected endpoints are implemented.
func TestSetupRoutes(t *testing.T) {
	testCases := []struct {
		name        string
		request     *http.Request
		implemented bool
	}{
		{
			"index endpoint",
			httptest.NewRequest(http.MethodGet, "/", nil),
			true,
		},
		{
			"status endpoint",
			httptest.NewRequest(http.MethodGet, "/status", nil),
			true,
		},
		{
			"create book endpoint",
			httptest.NewRequest(http.MethodPost, "/api/books", nil),
			true,
		},
		{
			"fetch all books endpoint",
			httptest.NewRequest(http.MethodGet, "/api/books", nil),
			true,
		},
		{
			"fetch all books endpoint with slash",
			httptest.NewRequest(http.MethodGet, "/api/books/", nil),
			true,
		},
		{
			"delete all books endpoint",
			httptest.NewRequest(http.MethodDelete, "/api/books", nil),
			true,
		},
		{
			"fetch single book endpoint",
			httptest.NewRequest(http.MethodGet, "/api/books/"+testBookID, nil),
			true,
		},
		{
			"add comment endpoint",
			httptest.NewRequest(http.MethodPost, "/api/books/"+testBookID, nil),
			true,
		},
		{
			"delete book endpoint",
			httptest.NewRequest(http.MethodDelete, "/api/books/"+testBookID, nil),
			true,
		},
		{
			"invalid api endpoint",
			httptest.NewRequest(http.MethodGet, "/v1", nil),
			false,
		},
		{
			"invalid books endpoint",
			httptest.NewRequest(http.MethodGet, "/books", nil),
			false,
		},
		{
			"ops endpoint disabled",
			httptest.NewRequest(http.MethodGet, "/ops/stats", nil),
			false,
		},
	}

	mockRepo := &MockBookStorage{
		AddFunc: func(ctx context.Context, book Book) error {
			return nil
		},
		GetOneFunc: func(ctx context.Context, id string) (Book, error) {
			return Book{}, nil
		},
		GetAllFunc: func(ctx context.Context) ([]Book, error) {
			return []Book{}, nil
		},
		AddCommentFunc: func(ctx context.Context, id string, comment string) (Book, error) {
			return Book{}, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			return nil
		},
		DeleteAllFunc: func(ctx context.Context) error {
			return nil
		},
	}
	api := newTestAPIHandler(mockRepo, NewObjectIDsHandler())
	m := &MiddlewareMap{public: (&Middlewares{}).Chain, ops: (&Middlewares{}).Chain}
	router := api.SetupRoutes(httprouter.New(), m)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request)
			if tc.implemented {
				assert.NotEqual(t, http.StatusNotFound, w.Code)
			} else {
				assert.Equal(t, http.StatusNotFound, w.Code)
				assert.Equal(t, "Not Found", w.Body.String())
			}
		})
	}
}

// TestSetupOpsRoutes ensures ops endpoints are served once enabled.
func TestSetupOpsRoutes(t *testing.T) {
	api := newTestAPIHandler(&MockBookStorage{}, NewObjectIDsHandler())
	api.config = &Config{OpsEndpointsEnable: true}
	m := &MiddlewareMap{public: (&Middlewares{}).Chain, ops: (&Middlewares{}).Chain}
	router := api.SetupRoutes(httprouter.New(), m)

	for _, path := range []string{"/ops/configs", "/ops/stats", "/ops/metrics", "/ops/debug/vars"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	t.Run("profiler disabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ops/debug/pprof/", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("profiler enabled", func(t *testing.T) {
		api.config = &Config{OpsEndpointsEnable: true, ProfilerEnable: true}
		router := api.SetupRoutes(httprouter.New(), m)
		for _, name := range runtimeProfiles {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ops/debug/pprof/"+name, nil))
			assert.Equal(t, http.StatusOK, w.Code, name)
		}
	})
}
