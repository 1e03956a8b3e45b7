package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-nav/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPingAndCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupRoutes(r, handler.New(nil, nil, zap.NewNop()))
	srv := withCORS(r)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://campus.example")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"pong","status":"ok"}`, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/api/navigate", nil)
	preflight.Header.Set("Origin", "http://campus.example")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, preflight)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
