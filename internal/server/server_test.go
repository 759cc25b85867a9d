package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/ductran2702/code-challenge-backend/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWithoutHTTPServer(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{Config: &config.Config{}, Logger: &logger}

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestSetupHTTPServer(t *testing.T) {
	s := &Server{Config: &config.Config{
		Server: config.ServerConfig{Port: "0", ReadTimeout: 3, WriteTimeout: 4, IdleTimeout: 5},
	}}

	s.SetupHTTPServer(http.NotFoundHandler())

	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":0", s.httpServer.Addr)
	assert.Equal(t, "3s", s.httpServer.ReadTimeout.String())
	assert.Equal(t, "4s", s.httpServer.WriteTimeout.String())
	assert.Equal(t, "5s", s.httpServer.IdleTimeout.String())
}

func TestShutdownWithoutResources(t *testing.T) {
	s := &Server{Config: &config.Config{}}
	assert.NoError(t, s.Shutdown(context.Background()))
}
