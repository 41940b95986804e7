package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:    cfg.HTTPAddress,
		Handler: router,
	}
	if cfg.RequestTimeout > 0 {
		srv.ReadTimeout = cfg.RequestTimeout
		srv.WriteTimeout = cfg.RequestTimeout
	}

	return &httpServer{server: srv, logger: logger}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); h.server != nil && err != nil {
		// listener close errors
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}
