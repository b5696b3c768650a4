package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/xiaoyuanzhu-com/list-filter/api"
	"github.com/xiaoyuanzhu-com/list-filter/config"
	"github.com/xiaoyuanzhu-com/list-filter/db"
	"github.com/xiaoyuanzhu-com/list-filter/log"
	"github.com/xiaoyuanzhu-com/list-filter/node"
	"github.com/xiaoyuanzhu-com/list-filter/notifications"
	"github.com/xiaoyuanzhu-com/list-filter/source"
)

func main() {
	cfg := config.Get()

	// Initialize database
	_ = db.GetDB()
	log.Info().Str("path", cfg.DatabasePath).Msg("database initialized")

	// Apply persisted log level
	if level, err := db.GetSetting("log_level"); err == nil && level != "" {
		log.SetLevel(level)
		log.Info().Str("level", level).Msg("log level set from settings")
	}

	// Register node definitions
	node.InitializeRegistry()

	// Set Gin to release mode to disable its default debug logging
	// We use our own zerolog-based request logger instead
	gin.SetMode(gin.ReleaseMode)

	// Create Gin router
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())

	// Request logging middleware (uses zerolog)
	r.Use(log.GinLogger())

	// Compress JSON responses; the SSE stream must stay uncompressed so
	// events flush immediately
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/notifications/stream"})))

	// CORS for development
	if cfg.IsDevelopment() {
		r.Use(corsMiddleware())
	}

	r.SetTrustedProxies(nil)

	// Setup API routes
	api.SetupRoutes(r)

	// Start the item-source watcher
	sourceWorker := source.NewWorker(cfg.SourcesDir)
	if err := sourceWorker.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start source watcher")
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:     addr,
		Handler:  r,
		ErrorLog: log.StdErrorLogger(),
	}

	// Start server
	go func() {
		log.Info().
			Str("addr", addr).
			Str("env", cfg.Env).
			Msg("server starting")

		// Print network addresses
		printNetworkAddresses(cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Stop the watcher first (it holds db access)
	sourceWorker.Stop()

	// Shutdown notification service to close all SSE connections
	notifications.GetService().Shutdown()

	// Shutdown server with timeout to close remaining HTTP connections
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	// Close database
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("database close error")
	}

	log.Info().Msg("server stopped")
}

// corsMiddleware creates a CORS middleware for Gin
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func printNetworkAddresses(port int) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok {
				if ip4 := ipnet.IP.To4(); ip4 != nil {
					log.Info().Str("url", fmt.Sprintf("http://%s:%d", ip4.String(), port)).Msg("network")
				}
			}
		}
	}
}
