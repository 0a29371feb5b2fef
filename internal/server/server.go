// Package server exposes the recommendation pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/talentsift/talentsift/config"
	"github.com/talentsift/talentsift/internal/catalog"
	"github.com/talentsift/talentsift/internal/recommend"
	"github.com/talentsift/talentsift/internal/vectorstore"
	"github.com/talentsift/talentsift/provider"
)

// Run loads the catalog, wires the pipeline and serves the API. The catalog
// is a startup precondition; missing vector/LLM credentials are not, they
// surface per request.
func Run(cfg *config.Config) error {
	logger := log.New(log.Writer(), "[SERVER] ", log.LstdFlags)

	docs, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	logger.Printf("loaded %d catalog entries from %s", len(docs), cfg.Catalog.Path)

	embedder := provider.NewEmbeddingProvider(cfg.Embedding)
	llm := provider.NewRerankProvider(cfg.LLM)
	store := vectorstore.New(cfg.Vector, cfg.Catalog.Collection, embedder, docs, nil)
	svc := recommend.NewService(store, llm, nil)

	var cache *Cache
	if cfg.Cache.Enabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.Addr(), Password: cfg.Cache.Password, DB: cfg.Cache.DB})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("redis connection failed (%s): %w", cfg.Cache.Addr(), err)
		}
		cache = NewCache(rdb, cfg.Cache.TTL)
		logger.Printf("response cache enabled (redis %s, ttl %s)", cfg.Cache.Addr(), cfg.Cache.TTL)
	}

	e := newEcho()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	h := &RecommendHandler{Service: svc, Cache: cache, Logger: logger}
	h.Register(e)

	addr := cfg.Server.Address
	if addr == "" {
		addr = ":8000"
	}
	logger.Printf("listening on %s", addr)
	return e.Start(addr)
}

// newEcho builds the echo instance with middleware and the unified JSON
// error handler.
func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "assessment recommendation service is running"})
	})
	e.GET("/favicon.ico", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	return e
}
