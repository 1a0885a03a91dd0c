package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"epass-backend/internal/epass"
	"epass-backend/internal/platform/config"
	"epass-backend/internal/platform/db"
	"epass-backend/internal/platform/logger"
	"epass-backend/internal/platform/metrics"
	"epass-backend/internal/visitor"
)

// @title        Visitor E-Pass API
// @version      1.0
// @description  Registers visitors and issues printable PDF e-passes.
// @BasePath     /

func main() {
	configPath := flag.String("config", "", "config file (default $EPASS_CONFIG or "+config.DefaultConfigPath+")")
	rerender := flag.String("rerender", "", "render the pass of an existing visitor id again and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	lg := logger.Setup(cfg.Mode, cfg.LogLevel)
	lg.Info().Str("mode", cfg.Mode).Str("driver", cfg.Database.Driver).Msg("config loaded")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := openStore(ctx, cfg)
	cancel()
	if err != nil {
		lg.Fatal().Err(err).Msg("open store")
	}

	storage := epass.NewStorage(cfg.Storage.PublicDir, cfg.Storage.PDFDir)
	if err := storage.EnsureDir(); err != nil {
		lg.Fatal().Err(err).Msg("prepare pass dir")
	}
	renderer := epass.NewRenderer(storage, epass.Options{
		Institution: cfg.Render.Institution,
		ShortName:   cfg.Render.ShortName,
		Location:    cfg.Location(),
		QRCode:      cfg.Render.QRCode,
		Compress:    cfg.Render.Compress,
	})
	svc := visitor.NewService(store)

	if *rerender != "" {
		err := rerenderPass(svc, renderer, *rerender, lg)
		closeStore(store, lg)
		if err != nil {
			os.Exit(1)
		}
		return
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	r := newRouter(cfg, lg, reg, m, svc, renderer, storage)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		var err error
		if cfg.TLSEnabled() {
			lg.Info().Str("addr", srv.Addr).Msg("listening (tls)")
			err = srv.ListenAndServeTLS(cfg.Server.TLSCert, cfg.Server.TLSKey)
		} else {
			lg.Info().Str("addr", srv.Addr).Msg("listening")
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	lg.Info().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("shutdown")
	}
	closeStore(store, lg)
}

func openStore(ctx context.Context, cfg *config.Config) (visitor.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverMySQL:
		conn, err := db.Connect(ctx, cfg.Database.MySQL)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, conn); err != nil {
			conn.Close()
			return nil, err
		}
		return visitor.NewMySQLStore(conn), nil
	case config.DriverMongo:
		client, err := db.ConnectMongo(ctx, cfg.Database.Mongo)
		if err != nil {
			return nil, err
		}
		return visitor.NewMongoStore(client, cfg.Database.Mongo.Database, cfg.Database.Mongo.Collection), nil
	case config.DriverMemory:
		return visitor.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
}

func closeStore(store visitor.Store, lg zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		lg.Error().Err(err).Msg("close store")
	}
}

// rerenderPass rebuilds the pass of a record whose first render failed after it was stored.
func rerenderPass(svc *visitor.Service, renderer *epass.Renderer, id string, lg zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rec, err := svc.Get(ctx, id)
	if err != nil {
		lg.Error().Err(err).Str("visitor_id", id).Msg("load visitor")
		return err
	}
	art, err := renderer.Render(ctx, *rec)
	if err != nil {
		lg.Error().Err(err).Str("visitor_id", id).Msg("render pass")
		return err
	}
	lg.Info().Str("visitor_id", id).Str("path", art.Path).Int64("size", art.Size).Msg("pass rendered")
	return nil
}
