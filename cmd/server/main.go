package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"cmbridge/internal/bridge/events"
	"cmbridge/internal/bridge/metrics"
	"cmbridge/internal/bridge/service"
	"cmbridge/internal/nativesdk"
	"cmbridge/internal/platform/config"
	"cmbridge/internal/platform/health"
	"cmbridge/internal/platform/logger"
	"cmbridge/internal/platform/tracer"
	httptransport "cmbridge/internal/transport/http"
	"cmbridge/internal/webview/normalizer"
)

// main wires the bridge against the in-memory SDK and exposes the diagnostics
// server. Business logic lives in the internal packages; this stays assembly
// and lifecycle only.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("configuration failed", "error", err)
		os.Exit(1)
	}
	log := logger.New()

	log.Info("initializing cmbridge",
		"addr", cfg.Addr,
		"platform", cfg.Platform,
	)

	registry := prometheus.NewRegistry()
	bridgeMetrics := metrics.New(registry)

	listener := events.ListenerFuncs{
		ConsentReceived: func(e events.ConsentReceived) {
			log.Info("consent received", "consent_len", len(e.Consent))
		},
		LayerShown: func(e events.LayerShown) {
			log.Info("consent layer shown", "presentation_id", e.PresentationID)
		},
		LayerClosed: func(e events.LayerClosed) {
			log.Info("consent layer closed", "presentation_id", e.PresentationID)
		},
		Error: func(e events.Error) {
			log.Error("native sdk error", "message", e.Message)
		},
		LinkClicked: func(e events.LinkClicked) {
			log.Info("consent layer link clicked", "url", e.URL)
		},
	}

	dispatcher := events.NewDispatcher(listener,
		events.WithLogger(log),
		events.WithObserver(bridgeMetrics),
	)
	defer dispatcher.Close()

	sdk := nativesdk.New(dispatcher,
		nativesdk.WithVendors("s2789", "s2790"),
		nativesdk.WithPurposes("c52", "c53"),
	)

	caps := normalizer.CapabilitiesIOS
	if cfg.Platform == "android" {
		caps = normalizer.CapabilitiesAndroid
	}

	bridge := service.New(sdk, normalizer.New(caps, normalizer.WithLogger(log)),
		service.WithLogger(log),
		service.WithMetrics(bridgeMetrics),
		service.WithTracer(tracer.NewOTel()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := applyDefaults(ctx, bridge, cfg.Defaults); err != nil {
		log.Error("applying bridge defaults failed", "error", err)
		os.Exit(1)
	}

	healthHandler := health.New(cfg.Platform)
	healthHandler.RegisterCheck("native_sdk", func() error {
		checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err := bridge.IsConsentRequired(checkCtx)
		return err
	})

	consentHandler := httptransport.NewConsentHandler(bridge, log)
	webviewHandler := httptransport.NewWebViewHandler(bridge, log)
	router := httptransport.NewRouter(consentHandler, webviewHandler, healthHandler, registry, log)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting diagnostics server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

// applyDefaults pushes the optional configured url and layer appearance into
// the bridge before the first request can arrive.
func applyDefaults(ctx context.Context, bridge *service.Service, defaults config.Defaults) error {
	if defaults.URL.ID != "" {
		if err := bridge.SetUrlConfig(ctx, defaults.URL); err != nil {
			return err
		}
	}
	if defaults.WebView.Position != "" || defaults.WebView.BackgroundStyle != nil {
		if err := bridge.SetWebViewConfig(ctx, defaults.WebView); err != nil {
			return err
		}
	}
	return nil
}
