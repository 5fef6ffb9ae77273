package main

import (
	"context"
	"log/slog"

	"l4d2stats/internal/api"
	"l4d2stats/internal/components/telemetry"
	"l4d2stats/internal/scrapers/anne"
	"l4d2stats/internal/scrapers/daidai"
	"l4d2stats/lib/configutil"
	"l4d2stats/lib/serviceutil"
)

func main() {
	cfg, err := configutil.Load[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	telemetry.InitSlog(cfg.Verbose)
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = "0.0.0.0:8080"
	}

	ctx := serviceutil.SignalContext()

	otel, err := telemetry.Setup(ctx, "l4d2-server", cfg.Telemetry)
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer func() {
		err := otel.Shutdown(context.Background())
		if err != nil {
			slog.Error("failed to shutdown telemetry", "err", err)
		}
	}()
	telemetry.InstrumentPerfStats(ctx)

	tel := telemetry.SlogAPI{}

	anneClient, err := anne.NewClient(cfg.Anne, tel)
	if err != nil {
		serviceutil.Fatal("failed to create anne client", err)
	}

	var snapshots api.Snapshots
	if cfg.Daidai.BaseURL != "" {
		snapshots = daidai.NewSnapshotter(cfg.Daidai, tel)
	} else {
		slog.Warn("daidai base url is not configured, snapshots are disabled")
	}

	router := api.NewRouter(cfg.Server.API, anneClient, snapshots, tel)
	err = serviceutil.StartHttpServer(ctx, cfg.Server.Addr, router)
	if err != nil {
		serviceutil.Fatal("http server stopped", err)
	}
}
