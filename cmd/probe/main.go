// Command probe locates a running server through its port file and checks /healthz.
// It exits non-zero when the server cannot be found or is unhealthy.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"monopoly_backend/internal/platform/config"
	platformhttp "monopoly_backend/internal/platform/http"
	"monopoly_backend/internal/platform/portfile"
)

const probeTimeout = 5 * time.Second

func main() {
	config.LoadDotEnv(".env")
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	slog.SetDefault(cfg.NewLogger())

	port, err := portfile.Read(cfg.PortFile)
	if err != nil {
		slog.Error("server port not found", "path", cfg.PortFile, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	baseURL := platformhttp.LocalBaseURL(port)
	report, err := platformhttp.ProbeHealth(ctx, platformhttp.NewHTTPClient(probeTimeout), baseURL)
	if err != nil {
		slog.Error("server unhealthy", "url", baseURL, "error", err)
		os.Exit(1)
	}
	slog.Info("server healthy", "url", baseURL, "areas", report.Areas, "commercial_types", report.CommercialTypes)
}
