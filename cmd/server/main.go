// Command server is the main entry point for the Glue Data Catalog MCP server
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/theapemachine/mcp-server-glue-catalog/pkg/catalog"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/config"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/logging"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/metrics"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/server"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/tools/glue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:           "glue-mcp",
		Short:         "Serve AWS Glue Data Catalog metadata as MCP tools over HTTP/SSE",
		Version:       server.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a config file (yaml, json or toml)")
	flags.String("bind-address", config.DefaultBindAddress, "host:port the SSE transport listens on")
	flags.String("base-url", "", "externally visible base URL (defaults to http://<bind-address>)")
	flags.Bool("demo-surface", false, "also expose the example resources and echo prompt")
	flags.String("region", "", "AWS region (defaults to the SDK's resolution)")
	flags.String("profile", "", "AWS shared config profile")
	flags.String("endpoint", "", "override the Glue endpoint URL")
	flags.String("catalog-id", "", "Glue catalog id, defaults to the caller's account")
	flags.Bool("health-check", true, "probe Glue at startup and exit if it is unreachable")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text, json")

	for key, flag := range map[string]string{
		"server.bind_address":  "bind-address",
		"server.base_url":      "base-url",
		"server.demo_surface":  "demo-surface",
		"aws.region":           "region",
		"aws.profile":          "profile",
		"aws.endpoint":         "endpoint",
		"catalog.catalog_id":   "catalog-id",
		"catalog.health_check": "health-check",
		"log.level":            "log-level",
		"log.format":           "log-format",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if _, err := logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	var (
		recorder metrics.Recorder = metrics.Nop{}
		httpOpts                  = server.HTTPOptions{
			BindAddress: cfg.Server.BindAddress,
			BaseURL:     cfg.Server.BaseURL,
		}
	)
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheus()
		recorder = prom
		httpOpts.MetricsPath = cfg.Metrics.Path
		httpOpts.MetricsHandler = prom.Handler()
	}

	log.Info("Metrics & logging initialised", "metrics", cfg.Metrics.Enabled)

	cat, err := catalog.NewFromConfig(ctx, cfg)
	if err != nil {
		return err
	}

	srv := server.New(glue.RegisterGlueTools(cat, recorder), server.Options{
		DemoSurface: cfg.Server.DemoSurface,
	})

	return srv.Serve(ctx, httpOpts)
}
