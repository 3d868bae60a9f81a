package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fgeck/pihub/internal/config"
	"github.com/fgeck/pihub/internal/handlers"
	"github.com/fgeck/pihub/internal/models"
	"github.com/fgeck/pihub/internal/server"
	"github.com/fgeck/pihub/internal/services/cec"
	"github.com/fgeck/pihub/internal/services/history"
	"github.com/fgeck/pihub/internal/services/wol"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var (
	host        string
	port        string
	broadcastIP string
	wolPort     int
	cecDevice   string

	tvEnabled       bool
	wolEnabled      bool
	requireIdentity bool
	identityHeader  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP control service",
	Long: `Run the HTTP control service. Routes:
  GET  /tv/status            - TV power state via HDMI-CEC
  POST /tv/on                - turn the TV on
  POST /tv/off               - put the TV into standby
  GET  /wol                  - health check
  POST /wol                  - send a magic packet ({"target": ...} or {"mac": ...})
  GET  /wol/last-wake/:name  - last recorded wake for a named target

The /tv and /wol groups can be disabled independently with --tv=false
and --wol=false.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "listen address")
	serveCmd.Flags().StringVar(&port, "port", "8080", "listen port")
	serveCmd.Flags().StringVar(&broadcastIP, "broadcast", "255.255.255.255", "WoL broadcast address (use your subnet broadcast if the global one is filtered)")
	serveCmd.Flags().IntVar(&wolPort, "wol-port", 9, "WoL UDP destination port")
	serveCmd.Flags().StringVar(&cecDevice, "cec-device", "0", "CEC logical address of the TV")
	serveCmd.Flags().BoolVar(&tvEnabled, "tv", true, "serve the /tv route group")
	serveCmd.Flags().BoolVar(&wolEnabled, "wol", true, "serve the /wol route group")
	serveCmd.Flags().BoolVar(&requireIdentity, "require-identity", false, "require the trusted-identity header on wake requests")
	serveCmd.Flags().StringVar(&identityHeader, "identity-header", "Tailscale-User-Login", "header asserted by the upstream proxy")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := models.HubConfig{
		Server: models.ServerConfig{Host: host, Port: port},
		WOL: models.WOLConfig{
			BroadcastIP: broadcastIP,
			Port:        wolPort,
			TargetsFile: targetsFile,
		},
		CEC: models.CECConfig{
			Device:  cecDevice,
			Timeout: cec.DefaultTimeout,
		},
		Identity: models.IdentityConfig{
			Required: requireIdentity,
			Header:   identityHeader,
		},
		TVEnabled:  tvEnabled,
		WOLEnabled: wolEnabled,
	}

	// Gin's diagnostic verbosity follows its own env var; default to the
	// quiet mode when the operator has not chosen one.
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := config.NewParser(log.Logger).LoadFile(cfg.WOL.TargetsFile)
	log.Info().
		Str("file", cfg.WOL.TargetsFile).
		Int("targets", registry.Len()).
		Msg("target registry loaded")

	apiHandler := handlers.NewHandler(
		cfg,
		cec.New(cfg.CEC, log.Logger),
		wol.New(cfg.WOL, log.Logger),
		history.New(),
		registry,
		log.Logger,
	)

	srv := &server.Server{}
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run(cfg.Server.Host, cfg.Server.Port, apiHandler.InitRoutes())
	}()

	log.Info().
		Str("host", cfg.Server.Host).
		Str("port", cfg.Server.Port).
		Bool("tv", cfg.TVEnabled).
		Bool("wol", cfg.WOLEnabled).
		Bool("identity_gate", cfg.Identity.Required).
		Msg("listening")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		// Failing to bind the port is fatal.
		log.Error().Err(err).Msg("server failed")
		return err
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		return err
	}

	return nil
}
