package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"tradehub/go-backend/internal/adapters/ledgerhttp"
	"tradehub/go-backend/internal/adapters/rpc"
	"tradehub/go-backend/internal/api"
	"tradehub/go-backend/internal/config"
	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/platform/redactlog"
	"tradehub/go-backend/internal/session"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	rpcAddr := flag.String("rpc-addr", "", "JSON-RPC listen address (overrides config)")
	configPath := flag.String("config", "", "Path to config.yaml (optional)")
	rpcToken := flag.String("rpc-token", "", "RPC token for Authorization/X-THUB-RPC-Token (optional)")
	flag.Parse()
	if *showVersion {
		fmt.Printf("tradehub-daemon version=%s commit=%s build_date=%s\n", version, commit, buildDate)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadFromPath(*configPath)
	if *rpcAddr != "" {
		cfg.RPC.Addr = *rpcAddr
	}
	if *rpcToken != "" {
		cfg.RPC.Token = *rpcToken
	}

	logger := slog.New(redactlog.Wrap(slog.NewJSONHandler(os.Stderr, nil)))
	slog.SetDefault(logger)

	gatewayURL, err := cfg.Ledger.GatewayURL()
	if err != nil {
		log.Fatalf("tradehub-daemon failed to initialize: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var client ledger.Client = ledgerhttp.New(gatewayURL, cfg.Ledger.ChainID, cfg.Ledger.RequestTimeout)
	client = ledger.Instrument(client, registry)

	sessions := session.NewLocalProvider(client, cfg.Session.KeystorePath)
	if passphrase := strings.TrimSpace(os.Getenv("THUB_KEYSTORE_PASSPHRASE")); passphrase != "" {
		if err := sessions.Unlock(passphrase); err != nil {
			log.Fatalf("tradehub-daemon failed to unlock keystore: %v", err)
		}
		logger.Info("keystore unlocked")
	} else {
		logger.Warn("keystore passphrase is not set; write operations unavailable until unlocked")
	}

	svc := api.NewService(client, sessions, logger)
	svc.SetFees(ledger.FeePolicy{MaxFeeGwei: cfg.Ledger.MaxFeeGwei, PriorityFeeGwei: cfg.Ledger.PriorityGwei})

	srv := rpc.NewServer(cfg.RPC, svc, logger, registry)

	logger.Info("tradehub-daemon starting", "rpc_addr", cfg.RPC.Addr, "gateway", gatewayURL)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("tradehub-daemon failed: %v", err)
	}
	logger.Info("tradehub-daemon stopped")
}
