package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Vinay-014/GoodFoods/internal/config"
	"github.com/Vinay-014/GoodFoods/internal/dependency"
	"github.com/Vinay-014/GoodFoods/internal/gateway"
)

var gatewayAddr string

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Start the HTTP/WebSocket gateway",
	RunE:  runGateway,
}

func init() {
	gatewayCmd.Flags().StringVarP(&gatewayAddr, "addr", "a", "", "Listen address (overrides config)")
}

func runGateway(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if gatewayAddr != "" {
		cfg.Gateway.Addr = gatewayAddr
	}

	container, err := dependency.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("%s Starting goodfoods gateway on %s...\n", logo, cfg.Gateway.Addr)

	srv := gateway.NewServer(cfg.Gateway.Addr, container.Agent(), container.Store())
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "gateway error: %v\n", err)
		return err
	}

	fmt.Println("\nShutdown complete.")
	return nil
}
