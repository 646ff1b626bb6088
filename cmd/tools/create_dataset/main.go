// Command create_dataset bootstraps the Hub dataset that backs the wrapped
// snapshot cache. Without a token it prints what to configure and exits
// cleanly, so it is safe to run in any environment.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kapu/hf-wrapped-go/internal/config"
	"github.com/kapu/hf-wrapped-go/internal/service/dataset"
	"github.com/kapu/hf-wrapped-go/internal/util"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Dataset.ID == "" {
		logger.Info("WRAPPED_DATASET_ID not set; nothing to create")
		return
	}
	if cfg.Dataset.Token == "" {
		logger.Info("HF_TOKEN not set; skipping dataset creation",
			zap.String("dataset", cfg.Dataset.ID),
		)
		return
	}

	store := dataset.NewStore(cfg.Dataset, cfg.Hub.BaseURL, cfg.Hub.Timeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.CreateRepo(ctx); err != nil {
		logger.Error("Dataset creation failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Println("Add these to your environment to enable snapshot writes:")
	fmt.Printf("  WRAPPED_DATASET_ID=%q\n", cfg.Dataset.ID)
	fmt.Println("  WRAPPED_DATASET_WRITE=true")
	fmt.Println("  HF_TOKEN=<token with write access>")
}
