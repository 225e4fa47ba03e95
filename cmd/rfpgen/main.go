// File path: cmd/rfpgen/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rfplab/rfpgen/internal/api"
	"github.com/rfplab/rfpgen/internal/common"
	"github.com/rfplab/rfpgen/internal/enrich"
	"github.com/rfplab/rfpgen/internal/llm"
	"github.com/rfplab/rfpgen/internal/notify"
	"github.com/rfplab/rfpgen/internal/store"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("rfpgen: .env file not loaded", "error", err)
	} else {
		logger.Info("rfpgen: environment loaded from .env")
	}

	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", "", "path to the SQLite lead database (overrides RFPGEN_DB_PATH)")
	flag.Parse()

	logger.Info("rfpgen: startup initiated", "addr", *addr)

	llmCfg := llm.LoadConfig()
	provider := llm.NewProvider(llmCfg)
	logger.Info("rfpgen: chat provider selected", "provider", provider.Name())

	storeCfg := store.LoadConfig()
	if trimmed := strings.TrimSpace(*dbPath); trimmed != "" {
		storeCfg.Path = trimmed
	}
	st, err := store.Open(storeCfg)
	if err != nil {
		logger.Error("rfpgen: store open failed", "error", err)
		fmt.Println("store error:", err)
		os.Exit(1)
	}
	defer st.Close()

	saver := store.NewSaver(st)
	defer saver.Close()

	notifier := notify.New(os.Getenv("RFPGEN_WEBHOOK_URL"))
	if notifier.Enabled() {
		logger.Info("rfpgen: webhook notifications enabled")
	}

	var enricher *enrich.Enricher
	if llmCfg.APIKey != "" {
		enricher = enrich.New(provider, llmCfg.Timeout)
	} else {
		logger.Info("rfpgen: model enrichment disabled; deterministic replies only")
	}

	server, err := api.NewServer(provider, enricher, st, saver, notifier)
	if err != nil {
		logger.Error("rfpgen: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("rfpgen: listening", "addr", *addr, "db", storeCfg.Path)
	fmt.Printf("rfpgen listening on %s\n", *addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("rfpgen: server terminated", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}
}
