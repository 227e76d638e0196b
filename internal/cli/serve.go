package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/faisalmelhim/AI-Hackathon/internal/api/handlers"
	"github.com/faisalmelhim/AI-Hackathon/internal/config"
	"github.com/faisalmelhim/AI-Hackathon/internal/openai"
	"github.com/faisalmelhim/AI-Hackathon/internal/server"
	"github.com/faisalmelhim/AI-Hackathon/internal/service"
	"github.com/faisalmelhim/AI-Hackathon/internal/telemetry"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the investment analysis API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.SentryDSN != "" {
		// Default to 10% sampling in production, 100% in development
		sampleRate := 0.1
		if cfg.Environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			TracesSampleRate: sampleRate,
			Debug:            cfg.Debug,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	portFlag, _ := cmd.Flags().GetString("port")
	if portFlag != "" && portFlag != "8080" {
		cfg.Port = portFlag
	}

	// Process-lifetime state, owned here and injected into the services.
	registry := service.NewDocumentRegistry()
	index := service.NewChunkIndex()
	cache := service.NewAnalysisCache()

	var embedder service.Embedder
	var chat service.ChatClient
	if cfg.OfflineMode {
		embedder = service.NewHashEmbedder()
		log.Println("offline mode: using deterministic hash embeddings")
	} else {
		client := openai.NewClient(cfg.OpenAIAPIKey)
		embedder = client
		chat = client
	}
	if chat == nil {
		// Offline mode still serves upload, retrieval and DCF; the
		// generation-backed endpoints fail with a clear error.
		if cfg.HasOpenAI() {
			chat = openai.NewClient(cfg.OpenAIAPIKey)
		} else {
			chat = unavailableChat{}
		}
	}

	ingestSvc := service.NewIngestService(index, registry, embedder)
	generationSvc := service.NewGenerationService(chat)
	analysisSvc := service.NewAnalysisService(registry, index, generationSvc, service.NewShariaScreen(), embedder, cache)
	memoSvc := service.NewMemoService(cache, chat)
	dcfSvc := service.NewDCFService()

	router := server.NewRouter(server.RouterConfig{
		UploadHandler:   handlers.NewUploadHandler(ingestSvc),
		AnalyzeHandler:  handlers.NewAnalyzeHandler(analysisSvc),
		MemoHandler:     handlers.NewMemoHandler(memoSvc),
		ModelingHandler: handlers.NewModelingHandler(dcfSvc),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}
