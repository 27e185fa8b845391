package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"

	"github.com/bejranonda/ThaiGov2569/internal/config"
	"github.com/bejranonda/ThaiGov2569/internal/dataset"
	"github.com/bejranonda/ThaiGov2569/internal/domain/repository"
	"github.com/bejranonda/ThaiGov2569/internal/interface/gateway/ai"
	firestoreGateway "github.com/bejranonda/ThaiGov2569/internal/interface/gateway/firestore"
	"github.com/bejranonda/ThaiGov2569/internal/interface/gateway/rediscache"
	"github.com/bejranonda/ThaiGov2569/internal/interface/handler"
	"github.com/bejranonda/ThaiGov2569/internal/usecase"
)

func main() {
	ctx := context.Background()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	// Firestore is optional. Without a project the server still answers
	// chat requests; stats run in degraded mode.
	// With FIRESTORE_EMULATOR_HOST set the client connects to the
	// emulator automatically.
	var firestoreClient *firestore.Client
	if cfg.GCPProject != "" {
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.GCPProject})
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		firestoreClient, err = app.Firestore(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize Firestore: %v", err)
		}
		defer firestoreClient.Close()
	} else {
		slog.Warn("no GCP project configured, stats persistence disabled")
	}

	h, cleanup := initializeHandler(ctx, cfg, firestoreClient)
	defer cleanup()

	mux := http.NewServeMux()
	setupRoutes(mux, h)

	slog.Info("server starting", slog.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initializeHandler wires the dependencies and returns the handler plus
// a cleanup for the AI client.
func initializeHandler(ctx context.Context, cfg *config.Config, firestoreClient *firestore.Client) (*handler.Handler, func()) {
	data := dataset.MustLoad()

	// Repository and cache
	var sessionRepo repository.SessionRepository
	if firestoreClient != nil {
		sessionRepo = firestoreGateway.NewSessionRepository(firestoreClient)
	}
	statsCache := rediscache.NewAggregateCache(cfg.RedisURL, cfg.StatsCacheTTL)

	// AI clients, primary then fallback
	gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	openRouter := ai.NewOpenRouterClient(ai.OpenRouterOptions{
		APIKey:   cfg.OpenRouterAPIKey,
		Endpoint: cfg.OpenRouterURL,
		Model:    cfg.OpenRouterModel,
		Referer:  cfg.OpenRouterReferer,
		Title:    cfg.OpenRouterTitle,
	})
	gateway := ai.NewGateway(gemini, openRouter)

	// UseCase
	prompts := usecase.NewPromptBuilder(data.Parties, data.Ministries, data.Policies)
	askQuestionUC := usecase.NewAskQuestionUseCase(gateway, prompts, data.Parties)
	recordSessionUC := usecase.NewRecordSessionUseCase(sessionRepo, statsCache)
	getAggregateUC := usecase.NewGetAggregateUseCase(sessionRepo, statsCache, cfg.StatsReadTimeout)

	h := handler.NewHandler(askQuestionUC, recordSessionUC, getAggregateUC)
	cleanup := func() {
		if err := gemini.Close(); err != nil {
			slog.Warn("failed to close Gemini client", slog.Any("error", err))
		}
	}
	return h, cleanup
}

// setupRoutes configures routing.
func setupRoutes(mux *http.ServeMux, h *handler.Handler) {
	// POST /api/chat - debate question
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		if handler.HandleCORS(w, r) {
			return
		}
		h.Chat(w, r)
	})

	// POST /api/stats - record session, GET /api/stats - public aggregate
	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		if handler.HandleCORS(w, r) {
			return
		}
		h.Stats(w, r)
	})

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if handler.HandleCORS(w, r) {
			return
		}
		h.Health(w, r)
	})
}
