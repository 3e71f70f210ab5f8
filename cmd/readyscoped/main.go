// Command readyscoped is the Readyscope platform service.
// It accepts assessments over HTTP, persists engagement records in Postgres,
// stores assessment and report blobs, and serves stored results.
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/readyscope/readyscope/internal/api"
	"github.com/readyscope/readyscope/internal/engagement"
	"github.com/readyscope/readyscope/internal/platform"
	"github.com/readyscope/readyscope/internal/store"
	"github.com/readyscope/readyscope/pkg/scoring"
)

type config struct {
	Port        string
	DatabaseURL string
	APIKey      string
	GCSBucket   string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	LocalPath   string
}

func loadConfig() config {
	return config{
		Port:        envOrDefault("PORT", "8080"),
		DatabaseURL: envOrDefault("DATABASE_URL", "postgres://localhost:5432/readyscope?sslmode=disable"),
		APIKey:      os.Getenv("API_KEY"),
		GCSBucket:   os.Getenv("GCS_BUCKET"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    os.Getenv("S3_REGION"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		LocalPath:   envOrDefault("LOCAL_STORAGE_PATH", "/tmp/readyscope-data"),
	}
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := loadConfig()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("ping database", zap.Error(err))
	}

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatal("run migrations", zap.Error(err))
	}

	storage, err := buildStorage(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("initialize storage", zap.Error(err))
	}

	engagementSvc := engagement.NewService(db)
	engine := scoring.NewEngine()

	handler := api.NewHandler(db, engagementSvc, storage, engine, log)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(api.APIKeyAuth(cfg.APIKey)(mux)),
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting readyscoped", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

// buildStorage selects the blob storage backend from the environment:
// GCS if GCS_BUCKET is set, S3 if S3_BUCKET is set, local disk otherwise.
func buildStorage(ctx context.Context, cfg config, log *zap.Logger) (store.StorageClient, error) {
	switch {
	case cfg.GCSBucket != "":
		log.Info("using GCS storage", zap.String("bucket", cfg.GCSBucket))
		return store.NewGCSStorage(ctx, cfg.GCSBucket)
	case cfg.S3Bucket != "":
		log.Info("using S3 storage", zap.String("bucket", cfg.S3Bucket))
		return store.NewS3Storage(ctx, store.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		log.Info("using local storage", zap.String("path", cfg.LocalPath))
		return store.NewLocalStorage(cfg.LocalPath), nil
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
