package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/internal/handler"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/server"
	"github.com/MKhiriev/go-secure-store/internal/service"
	"github.com/MKhiriev/go-secure-store/internal/store"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional, real deployments pass the environment directly
	_ = godotenv.Load()

	log := logger.NewLogger("secure-store-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	key, err := loadKeyMaterial(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading encryption key material")
	}

	cipher, err := crypto.NewCipherService(key)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cipher service")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	objectStorage, err := store.NewS3Storage(ctx, cfg.Storage.S3, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to object storage")
	}

	storages := store.NewStorages(db, objectStorage, log)
	services := service.NewServices(storages, cipher, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// loadKeyMaterial resolves the process-wide AES-256 key. A hex-encoded key
// takes precedence; otherwise the key is derived from the master passphrase
// and salt.
func loadKeyMaterial(cfg config.App) ([]byte, error) {
	if cfg.EncryptionKey != "" {
		return crypto.ParseKey(cfg.EncryptionKey)
	}
	if cfg.MasterPassphrase != "" && cfg.KeySalt != "" {
		return crypto.DeriveKey(cfg.MasterPassphrase, cfg.KeySalt)
	}

	return nil, fmt.Errorf("no encryption key material is configured")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
