package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/dadddeck/deck-bot-discord/internal/clients/dadddeck"
	"github.com/dadddeck/deck-bot-discord/internal/config"
	handlers "github.com/dadddeck/deck-bot-discord/internal/handlers/discord"
	"github.com/dadddeck/deck-bot-discord/internal/repositories/collections"
	"github.com/dadddeck/deck-bot-discord/internal/services"
	"github.com/dadddeck/deck-bot-discord/internal/services/advantage"
	"github.com/dadddeck/deck-bot-discord/internal/services/upgrade"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	// A broken advantage relation would corrupt every matchup, so refuse to start
	if err := advantage.Standard().Validate(); err != nil {
		log.Fatalf("Advantage table failed validation: %v", err)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	// Create DadDeck catalog client
	catalogClient, err := dadddeck.New(&dadddeck.Config{
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL: cfg.Catalog.BaseURL,
		APIKey:  cfg.Catalog.APIKey,
	})
	if err != nil {
		log.Fatalf("Failed to create DadDeck client: %v", err)
	}

	// Snapshot the catalog for craft output selection
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	catalog, err := catalogClient.ListAllCards(ctx, nil)
	cancel()
	if err != nil {
		log.Fatalf("Failed to load card catalog: %v", err)
	}
	log.Printf("Loaded %d card definitions from the catalog", len(catalog))

	providerConfig := &services.ProviderConfig{
		CatalogClient: catalogClient,
		Catalog:       catalog,
		UpgradeConfig: &upgrade.Config{
			MaxLevel:             cfg.Economy.MaxLevel,
			CostPerLevel:         cfg.Economy.CostPerLevel,
			StatIncreasePerLevel: cfg.Economy.StatIncreasePerLevel,
		},
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis, falling back to in-memory persistence
	log.Printf("Connecting to Redis at: %s", cfg.Redis.Address)
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	pingErr := redisClient.Ping(pingCtx).Err()
	pingCancel()

	if pingErr != nil {
		log.Printf("Failed to connect to Redis: %v", pingErr)
		log.Println("Falling back to in-memory collections (state is lost on restart)")
		_ = redisClient.Close()
		redisClient = nil
	} else {
		repo, repoErr := collections.NewRedisRepository(&collections.RedisRepoConfig{
			Client: redisClient,
		})
		if repoErr != nil {
			log.Fatalf("Failed to create collection repository: %v", repoErr)
		}
		providerConfig.CollectionRepository = repo
		log.Println("Using Redis for persistence")
	}

	// Create service provider
	serviceProvider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	// Create Discord handler
	handler := handlers.NewHandler(&handlers.HandlerConfig{
		ServiceProvider: serviceProvider,
	})

	// Register interaction handler
	dg.AddHandler(handler.HandleInteraction)

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Register commands
	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
