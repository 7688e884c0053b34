package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/nihongobot/internal/bot"
	"github.com/example/nihongobot/internal/catalog"
	"github.com/example/nihongobot/internal/database"
	"github.com/example/nihongobot/internal/progress"
	"github.com/example/nihongobot/internal/scheduler"
	"github.com/joho/godotenv"

	aiclient "github.com/example/nihongobot/internal/ai"
)

func main() {
	// Optional .env for local runs
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect the persistence substrate. When it is unavailable the
	// tracker keeps progress in memory for the session instead of
	// failing.
	var store progress.Store
	if err := database.Connect(); err != nil {
		log.Printf("Database unavailable, keeping progress in memory only: %v", err)
	} else {
		defer database.Close()
		store = database.NewProgressRepository()
	}

	tracker := progress.New(store)

	cat := catalog.New()
	if path := os.Getenv("VOCAB_FILE"); path != "" {
		config := catalog.DefaultImportConfig()
		config.FilePath = path
		result, err := cat.ImportVocabulary(config)
		if err != nil {
			log.Printf("Failed to import vocabulary from %s: %v", path, err)
		} else {
			log.Printf("Imported vocabulary: %d added, %d updated, %d errors",
				result.Added, result.Updated, len(result.Errors))
		}
	}

	var tutor *aiclient.Client
	if client, err := aiclient.New(); err != nil {
		log.Printf("AI tutor disabled: %v", err)
	} else {
		tutor = client
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	b, err := bot.New(token, tracker, cat, tutor, bot.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	sched := scheduler.New(tracker, b)
	sched.Start()
	defer sched.Stop()

	done := make(chan struct{})

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := b.Stop(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		close(done)
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	go func() {
		if err := b.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("Bot error: %v", err)
		}
	}()

	<-done
	log.Println("Bot stopped successfully")
}
