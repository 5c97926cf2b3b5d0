package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/client"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/config"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/interaction"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/logger"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/scraper"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/storage"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/ui"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 VacancySleuth Usage Examples 📋")
	fmt.Println("\n1. Start the interactive search with the default settings:")
	fmt.Println("   vacancysleuth")

	fmt.Println("\n2. Use a custom config file and silence the banner:")
	fmt.Println("   vacancysleuth -config ./config.yaml -silence")

	fmt.Println("\n3. Route API requests through a proxy and echo logs to the console:")
	fmt.Println("   vacancysleuth -proxy http://localhost:8080 -debug")

	fmt.Println("\n4. Override the API address and export directory from the environment:")
	fmt.Println("   HH_API_URL=https://api.hh.ru VACANCIES_DATA_DIR=./exports vacancysleuth")
	os.Exit(0)
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	proxyURL := flag.String("proxy", "", "Proxy URL to use (overrides the config)")
	debug := flag.Bool("debug", false, "Echo log records to the console")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	ui.PrintBanner(os.Stdout, *silence || *noBanner)

	if *examples {
		printExamples()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if *proxyURL != "" {
		cfg.API.ProxyURL = *proxyURL
	}

	lg, err := logger.New(logger.Options{
		Dir:        cfg.Logging.Dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Console:    *debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
		lg = logger.Nop()
	}
	defer lg.Close()

	hh := scraper.NewHH(scraper.Options{
		BaseURL:           cfg.API.BaseURL,
		UserAgent:         cfg.API.UserAgent,
		PerPage:           cfg.Search.PerPage,
		MaxPages:          cfg.Search.MaxPages,
		OnlyWithSalary:    cfg.Search.OnlyWithSalary,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		HTTPClient:        client.CreateProxyHTTPClient(cfg.API.ProxyURL, cfg.API.Timeout),
		Progress:          os.Stdout,
		Logger:            lg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// the first interrupt cancels the running search; a second one kills the process
		<-ctx.Done()
		stop()
	}()

	app := interaction.New(interaction.Options{
		Config: cfg,
		Source: hh,
		Areas:  storage.NewAreaFileWorker(cfg.Storage.AreasFile, hh),
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: lg,
	})
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		lg.Error("program stopped", "error", err)
		log.Fatalf("Error: %v", err)
	}
}
