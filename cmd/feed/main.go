package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"HomerunOdds/internal/aggregator"
	"HomerunOdds/internal/config"
	"HomerunOdds/internal/export"
	"HomerunOdds/internal/merge"
	"HomerunOdds/internal/notifier"
	"HomerunOdds/internal/provider"
	"HomerunOdds/internal/recorder"
	"HomerunOdds/internal/scheduler"
	"HomerunOdds/internal/store"

	"github.com/redis/go-redis/v9"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] HomerunOdds starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	loc := cfg.Location()

	// Init fetcher
	fetcher := provider.NewOddsAPIFetcher(cfg.OddsAPI.BaseURL, cfg.OddsAPI.APIKey,
		cfg.OddsAPI.Sport, cfg.OddsAPI.Markets, cfg.OddsAPI.Regions)
	log.Printf("[INFO] odds source: %s (%s/%s)", fetcher.Name(), cfg.OddsAPI.Sport, cfg.OddsAPI.Markets)

	// Init daily cache store
	var st store.Store
	if cfg.Cache.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		st = store.NewRedisStore(client, cfg.Cache.RedisKey)
		log.Printf("[INFO] daily cache: redis %s key %s", cfg.Cache.RedisAddr, cfg.Cache.RedisKey)
	} else {
		st = store.NewFileStore(cfg.Cache.File)
		log.Printf("[INFO] daily cache: file %s", cfg.Cache.File)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if !tn.Enabled() {
		log.Println("[INFO] telegram notifications disabled (no bot token)")
	}

	agg := aggregator.New(cfg.OddsAPI.Markets, loc)
	merger := merge.NewEngine(st, loc, nil)
	exporter := export.NewExporter(cfg.Export.Dir, cfg.OddsAPI.Sport, cfg.OddsAPI.Markets, cfg.Timezone)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, fetcher, agg, merger, exporter, rec, tn)
	if err := sched.RegisterAll(cfg.Schedule.UpdateCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing update cycle now")
		go sched.RunUpdateNow()
	}

	log.Println("[INFO] HomerunOdds is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] HomerunOdds stopped")
}
