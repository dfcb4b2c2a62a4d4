package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"applicant-intake/intake"
	"applicant-intake/intake/application"
	"applicant-intake/intake/domain"
	"applicant-intake/intake/infra"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	cfg, err := readConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	store := infra.NewMemoryStore()

	var (
		statsStore  domain.StatsStore
		statsReader domain.StatsReader
	)
	if cfg.statsEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.statsRedisAddr,
			Password: cfg.statsRedisPassword,
			DB:       cfg.statsRedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		cancel()
		if err != nil {
			log.Fatalf("redis stats ping error: %v", err)
		}

		rs := infra.NewRedisStatsStore(
			rdb,
			infra.WithStatsPrefix(cfg.statsPrefix),
			infra.WithStatsTTL(cfg.statsTTL),
			infra.WithStatsBucket(cfg.statsBucket),
		)
		statsStore, statsReader = rs, rs
	} else {
		ms := infra.NewMemoryStatsStore()
		statsStore, statsReader = ms, ms
	}

	admission := &application.Admission{
		Pool:    infra.NewChanPool(cfg.concurrencyMax),
		Timeout: cfg.concurrencyTimeout,
	}

	s, err := intake.New(intake.Config{
		Registration: application.NewRegistrationService(store, statsStore),
		Listing:      application.ListingService{Store: store},
		Stats:        application.StatsService{Reader: statsReader},
		Admission:    admission,
		Static:       intake.StaticOptions{Dir: cfg.staticDir, Index: cfg.staticIndex},
	})
	if err != nil {
		log.Fatalf("server setup error: %v", err)
	}
	defer func() { _ = s.Close() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.listenAddr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	log.Printf("intake listening on %s", cfg.listenAddr)
	log.Printf("static: dir=%q index=%q", cfg.staticDir, cfg.staticIndex)
	log.Printf("stats: redis=%v redisAddr=%q bucket=%q ttl=%s", cfg.statsEnabled, cfg.statsRedisAddr, cfg.statsBucket, cfg.statsTTL)
	log.Printf("concurrency: max=%d acquireTimeout=%s", cfg.concurrencyMax, cfg.concurrencyTimeout)

	ln, err := net.Listen("tcp", cfg.listenAddr)
	if err != nil {
		log.Fatalf("listen error: %v", err)
	}
	if err := serve(ctx, srv, ln, 10*time.Second); err != nil {
		log.Fatalf("server error: %v", err)
	}
	log.Printf("intake stopped")
}

// serve atende em ln até ctx encerrar e então drena as requisições em
// andamento por até grace. Só retorna depois que o Shutdown terminou.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration) error {
	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	// Serve volta assim que o Shutdown começa; espera o dreno terminar
	if err := <-done; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
