package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lernexhq/lernex/internal/config"
	"github.com/lernexhq/lernex/internal/notifications"
	"github.com/lernexhq/lernex/internal/observability"
	"github.com/lernexhq/lernex/internal/queue/notifyq"
	"github.com/lernexhq/lernex/internal/queue/redisclient"
	"github.com/lernexhq/lernex/internal/queue/worker"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	defer stop()

	if cfg.RedisAddr == "" {
		log.Error("REDIS_ADDR is required for the notification worker")
		os.Exit(1)
	}

	rdb := redisclient.New(redisclient.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	defer rdb.Close()

	if err := rdb.Ping(ctx); err != nil {
		log.Error("redis connect failed", "err", err)
		os.Exit(1)
	}

	queue := notifyq.New(rdb.Raw())
	notifier := notifications.NewLogNotifier(log)

	host, _ := os.Hostname()
	workerID := host + "-" + strconv.Itoa(os.Getpid())

	registry := prometheus.NewRegistry()
	metrics := observability.NewProm(registry)

	// metrics-only listener; the worker has no other HTTP surface
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics listener failed", "err", err)
		}
	}()

	w := worker.New(worker.Config{
		WorkerID: workerID,
		PollWait: 2 * time.Second,
		Metrics:  metrics,
	}, queue, notifier, log)

	log.Info("worker has started", "worker_id", workerID)

	if err := w.Run(ctx); err != nil {
		log.Error("worker stopped with error", "err", err)
	}

	log.Info("worker shutdown complete")
}
