package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kusamnavya/shopping-cart/internal/app"
	"github.com/kusamnavya/shopping-cart/internal/config"
	"github.com/kusamnavya/shopping-cart/internal/events"
	"github.com/kusamnavya/shopping-cart/internal/handler"
	"github.com/kusamnavya/shopping-cart/internal/postgres"
	"github.com/kusamnavya/shopping-cart/internal/repo"
	"github.com/kusamnavya/shopping-cart/internal/service"
	"github.com/kusamnavya/shopping-cart/pkg/cache"
	"github.com/kusamnavya/shopping-cart/pkg/trm"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	cartService := service.NewCartService(logger, txManager, store, store)
	orderService := service.NewOrderService(logger, txManager, store, store, store, store, orderCache, publisher)

	httpHandler := handler.NewHTTPHandler(logger, cartService, orderService)
	handler.RegisterMetrics()

	application := app.New(logger, conf)
	application.SetHTTPHandlers(httpHandler)
	application.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	orderCache.StartJanitor(ctx)
	application.Start(ctx)

	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
