package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/Quaxww/tmk-store/internal/bot"
	"github.com/Quaxww/tmk-store/internal/config"
	"github.com/Quaxww/tmk-store/internal/dialog"
	"github.com/Quaxww/tmk-store/internal/domain/catalog"
	"github.com/Quaxww/tmk-store/internal/domain/orders"
	"github.com/Quaxww/tmk-store/internal/domain/users"
	"github.com/Quaxww/tmk-store/internal/infra/db"
	httpx "github.com/Quaxww/tmk-store/internal/infra/http"
	"github.com/Quaxww/tmk-store/internal/infra/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

// loadCatalog собирает каталог из пяти справочников. Ошибка данных не
// роняет сервис: витрина живёт с пустым каталогом и видимым предупреждением.
func loadCatalog(ctx context.Context, cfg config.Config, log *slog.Logger) []catalog.Product {
	var (
		ds  catalog.Datasets
		err error
	)
	if cfg.Data.Dir != "" {
		ds, err = catalog.LoadDir(cfg.Data.Dir)
	} else {
		ds, err = catalog.NewLoader(cfg.Data.BaseURL, nil).LoadAll(ctx)
	}
	if err != nil {
		log.Error("catalog load failed, serving empty catalog", "err", err)
		return nil
	}
	products, err := catalog.Build(ds)
	if err != nil {
		log.Error("catalog build failed, serving empty catalog", "err", err)
		return nil
	}
	log.Info("catalog ready", "products", len(products))
	return products
}

func main() {
	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	products := loadCatalog(ctx, cfg, log)

	ordersRepo := orders.NewRepo(pool)
	usersRepo := users.NewRepo(pool)
	statesRepo := dialog.NewRepo(pool)

	api := httpx.NewAPI(log, ordersRepo, products)
	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, api)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	if cfg.Telegram.Token != "" {
		tg, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			log.Error("telegram init failed", "err", err)
		} else {
			var intake *orders.Client
			if cfg.Intake.URL != "" {
				intake = orders.NewClient(cfg.Intake.URL, nil)
			}
			b := bot.New(tg, log, usersRepo, statesRepo, ordersRepo, intake, cfg.Telegram.AdminChatID)
			go func() {
				if err := b.Run(ctx, 30); err != nil && ctx.Err() == nil {
					log.Error("bot stopped", "err", err)
				}
			}()
			log.Info("telegram bot started", "account", tg.Self.UserName)
		}
	}

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
