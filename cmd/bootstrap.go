package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/cache"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/catalog"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/metrics"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/payment"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/repository"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/service"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}
	return cfg
}

func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.Driver, err)
	}
	return db, nil
}

func newPaymentService(cfg config.PaymentConfig) payment.Service {
	if cfg.Provider == config.PaymentProviderStripe {
		return payment.NewStripeService(cfg.StripeSecretKey)
	}
	return payment.NewStubService(cfg.StubDelay)
}

// newGateCache returns a no-op cache when Redis is not configured. The
// returned close func is always safe to call.
func newGateCache(cfg config.RedisConfig) (cache.GateCache, func()) {
	if cfg.Addr == "" {
		return cache.NoopGateCache{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).WithField("addr", cfg.Addr).Warn("Redis unreachable, gate cache will retry per request")
	}

	return cache.NewRedisGateCache(client, cfg.KeyPrefix), func() {
		if err := client.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close redis client")
		}
	}
}

// mustCreateSubscriptionService wires the service and returns a cleanup func
// releasing the database and cache connections.
func mustCreateSubscriptionService(cfg *config.Config, collector *metrics.Collector) (*service.SubscriptionService, func()) {
	db, err := openDatabase(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	gateCache, closeCache := newGateCache(cfg.Redis)
	subscriptionService := service.NewSubscriptionService(
		repository.NewInvestorRepository(db, cfg.Database.Driver),
		repository.NewSubscriptionRecordRepository(db, cfg.Database.Driver),
		repository.NewTransactor(db),
		newPaymentService(cfg.Payment),
		gateCache,
		catalog.New(cfg.Payment.Currency),
		collector,
		cfg.Subscriptions,
	)

	cleanup := func() {
		closeCache()
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}
	return subscriptionService, cleanup
}
