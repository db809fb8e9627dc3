package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/metrics"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/service"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var expireWorker bool

var expireCmd = &cobra.Command{
	Use:   "expire",
	Short: "Clear subscription flags of investors whose subscription has lapsed",
	Long: "Reconcile investor subscription flags against their expiry. Reads through the access gate " +
		"already correct stale flags lazily; this job keeps flags fresh for investors nobody checks.",
	Run: func(_ *cobra.Command, _ []string) {
		runCommand(
			"expire_subscriptions",
			expireWorker,
			func(cfg *config.Config) time.Duration { return cfg.Jobs.ExpirationCheckInterval },
			func(s *service.SubscriptionService, ctx context.Context) error {
				return s.RunExpirationBatch(ctx)
			},
		)
	},
}

func init() {
	rootCmd.AddCommand(expireCmd)

	expireCmd.Flags().BoolVar(&expireWorker, "worker", false, "Run continuously using configured interval")
}

func runCommand(
	name string,
	worker bool,
	intervalResolver func(cfg *config.Config) time.Duration,
	fn func(s *service.SubscriptionService, ctx context.Context) error,
) {
	cfg := mustLoadConfig()
	subscriptionService, cleanup := mustCreateSubscriptionService(cfg, metrics.NewCollector())
	defer cleanup()

	if worker {
		runWorker(name, intervalResolver(cfg), subscriptionService, fn)
		return
	}

	runJob(name, func() error { return fn(subscriptionService, context.Background()) })
}

func runWorker(
	name string,
	interval time.Duration,
	subscriptionService *service.SubscriptionService,
	fn func(s *service.SubscriptionService, ctx context.Context) error,
) {
	if interval <= 0 {
		logrus.WithField("job", name).Fatal("invalid worker interval")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logrus.WithField("job", name).WithField("interval", interval.String()).Info("Worker started")
	runJob(name, func() error { return fn(subscriptionService, ctx) })

	for {
		select {
		case <-ctx.Done():
			logrus.WithField("job", name).Info("Worker shutdown requested")
			return
		case <-ticker.C:
			runJob(name, func() error { return fn(subscriptionService, ctx) })
		}
	}
}

func runJob(name string, fn func() error) {
	start := time.Now()
	err := fn()
	latency := time.Since(start)

	entry := logrus.WithFields(logrus.Fields{
		"job":        name,
		"latency":    latency.String(),
		"latency_ns": latency.Nanoseconds(),
	})
	if err != nil {
		entry.WithError(err).Error("job_failed")
		return
	}
	entry.Info("job_completed")
}
