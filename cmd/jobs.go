package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/emrgen/resourcesync/internal/jobs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

func jobsCmd() *cobra.Command {
	var metricsAddr string

	command := &cobra.Command{
		Use:     "jobs",
		Short:   "run the scheduled backfill",
		Long:    `run the backfill on the configured cron schedule until interrupted`,
		Example: "resources jobs --metrics-addr :9090",
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := cnf.BackfillKinds()
			if err != nil {
				return err
			}

			a, err := newApp(cnf, prometheus.DefaultRegisterer)
			if err != nil {
				return err
			}
			defer a.close()

			task := jobs.NewBackfillTask(a.service, a.store, kinds, cnf.Backfill.Schedule, cnf.Backfill.BatchSize, cnf.Backfill.Concurrency)
			executor := jobs.NewTaskExecutor(nil, []jobs.CronJob{task})
			if err := executor.Run(); err != nil {
				return err
			}
			defer executor.Stop()
			logrus.Infof("backfill scheduled %s", task.Schedule())

			var server *http.Server
			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				server = &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
				go func() {
					logrus.Infof("serving metrics on %s", metricsAddr)
					if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logrus.Errorf("metrics server failed: %v", err)
					}
				}()
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, unix.SIGINT, unix.SIGTERM)
			<-sig
			logrus.Infof("shutting down")

			if server != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = server.Shutdown(ctx)
			}

			return nil
		},
	}

	command.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve prometheus metrics on")

	return command
}
