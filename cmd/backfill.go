package cmd

import (
	"github.com/emrgen/resourcesync/internal/jobs"
	"github.com/emrgen/resourcesync/internal/model"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func backfillCmd() *cobra.Command {
	var kinds []string
	var batchSize int
	var concurrency int

	command := &cobra.Command{
		Use:     "backfill",
		Short:   "resync every parent",
		Long:    `rescan the text of every parent, keeping explicitly attached resources`,
		Example: "resources backfill --kind objective --kind nextStep --batch-size 500",
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := backfillKinds(kinds)
			if err != nil {
				return err
			}
			if batchSize <= 0 {
				batchSize = cnf.Backfill.BatchSize
			}
			if concurrency <= 0 {
				concurrency = cnf.Backfill.Concurrency
			}

			a, err := newApp(cnf, nil)
			if err != nil {
				return err
			}
			defer a.close()

			task := jobs.NewBackfillTask(a.service, a.store, selected, cnf.Backfill.Schedule, batchSize, concurrency)
			n, err := task.Backfill(cmd.Context())
			if err != nil {
				color.Red("backfill stopped after %d parents", n)
				return err
			}

			color.Green("resynced %d parents", n)
			return nil
		},
	}

	command.Flags().StringSliceVarP(&kinds, "kind", "k", nil, "parent kind to backfill, repeatable (default from config)")
	command.Flags().IntVar(&batchSize, "batch-size", 0, "parents per batch (default from config)")
	command.Flags().IntVar(&concurrency, "concurrency", 0, "parents resynced at once (default from config)")
	command.Flags().SortFlags = false

	return command
}

// backfillKinds parses names, falling back to the configured kinds.
func backfillKinds(names []string) ([]model.ParentKind, error) {
	if len(names) == 0 {
		return cnf.BackfillKinds()
	}

	kinds := make([]model.ParentKind, 0, len(names))
	for _, name := range names {
		kind, err := parseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}

	return kinds, nil
}
