package cmd

import (
	"os"

	"github.com/emrgen/resourcesync/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cnf        *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "resources",
	Short: "resource link reconciliation tool",
	Example: `resources db migrate
resources sync objective 42 --url https://example.com/guide
resources list activityReportObjective 7 8 --all
resources resolve https://example.com/guide
resources backfill --kind nextStep
resources jobs --metrics-addr :9090`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cnf, err = config.Load(configPath)
		} else {
			cnf, err = config.LoadConfig()
		}
		if err != nil {
			return err
		}

		logrus.SetLevel(cnf.LogLevel())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $RESOURCES_CONFIG or config.yml)")

	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(backfillCmd())
	rootCmd.AddCommand(jobsCmd())
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}
