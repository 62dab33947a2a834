// Package root contains the root command for the application
package root

import (
	"cofrim/internal/config"
	"cofrim/internal/interpreter"
	"cofrim/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// DataFile overrides the configured snapshot file when set via --data
	DataFile string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "cofrim",
		Short: "A conversational personal-finance ledger.",
		Long: `cofrim records and queries personal financial transactions from
free-form Portuguese sentences. Use "cofrim chat" for the conversational
mode and the banks/movements/groups/entries commands to administer the
reference catalogs and the ledger.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cofrim!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Set the configured logger for all packages
			store.SetLogger(Log)
			interpreter.SetLogger(Log)
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataFile, "data", "d", "", "Snapshot file (overrides configured data.file)")
}

// OpenStore loads the snapshot, seeds missing default catalogs and persists
// the result, mirroring what the application has always done at startup.
func OpenStore() (*store.Store, error) {
	path := DataFile
	if path == "" {
		path = Cfg.Data.File
	}

	st := store.New(path)
	if err := st.Load(); err != nil {
		return nil, err
	}
	if st.SeedDefaults() {
		if err := st.Save(); err != nil {
			return nil, err
		}
	}
	return st, nil
}
