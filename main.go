package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cofrim/cmd/banks"
	"cofrim/cmd/chat"
	"cofrim/cmd/entries"
	"cofrim/cmd/export"
	"cofrim/cmd/groups"
	"cofrim/cmd/movements"
	"cofrim/cmd/root"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logging happens
	configureLogLevelDirectly()

	// 3. Initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(chat.Cmd)
	root.Cmd.AddCommand(banks.Cmd)
	root.Cmd.AddCommand(movements.Cmd)
	root.Cmd.AddCommand(groups.Cmd)
	root.Cmd.AddCommand(entries.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
