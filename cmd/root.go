package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reldb",
	Short: "An embedded in-memory SQL database with file-backed snapshots",
	Long: `reldb is a single-process relational store with a small SQL dialect.

Examples:

  reldb repl
  reldb repl --load data.ydb --save data.ydb
  reldb serve --port 8080
  reldb serve --port 8081 --replica-of http://localhost:8080
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is fine; environment variables still apply.
		_ = godotenv.Load()
	},
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(serveCmd)
}

// envInt reads an integer environment override, falling back to def.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
