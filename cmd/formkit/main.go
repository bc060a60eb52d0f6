package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "formkit",
	Short: "formkit - contact form endpoint and client",
	Long: `formkit validates, sanitizes and rate-limits contact form submissions
and delivers them by email.

  formkit serve                       # run the HTTP endpoint
  formkit submit --endpoint URL ...   # check a submission locally, then post it`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if len(envFiles) == 0 {
			return nil
		}
		return config.LoadEnv(envFiles...)
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load, later files win")
	rootCmd.AddCommand(serveCmd(), submitCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
