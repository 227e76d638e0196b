package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faisalmelhim/AI-Hackathon/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "investd",
		Short: "Investment document analysis daemon",
		Long:  "Daemon for ingesting company documents, running retrieval-backed analysis with Sharia screening, and generating investment memos",
	}

	rootCmd.AddCommand(cli.ServeCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
