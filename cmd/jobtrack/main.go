package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverAddr string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:           "jobtrack",
	Short:         "Track job applications from the command line",
	Long:          "jobtrack is a CLI for a running jobtrack server.\nPoint it at the server with --addr or the JOBTRACK_ADDR environment variable.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", defaultAddr(), "base URL of the jobtrack server")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(listCmd, showCmd, addCmd, editCmd, deleteCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func defaultAddr() string {
	if addr := os.Getenv("JOBTRACK_ADDR"); addr != "" {
		return addr
	}
	return "http://localhost:8080"
}
