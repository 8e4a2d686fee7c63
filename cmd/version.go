package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftlint/driftlint/internal/version"
)

var versionFormat string

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "output format (text, json)")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	info := version.Get()

	if versionFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Println(info.String())
	fmt.Printf("  commit:   %s\n", info.GitCommit)
	fmt.Printf("  built:    %s\n", info.BuildTime)
	fmt.Printf("  platform: %s\n", info.Platform)
	return nil
}
