package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd creates the version command
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information",
		Run:   cmdVersion,
	}
}

// cmdVersion prints the build details
func cmdVersion(cmd *cobra.Command, args []string) {
	fmt.Println(BuildDetails())
}

// BuildDetails returns the version string baked in at build time
func BuildDetails() string {
	if version == "" {
		return fmt.Sprintf("mongopipe (unversioned, %s)", runtime.Version())
	}
	return fmt.Sprintf("mongopipe %s (%s, %s, %s)", version, commit, date, runtime.Version())
}
