package cmd

import (
	"github.com/spf13/cobra"
)

// Version information, injected by main from build-time ldflags.
var (
	version string
	commit  string
	date    string
)

// SetVersionInfo sets the version information shown by --version.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

var rootCmd = &cobra.Command{
	Use:   "clawmgr",
	Short: "Register the IoTeX AI Gateway with a local OpenClaw install",
	Long: `clawmgr wires the IoTeX AI Gateway (https://gateway.iotex.ai) into an
existing OpenClaw install: it registers the provider and its model catalog,
stores the API key as an auth profile, enables audio transcription and
restarts the gateway daemon so the changes take effect.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = version

	rootCmd.SetVersionTemplate(`clawmgr {{.Version}}
Commit: ` + commit + `
Date: ` + date + `
`)

	return rootCmd.Execute()
}
