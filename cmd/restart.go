package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clawmgr/internal/gateway"
)

func init() {
	rootCmd.AddCommand(restartCmd)
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the OpenClaw gateway daemon",
	Long: `Restart the OpenClaw gateway daemon so config changes take effect.
setup does this on its own; restart exists for when it was skipped with
--no-restart or failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bin, err := gateway.Locate()
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stderr, dimStyle.Render("restarting the gateway daemon..."))
		if err := gateway.NewController(bin).Restart(); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, successStyle.Render("✓ gateway restarted"))
		return nil
	},
}
