package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"clawmgr/internal/catalog"
)

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.Flags().Bool("json", false, "Print the catalog as JSON")
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models available through the IoTeX AI Gateway",
	Long: `List the chat and audio models the gateway publishes, with pricing.
The first entry of each list is the default setup offers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return printCatalogJSON(os.Stdout)
		}

		printCatalog(os.Stdout, "Chat models", catalog.LLMs())
		fmt.Fprintln(os.Stdout)
		printCatalog(os.Stdout, "Audio models", catalog.AudioModels())
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, dimStyle.Render("* recommended default"))
		return nil
	},
}

func printCatalogJSON(w io.Writer) error {
	out := struct {
		Chat  []catalog.Model `json:"chat"`
		Audio []catalog.Model `json:"audio"`
	}{catalog.LLMs(), catalog.AudioModels()}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printCatalog(w io.Writer, title string, options []catalog.Model) {
	fmt.Fprintln(w, titleStyle.Render(title))
	for i, m := range options {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-46s %-18s %s\n", marker, m.ID, m.Provider, m.PriceNote)
	}
}
