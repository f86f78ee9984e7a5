package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"clawmgr/config"
	"clawmgr/config/credentials"
	"clawmgr/config/patch"
	"clawmgr/config/storage"
	"clawmgr/internal/utils"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the gateway registration in the OpenClaw config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		paths, err := config.ResolvePaths(settings)
		if err != nil {
			return err
		}

		doc, err := config.NewStore(paths.ConfigFile).Load()
		if err != nil {
			return err
		}

		prov := gjson.Get(doc, "models.providers.iotex")
		if !prov.Exists() {
			fmt.Println("iotex provider is not registered")
			fmt.Println(dimStyle.Render("run 'clawmgr setup <sk-key>' to register it"))
			return nil
		}

		fmt.Println(titleStyle.Render("Provider " + patch.ProviderName))
		fmt.Printf("  Base URL:  %s\n", prov.Get("baseUrl").String())
		fmt.Printf("  API key:   %s\n", utils.MaskAPIKey(prov.Get("apiKey").String()))
		fmt.Printf("  Models:    %d registered\n", len(prov.Get("models").Array()))

		if primary := gjson.Get(doc, "agents.defaults.model.primary").String(); primary != "" {
			marker := ""
			if strings.HasPrefix(primary, patch.ProviderName+"/") {
				marker = successStyle.Render(" (this gateway)")
			}
			fmt.Printf("  Primary:   %s%s\n", primary, marker)
		}

		gjson.Get(doc, "agents.defaults.models").ForEach(func(key, value gjson.Result) bool {
			if strings.HasPrefix(key.String(), patch.ProviderName+"/") {
				fmt.Printf("  Alias:     %s -> %s\n", value.Get("alias").String(), key.String())
			}
			return true
		})

		if gjson.Get(doc, "tools.media.audio.enabled").Bool() {
			for _, entry := range gjson.Get(doc, "tools.media.audio.models").Array() {
				if entry.Get("baseUrl").String() == patch.GatewayBaseURL ||
					entry.Get("profile").String() == patch.ProfileName {
					fmt.Printf("  Audio:     %s\n", entry.Get("model").String())
				}
			}
		}

		if storage.FileExists(paths.AuthStore) {
			creds, recovered := credentials.Load(paths.AuthStore)
			if recovered {
				fmt.Println(warnStyle.Render("  Auth:      store exists but is unreadable"))
			} else if _, ok := creds.Profiles[patch.ProfileName]; ok {
				fmt.Printf("  Auth:      profile %s stored\n", patch.ProfileName)
			}
		}

		fmt.Println(dimStyle.Render("  config " + paths.ConfigFile))
		return nil
	},
}
