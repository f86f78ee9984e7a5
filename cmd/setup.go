package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"clawmgr/config"
	"clawmgr/config/credentials"
	"clawmgr/config/patch"
	"clawmgr/internal/alias"
	"clawmgr/internal/catalog"
	"clawmgr/internal/errs"
	"clawmgr/internal/gateway"
	"clawmgr/internal/selector"
	"clawmgr/internal/tui"
	"clawmgr/internal/utils"
)

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.Flags().Bool("default", false, "Make the chosen chat model OpenClaw's primary model")
	setupCmd.Flags().Bool("tui", false, "Pick models in a full-screen fuzzy picker instead of the numbered menu")
	setupCmd.Flags().Bool("no-restart", false, "Skip the gateway daemon restart after writing the config")
}

var setupCmd = &cobra.Command{
	Use:   "setup <sk-key> [chat-model] [audio-model]",
	Short: "Register the IoTeX AI Gateway as an OpenClaw provider",
	Long: `Register the IoTeX AI Gateway as the "iotex" provider in OpenClaw's
config, store the API key as an auth profile and enable audio transcription.

Arguments are recognized by shape, not position: the token starting with
"sk-" is the API key, the remaining tokens are model ids in chat-then-audio
order. Model ids left out are picked interactively; in a non-interactive
session the recommended defaults apply.

Examples:
  clawmgr setup sk-abc123
  clawmgr setup sk-abc123 gemini-2.5-pro
  clawmgr setup gemini-2.5-pro sk-abc123 whisper-large-v3 --default
  clawmgr setup sk-abc123 --no-restart`,
	Args: cobra.MaximumNArgs(3),
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	setDefault, _ := cmd.Flags().GetBool("default")
	useTUI, _ := cmd.Flags().GetBool("tui")
	noRestart, _ := cmd.Flags().GetBool("no-restart")

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	useTUI = useTUI || settings.ForceTUI
	noRestart = noRestart || settings.NoRestart

	apiKey, llmID, audioID := splitArgs(args)
	if apiKey == "" {
		return &errs.UserInputError{
			Msg: `an API key is required (pass a token starting with "sk-", create one at https://gateway.iotex.ai)`,
		}
	}

	bin, err := gateway.Locate()
	if err != nil {
		return err
	}

	paths, err := config.ResolvePaths(settings)
	if err != nil {
		return err
	}
	if paths.Legacy {
		fmt.Fprintln(os.Stderr, dimStyle.Render("using legacy clawdbot layout at "+paths.BaseDir))
	}

	store := config.NewStore(paths.ConfigFile)
	doc, err := store.Load()
	if err != nil {
		return err
	}

	llm := resolveModel(llmID, catalog.LLMs(), "chat model", useTUI)
	audio := resolveModel(audioID, catalog.AudioModels(), "audio model", useTUI)
	llmAlias := alias.Derive(llm.ID)

	updated, err := patch.Apply(doc, patch.Input{
		APIKey:       apiKey,
		LLMModelID:   llm.ID,
		LLMAlias:     llmAlias,
		AudioModelID: audio.ID,
		SetDefault:   setDefault,
	})
	if err != nil {
		var pe *errs.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = paths.ConfigFile
		}
		return err
	}
	if err := store.Save(updated); err != nil {
		return err
	}

	creds, recovered := credentials.Load(paths.AuthStore)
	if recovered {
		fmt.Fprintln(os.Stderr, warnStyle.Render("⚠ existing auth store was unreadable, rebuilding it"))
	}
	creds.Upsert(patch.ProfileName, patch.ProviderName, apiKey)
	if err := credentials.Save(paths.AuthStore, creds); err != nil {
		return err
	}

	if noRestart {
		fmt.Fprintln(os.Stderr, dimStyle.Render("skipping gateway restart"))
	} else {
		fmt.Fprintln(os.Stderr, dimStyle.Render("restarting the gateway daemon..."))
		if err := gateway.NewController(bin).Restart(); err != nil {
			fmt.Fprintln(os.Stderr, warnStyle.Render(
				fmt.Sprintf("⚠ gateway restart failed, run '%s daemon restart' yourself: %v", bin, err)))
		}
	}

	fmt.Fprintln(os.Stderr, successStyle.Render("✓ IoTeX AI Gateway registered"))
	fmt.Fprintf(os.Stderr, "  Chat model:  %s (alias %q)\n", llm.ID, llmAlias)
	fmt.Fprintf(os.Stderr, "  Audio model: %s\n", audio.ID)
	if setDefault {
		fmt.Fprintf(os.Stderr, "  Primary:     %s/%s\n", patch.ProviderName, llm.ID)
	}
	fmt.Fprintf(os.Stderr, "  API key:     %s\n", utils.MaskAPIKey(apiKey))
	fmt.Fprintln(os.Stderr, dimStyle.Render("  config "+paths.ConfigFile))
	fmt.Fprintln(os.Stderr, dimStyle.Render("  auth   "+paths.AuthStore))
	return nil
}

// splitArgs assigns positional args by shape: the credential starts with
// sk-, everything else is a model id in chat-then-audio order.
func splitArgs(args []string) (apiKey, llmID, audioID string) {
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "sk-") && apiKey == "":
			apiKey = arg
		case llmID == "":
			llmID = arg
		case audioID == "":
			audioID = arg
		}
	}
	return apiKey, llmID, audioID
}

// resolveModel turns an optional id argument into a catalog choice. Ids the
// catalog does not know pass through untouched, the gateway accepts more
// models than the published table. Without an id the user picks from the
// menu, where empty or non-interactive input means the recommended default.
func resolveModel(id string, options []catalog.Model, kind string, useTUI bool) catalog.Model {
	if id != "" {
		if opt, ok := catalog.Find(options, id); ok {
			return opt
		}
		return catalog.Model{ID: id, DisplayName: id, Provider: catalog.DetectProvider(id)}
	}
	if useTUI && tui.IsTTY() {
		return tui.Pick("Select "+kind, options, 0)
	}
	return selector.New(os.Stdin, os.Stderr).Choose("Available "+kind+"s", options, 0)
}
