package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/roasbeef/claudevoice/internal/voicecfg"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the voice configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging the config file over the
compiled-in defaults.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the compiled-in defaults to the config location so they can be
edited. Refuses to overwrite an existing file.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if outputFormat == "json" {
		return outputJSON(cfg)
	}

	fmt.Printf("Enabled: %v\n", cfg.Enabled)
	fmt.Printf("Voice:   %s\n", cfg.Voice)
	fmt.Printf("Rate:    %s\n", cfg.Rate)
	fmt.Printf("Volume:  %s\n", cfg.Volume)
	fmt.Printf("Pitch:   %s\n", cfg.Pitch)
	fmt.Printf("Debug:   %v\n", cfg.Debug)

	personas := loadPersonas(cfg)
	if personas.Len() == 0 {
		fmt.Println("Persona: none")
	} else {
		fmt.Printf("Persona: %d sections\n", personas.Len())
	}

	if len(cfg.Messages) > 0 {
		fmt.Println("Message overrides:")
		for key, tmpl := range cfg.Messages {
			fmt.Printf("  %s: %q\n", key, tmpl)
		}
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = voicecfg.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	if err := os.MkdirAll(voicecfg.DefaultDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(voicecfg.DefaultConfig(), "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Wrote default config to %s\n", path)

	return nil
}
