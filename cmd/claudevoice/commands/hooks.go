package commands

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/roasbeef/claudevoice/internal/hooks"
	"github.com/spf13/cobra"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Manage Claude Code hooks integration",
	Long: `Manage the claudevoice entries in ~/.claude/settings.json.

Claudevoice hooks cover:
- UserPromptSubmit: Acknowledge the prompt out loud
- Stop: Announce the finished task with a short transcript summary
- Notification: Speak permission and idle prompts

Existing hooks in settings.json are preserved; claudevoice hooks are
appended alongside them.`,
}

var hooksInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install claudevoice hooks into ~/.claude/settings.json",
	RunE:  runHooksInstall,
}

var hooksUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove claudevoice hooks from ~/.claude/settings.json",
	RunE:  runHooksUninstall,
}

var hooksStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check claudevoice hooks installation status",
	RunE:  runHooksStatus,
}

func init() {
	hooksCmd.AddCommand(hooksInstallCmd)
	hooksCmd.AddCommand(hooksUninstallCmd)
	hooksCmd.AddCommand(hooksStatusCmd)

	rootCmd.AddCommand(hooksCmd)
}

func runHooksInstall(cmd *cobra.Command, args []string) error {
	claudeDir := getClaudeDir()

	settings, err := hooks.LoadSettings(claudeDir)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	hooks.Install(settings)

	if err := hooks.SaveSettings(claudeDir, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("Claudevoice hooks installed.")
	fmt.Printf("  Settings: %s\n", filepath.Join(claudeDir, "settings.json"))
	fmt.Println("Hooks installed:")
	for _, event := range sortedEvents(hooks.InstalledEvents(settings)) {
		fmt.Printf("  - %s\n", event)
	}
	fmt.Println()
	fmt.Println("Start a new Claude Code session to activate the hooks.")

	return nil
}

func runHooksUninstall(cmd *cobra.Command, args []string) error {
	claudeDir := getClaudeDir()

	settings, err := hooks.LoadSettings(claudeDir)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	hooks.Uninstall(settings)

	if err := hooks.SaveSettings(claudeDir, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("Claudevoice hooks removed.")

	return nil
}

func runHooksStatus(cmd *cobra.Command, args []string) error {
	claudeDir := getClaudeDir()

	settings, err := hooks.LoadSettings(claudeDir)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if !hooks.IsInstalled(settings) {
		fmt.Println("Claudevoice hooks are not installed.")
		fmt.Println("Run `claudevoice hooks install` to set them up.")
		return nil
	}

	fmt.Println("Claudevoice hooks are installed:")
	for _, event := range sortedEvents(hooks.InstalledEvents(settings)) {
		fmt.Printf("  - %s\n", event)
	}

	return nil
}

// sortedEvents returns the events in stable order for display.
func sortedEvents(events []string) []string {
	sort.Strings(events)
	return events
}
