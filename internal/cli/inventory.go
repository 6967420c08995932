package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/racwn/wp-file-analyser/pkg/models"
	"github.com/racwn/wp-file-analyser/pkg/wpmeta"
)

// NewInventoryCommand creates the inventory command
func NewInventoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory <wordpress-path>",
		Short: "List the detected core version, plugins and themes",
		Long: `Scan a WordPress installation and print its core version together with
every installed plugin and theme and their detected versions. Useful for a
quick look at what an analysis run would compare against.`,
		Args: cobra.ExactArgs(1),
		RunE: runInventory,
	}
}

func runInventory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	wpPath, err := validateWordPressPath(args[0])
	if err != nil {
		return err
	}

	versionFile := filepath.Join(wpPath, filepath.FromSlash(wpmeta.VersionFilePath))
	if version, ok := wpmeta.CoreVersion(log, versionFile); ok {
		fmt.Printf("WordPress core: %s\n", version)
	} else {
		fmt.Println("WordPress core: (version unknown)")
	}

	plugins, err := wpmeta.Plugins(log, wpPath)
	if err != nil {
		return err
	}
	printArtifacts("Plugins", plugins)

	themes, err := wpmeta.Themes(log, wpPath)
	if err != nil {
		return err
	}
	printArtifacts("Themes", themes)

	return nil
}

func printArtifacts(label string, artifacts []models.Artifact) {
	fmt.Printf("%s: (%d)\n", label, len(artifacts))
	for _, artifact := range artifacts {
		fmt.Printf("  %s\n", artifact)
	}
}
