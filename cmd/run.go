package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmaslov/linguo/internal/app"
	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/store"
)

// runApp opens the store, builds the catalog, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cat, err := buildCatalog(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	user, err := st.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	return app.Run(cat, st, st, user)
}

// buildCatalog seeds the built-in content and merges any packs given
// with --content.
func buildCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cat := catalog.New()

	packs, _ := cmd.Flags().GetStringSlice("content")
	for _, path := range packs {
		if err := cat.LoadPack(path); err != nil {
			return nil, fmt.Errorf("load content pack %s: %w", path, err)
		}
	}
	return cat, nil
}
