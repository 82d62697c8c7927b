package checks

import (
	"context"
	"fmt"
	"path"

	"xwing-inventory/core/cards"
	"xwing-inventory/core/source"
)

// RequiredSources lists the documents a run cannot start without.
func RequiredSources(cfg source.Config) []string {
	return []string{
		cfg.Expansions,
		cfg.Collection,
		path.Join(cfg.XWingData, cards.ManifestPath),
	}
}

// CheckSources returns the names that do not exist in r.
func CheckSources(ctx context.Context, r source.Reader, names []string) ([]string, error) {
	missing := []string{}
	for _, name := range names {
		ok, err := r.Exists(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", name, err)
		}
		if !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

// CheckCardFiles returns the data files listed in the xwing-data2 manifest under
// root that do not exist.
func CheckCardFiles(ctx context.Context, r source.Reader, root string) ([]string, error) {
	var m cards.Manifest
	if err := source.Load(ctx, r, path.Join(root, cards.ManifestPath), decodeJSON(&m)); err != nil {
		return nil, err
	}

	var files []string
	for _, f := range m.Pilots {
		files = append(files, f.Ships...)
	}
	files = append(files, m.Upgrades...)
	files = append(files, m.Factions...)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = path.Join(root, f)
	}
	return CheckSources(ctx, r, names)
}
