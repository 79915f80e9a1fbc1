package instance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"prismdash/log"
)

// Repository discovers instances under a single root directory. A scan is a
// one-shot snapshot of the tree; refresh means scanning again and replacing
// the previous collection wholesale.
type Repository struct {
	root string
}

func NewRepository(root string) *Repository {
	return &Repository{root: root}
}

func (r *Repository) Root() string {
	return r.root
}

// Scan enumerates the immediate subdirectories of the root and parses every
// one that carries an instance.cfg. Entries without one (PrismLauncher's
// .LAUNCHER_TEMP, stray files) are not instances and are skipped. Only an
// unlistable root is an error; broken instances degrade inside ParseDir.
// The returned order is enumeration order, not display order.
func (r *Repository) Scan() ([]Record, error) {
	defer log.GetProfiler().StartOp("instance scan")()

	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list instances root %s: %w", r.root, err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dir := filepath.Join(r.root, e.Name())
		if _, err := os.Stat(filepath.Join(dir, cfgFileName)); err != nil {
			continue
		}
		dirs = append(dirs, dir)
	}

	records := parseAll(dirs)
	log.InfoLog.Printf("scanned %d instance(s) under %s", len(records), r.root)
	return records, nil
}
