package instance

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/ini.v1"

	"prismdash/log"
)

const (
	cfgFileName    = "instance.cfg"
	packFileName   = "mmc-pack.json"
	patchesDirName = "patches"
	modExtension   = ".jar"
)

// Component uids as PrismLauncher/MultiMC write them.
const (
	uidMinecraft = "net.minecraft"
	uidFabric    = "net.fabricmc.fabric-loader"
	uidForge     = "net.minecraftforge"
	uidQuilt     = "org.quiltmc.quilt-loader"
	uidNeoForge  = "net.neoforged"
)

// markerOrder fixes the resolution order when only patch files identify the
// loader, so an ambiguous directory resolves the same way on every scan.
var markerOrder = []struct {
	uid    string
	loader Loader
}{
	{uidFabric, LoaderFabric},
	{uidQuilt, LoaderQuilt},
	{uidNeoForge, LoaderNeoForge},
	{uidForge, LoaderForge},
}

// mmcPack mirrors the slice of mmc-pack.json we care about.
type mmcPack struct {
	Components []struct {
		UID     string `json:"uid"`
		Version string `json:"version"`
	} `json:"components"`
}

// ParseDir reads one instance directory into a Record. It never fails:
// unreadable or malformed metadata degrades to defaults field by field, and
// the directory base name is always good enough for the id and display name.
func ParseDir(dir string) Record {
	rec := Record{
		ID:          filepath.Base(dir),
		DisplayName: filepath.Base(dir),
		Path:        dir,
	}

	parseCfg(dir, &rec)
	rec.GameVersion, rec.Loader = detectComponents(dir)
	rec.ModCount = countMods(dir)
	return rec
}

// parseCfg extracts the display name and play statistics from instance.cfg.
// Prism writes them under [General]; older MultiMC wrote a sectionless file,
// so each key falls back to the default section.
func parseCfg(dir string, rec *Record) {
	cfg, err := ini.Load(filepath.Join(dir, cfgFileName))
	if err != nil {
		log.WarningLog.Printf("unreadable %s in %s: %v", cfgFileName, dir, err)
		return
	}

	general := cfg.Section("General")
	root := cfg.Section("")
	key := func(name string) *ini.Key {
		if general.HasKey(name) {
			return general.Key(name)
		}
		return root.Key(name)
	}

	if name := strings.TrimSpace(key("name").String()); name != "" {
		rec.DisplayName = name
	}

	// lastLaunchTime is epoch milliseconds; zero, negative and garbage all
	// mean never launched.
	if ms, err := key("lastLaunchTime").Int64(); err == nil && ms > 0 {
		t := time.UnixMilli(ms)
		rec.LastPlayed = &t
	}

	// totalTimePlayed is seconds.
	if secs, err := key("totalTimePlayed").Int64(); err == nil && secs > 0 {
		rec.Playtime = time.Duration(secs) * time.Second
	}
}

// detectComponents resolves the game version and loader. The mmc-pack.json
// component list is the explicit declaration and wins; patch marker files are
// the fallback for older instances; no evidence at all means Vanilla. A
// manifest that exists but cannot be read or parsed means we cannot tell.
func detectComponents(dir string) (version string, loader Loader) {
	data, err := os.ReadFile(filepath.Join(dir, packFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", detectFromPatches(dir)
		}
		log.WarningLog.Printf("unreadable %s in %s: %v", packFileName, dir, err)
		return "", LoaderUnknown
	}

	var pack mmcPack
	if err := json.Unmarshal(data, &pack); err != nil {
		log.WarningLog.Printf("malformed %s in %s: %v", packFileName, dir, err)
		return "", LoaderUnknown
	}

	loader = LoaderVanilla
	for _, c := range pack.Components {
		switch c.UID {
		case uidMinecraft:
			version = c.Version
		case uidFabric:
			loader = LoaderFabric
		case uidForge:
			loader = LoaderForge
		case uidQuilt:
			loader = LoaderQuilt
		case uidNeoForge:
			loader = LoaderNeoForge
		}
	}
	return version, loader
}

func detectFromPatches(dir string) Loader {
	for _, m := range markerOrder {
		marker := filepath.Join(dir, patchesDirName, m.uid+".json")
		if _, err := os.Stat(marker); err == nil {
			return m.loader
		}
	}
	return LoaderVanilla
}

// countMods counts mod jars under the instance's mods directory. Prism nests
// it in .minecraft, older MultiMC in minecraft; a missing directory is zero
// mods, not an error.
func countMods(dir string) int {
	for _, sub := range []string{".minecraft", "minecraft", ""} {
		entries, err := os.ReadDir(filepath.Join(dir, sub, "mods"))
		if err != nil {
			continue
		}
		count := 0
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.HasSuffix(strings.ToLower(e.Name()), modExtension) {
				count++
			}
		}
		return count
	}
	return 0
}
