package instance

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// instanceFixture describes one on-disk instance directory for tests.
type instanceFixture struct {
	dirName string
	cfg     string   // instance.cfg content; empty means no file
	pack    string   // mmc-pack.json content; empty means no file
	patches []string // patch file uids to create under patches/
	modsDir string   // relative mods dir, e.g. ".minecraft/mods"
	mods    []string // file names to create in modsDir
}

// writeInstance materializes a fixture under root and returns its path.
func writeInstance(t *testing.T, root string, fix instanceFixture) string {
	t.Helper()

	dir := filepath.Join(root, fix.dirName)
	require.NoError(t, os.MkdirAll(dir, 0755))

	if fix.cfg != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "instance.cfg"), []byte(fix.cfg), 0644))
	}
	if fix.pack != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "mmc-pack.json"), []byte(fix.pack), 0644))
	}
	for _, uid := range fix.patches {
		patchDir := filepath.Join(dir, "patches")
		require.NoError(t, os.MkdirAll(patchDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(patchDir, uid+".json"), []byte("{}"), 0644))
	}
	if fix.modsDir != "" {
		modsDir := filepath.Join(dir, filepath.FromSlash(fix.modsDir))
		require.NoError(t, os.MkdirAll(modsDir, 0755))
		for _, name := range fix.mods {
			require.NoError(t, os.WriteFile(filepath.Join(modsDir, name), []byte("jar"), 0644))
		}
	}
	return dir
}

func packJSON(components ...[2]string) string {
	out := `{"formatVersion": 1, "components": [`
	for i, c := range components {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"uid": %q, "version": %q}`, c[0], c[1])
	}
	return out + `]}`
}

func TestParseDirFullMetadata(t *testing.T) {
	root := t.TempDir()
	lastLaunch := time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)

	dir := writeInstance(t, root, instanceFixture{
		dirName: "survival-main",
		cfg: "[General]\n" +
			"name=Survival World\n" +
			fmt.Sprintf("lastLaunchTime=%d\n", lastLaunch.UnixMilli()) +
			"totalTimePlayed=4500\n",
		pack:    packJSON([2]string{"net.minecraft", "1.20.1"}, [2]string{"net.fabricmc.fabric-loader", "0.15.7"}),
		modsDir: ".minecraft/mods",
		mods:    []string{"sodium.jar", "lithium.jar", "iris.JAR", "readme.txt", "old.jar.disabled"},
	})

	rec := ParseDir(dir)
	require.Equal(t, "survival-main", rec.ID)
	require.Equal(t, "Survival World", rec.DisplayName)
	require.Equal(t, "1.20.1", rec.GameVersion)
	require.Equal(t, LoaderFabric, rec.Loader)
	require.Equal(t, 3, rec.ModCount, "only .jar files count, case-insensitively")
	require.Equal(t, 4500*time.Second, rec.Playtime)
	require.NotNil(t, rec.LastPlayed)
	require.Equal(t, lastLaunch.UnixMilli(), rec.LastPlayed.UnixMilli())
	require.Equal(t, dir, rec.Path)
}

func TestParseDirNameFallsBackToDirName(t *testing.T) {
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "unnamed-pack",
		cfg:     "[General]\ntotalTimePlayed=60\n",
	})

	rec := ParseDir(dir)
	require.Equal(t, "unnamed-pack", rec.DisplayName)
	require.Equal(t, time.Minute, rec.Playtime)
}

func TestParseDirSectionlessCfg(t *testing.T) {
	// Older MultiMC wrote instance.cfg without a [General] header.
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "legacy",
		cfg:     "name=Old Faithful\nlastLaunchTime=1700000000000\ntotalTimePlayed=120\n",
	})

	rec := ParseDir(dir)
	require.Equal(t, "Old Faithful", rec.DisplayName)
	require.NotNil(t, rec.LastPlayed)
	require.Equal(t, int64(1700000000000), rec.LastPlayed.UnixMilli())
	require.Equal(t, 2*time.Minute, rec.Playtime)
}

func TestParseDirMalformedCfgDegrades(t *testing.T) {
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "broken",
		cfg:     "{this is not an ini file",
	})

	rec := ParseDir(dir)
	require.Equal(t, "broken", rec.ID)
	require.Equal(t, "broken", rec.DisplayName)
	require.Nil(t, rec.LastPlayed)
	require.Zero(t, rec.Playtime)
	require.Zero(t, rec.ModCount)
}

func TestParseDirNonNumericFieldsDegrade(t *testing.T) {
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "odd-values",
		cfg: "[General]\n" +
			"name=Odd\n" +
			"lastLaunchTime=yesterday\n" +
			"totalTimePlayed=lots\n",
	})

	rec := ParseDir(dir)
	require.Equal(t, "Odd", rec.DisplayName)
	require.Nil(t, rec.LastPlayed, "non-numeric timestamp degrades to never")
	require.Zero(t, rec.Playtime, "non-numeric playtime degrades to zero")
}

func TestParseDirZeroLastLaunchMeansNever(t *testing.T) {
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "fresh",
		cfg:     "[General]\nname=Fresh\nlastLaunchTime=0\ntotalTimePlayed=0\n",
	})

	rec := ParseDir(dir)
	require.Nil(t, rec.LastPlayed)
	require.Zero(t, rec.Playtime)
}

func TestParseDirLoaderFromComponents(t *testing.T) {
	tests := []struct {
		name   string
		uid    string
		loader Loader
	}{
		{"fabric", "net.fabricmc.fabric-loader", LoaderFabric},
		{"forge", "net.minecraftforge", LoaderForge},
		{"quilt", "org.quiltmc.quilt-loader", LoaderQuilt},
		{"neoforge", "net.neoforged", LoaderNeoForge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			dir := writeInstance(t, root, instanceFixture{
				dirName: tt.name,
				cfg:     "[General]\nname=x\n",
				pack:    packJSON([2]string{"net.minecraft", "1.21"}, [2]string{tt.uid, "1.0"}),
			})

			rec := ParseDir(dir)
			require.Equal(t, tt.loader, rec.Loader)
			require.Equal(t, "1.21", rec.GameVersion)
		})
	}
}

func TestParseDirVanillaWhenNoLoaderComponent(t *testing.T) {
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "plain",
		cfg:     "[General]\nname=Plain\n",
		pack:    packJSON([2]string{"net.minecraft", "1.19.4"}),
	})

	rec := ParseDir(dir)
	require.Equal(t, LoaderVanilla, rec.Loader)
	require.Equal(t, "1.19.4", rec.GameVersion)
}

func TestParseDirLoaderFromPatchMarkers(t *testing.T) {
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "patched",
		cfg:     "[General]\nname=Patched\n",
		patches: []string{"org.quiltmc.quilt-loader"},
	})

	rec := ParseDir(dir)
	require.Equal(t, LoaderQuilt, rec.Loader)
	require.Empty(t, rec.GameVersion, "patch markers carry no version")
}

func TestParseDirPatchMarkerOrderIsFixed(t *testing.T) {
	// With both fabric and forge markers present, fabric wins every scan.
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "ambiguous",
		cfg:     "[General]\nname=Ambiguous\n",
		patches: []string{"net.minecraftforge", "net.fabricmc.fabric-loader"},
	})

	rec := ParseDir(dir)
	require.Equal(t, LoaderFabric, rec.Loader)
}

func TestParseDirMalformedPackMeansUnknown(t *testing.T) {
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "mystery",
		cfg:     "[General]\nname=Mystery\n",
		pack:    "not json at all",
	})

	rec := ParseDir(dir)
	require.Equal(t, LoaderUnknown, rec.Loader)
	require.Empty(t, rec.GameVersion)
}

func TestParseDirNoEvidenceMeansVanilla(t *testing.T) {
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "bare",
		cfg:     "[General]\nname=Bare\n",
	})

	rec := ParseDir(dir)
	require.Equal(t, LoaderVanilla, rec.Loader)
}

func TestParseDirModCountWithoutModsDir(t *testing.T) {
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "no-mods",
		cfg:     "[General]\nname=NoMods\n",
	})

	rec := ParseDir(dir)
	require.Zero(t, rec.ModCount, "missing mods directory is zero, never an error")
}

func TestParseDirModCountFallbackLayouts(t *testing.T) {
	tests := []struct {
		name    string
		modsDir string
	}{
		{"prism layout", ".minecraft/mods"},
		{"multimc layout", "minecraft/mods"},
		{"flat layout", "mods"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			dir := writeInstance(t, root, instanceFixture{
				dirName: "layout",
				cfg:     "[General]\nname=Layout\n",
				modsDir: tt.modsDir,
				mods:    []string{"a.jar", "b.jar"},
			})

			rec := ParseDir(dir)
			require.Equal(t, 2, rec.ModCount)
		})
	}
}

func TestParseDirModCountIgnoresSubdirs(t *testing.T) {
	root := t.TempDir()
	dir := writeInstance(t, root, instanceFixture{
		dirName: "nested",
		cfg:     "[General]\nname=Nested\n",
		modsDir: ".minecraft/mods",
		mods:    []string{"real.jar"},
	})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".minecraft", "mods", "extracted.jar"), 0755))

	rec := ParseDir(dir)
	require.Equal(t, 1, rec.ModCount, "directories never count as mods")
}
