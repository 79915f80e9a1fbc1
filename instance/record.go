package instance

import "time"

// Loader is the mod framework an instance runs. The set is closed: launcher
// metadata either names one of these, the instance is plain Vanilla, or the
// metadata is unreadable and we report Unknown.
type Loader int

const (
	LoaderVanilla Loader = iota
	LoaderFabric
	LoaderForge
	LoaderQuilt
	LoaderNeoForge
	LoaderUnknown
)

func (l Loader) String() string {
	switch l {
	case LoaderVanilla:
		return "Vanilla"
	case LoaderFabric:
		return "Fabric"
	case LoaderForge:
		return "Forge"
	case LoaderQuilt:
		return "Quilt"
	case LoaderNeoForge:
		return "NeoForge"
	default:
		return "Unknown"
	}
}

// Record is one discovered instance. ID is the directory base name and is
// stable for the record's lifetime; every other field is derived at parse
// time and treated as immutable until the next full re-scan.
type Record struct {
	ID          string
	DisplayName string
	GameVersion string // empty when undetermined
	Loader      Loader
	ModCount    int
	Playtime    time.Duration
	LastPlayed  *time.Time // nil means never launched through the launcher
	Path        string
}
