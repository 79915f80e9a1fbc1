package procmon

import (
	"bytes"
	"context"
	"crypto/sha256"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"prismdash/instance"
	"prismdash/log"
)

// ProcessInfo is the slice of a live process the monitor matches against.
type ProcessInfo struct {
	PID     int32
	Cmdline []string
}

// Lister enumerates live processes with their argument vectors. The default
// wraps gopsutil; tests substitute a fixed list.
type Lister func(ctx context.Context) ([]ProcessInfo, error)

// Monitor answers whether an instance's game process is currently alive.
// Every Snapshot is a fresh process-table read; the only retained state is
// a hash of the previous answer so callers can skip redundant UI updates.
type Monitor struct {
	mu       sync.Mutex
	lastHash []byte
	list     Lister
}

func NewMonitor() *Monitor {
	return &Monitor{list: listProcesses}
}

// NewMonitorWithDeps injects a process lister for tests.
func NewMonitorWithDeps(list Lister) *Monitor {
	return &Monitor{list: list}
}

// Snapshot reports running state for the given records only; callers pass
// the visible rows, not the whole repository. One process enumeration serves
// all of them. A failed query degrades to "nothing running" and a log line;
// the dashboard keeps working.
func (m *Monitor) Snapshot(ctx context.Context, records []instance.Record) map[string]bool {
	running := make(map[string]bool, len(records))
	if len(records) == 0 {
		return running
	}
	defer log.GetProfiler().StartOp("process snapshot")()

	start := time.Now()
	procs, err := m.list(ctx)
	if err != nil {
		log.WarningLog.Printf("process list query failed: %v", err)
		return running
	}

	for _, rec := range records {
		for _, p := range procs {
			if matches(rec, p.Cmdline) {
				running[rec.ID] = true
				break
			}
		}
	}

	if elapsed := time.Since(start); elapsed > 250*time.Millisecond {
		log.PerformanceWarning("process snapshot took %v across %d processes", elapsed, len(procs))
	}
	return running
}

// Changed reports whether the running set differs from the previous call and
// records the new one. The first call always reports a change.
func (m *Monitor) Changed(running map[string]bool) bool {
	ids := make([]string, 0, len(running))
	for id, up := range running {
		if up {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	hash := sha256.Sum256([]byte(strings.Join(ids, "\x00")))

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastHash != nil && bytes.Equal(m.lastHash, hash[:]) {
		return false
	}
	m.lastHash = hash[:]
	return true
}

// matches reports whether a process argument vector belongs to this
// instance. The game's java process carries the instance directory in its
// arguments (library paths, --gameDir); the launcher process itself carries
// the id after a -l/--launch flag.
func matches(rec instance.Record, args []string) bool {
	for i, arg := range args {
		if rec.Path != "" && strings.Contains(arg, rec.Path) {
			return true
		}
		if (arg == "-l" || arg == "--launch") && i+1 < len(args) && args[i+1] == rec.ID {
			return true
		}
	}
	return false
}

func listProcesses(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		args, err := p.CmdlineSliceWithContext(ctx)
		if err != nil || len(args) == 0 {
			// Process exited between listing and inspection, or belongs to
			// another user; either way it can't be one of ours.
			continue
		}
		out = append(out, ProcessInfo{PID: p.Pid, Cmdline: args})
	}
	return out, nil
}
