package procmon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"prismdash/instance"
)

func fixedLister(procs []ProcessInfo) Lister {
	return func(ctx context.Context) ([]ProcessInfo, error) {
		return procs, nil
	}
}

func TestSnapshotMatchesInstancePath(t *testing.T) {
	rec := instance.Record{ID: "Survival", Path: "/home/alex/.local/share/PrismLauncher/instances/Survival"}
	procs := []ProcessInfo{
		{PID: 100, Cmdline: []string{"/usr/bin/java", "-Djava.library.path=/home/alex/.local/share/PrismLauncher/instances/Survival/natives", "-jar", "minecraft.jar"}},
		{PID: 101, Cmdline: []string{"/usr/bin/firefox"}},
	}

	m := NewMonitorWithDeps(fixedLister(procs))
	running := m.Snapshot(context.Background(), []instance.Record{rec})
	require.True(t, running["Survival"])
}

func TestSnapshotMatchesLaunchFlag(t *testing.T) {
	recs := []instance.Record{
		{ID: "Creative", Path: "/instances/Creative"},
		{ID: "Skyblock", Path: "/instances/Skyblock"},
	}
	procs := []ProcessInfo{
		{PID: 200, Cmdline: []string{"prismlauncher", "--launch", "Creative"}},
		{PID: 201, Cmdline: []string{"prismlauncher", "-l", "Skyblock"}},
	}

	m := NewMonitorWithDeps(fixedLister(procs))
	running := m.Snapshot(context.Background(), recs)
	require.True(t, running["Creative"])
	require.True(t, running["Skyblock"])
}

func TestSnapshotLaunchFlagRequiresExactID(t *testing.T) {
	rec := instance.Record{ID: "Sky", Path: "/instances/Sky"}
	procs := []ProcessInfo{
		// Different instance whose id merely shares a prefix.
		{PID: 300, Cmdline: []string{"prismlauncher", "--launch", "Skyblock"}},
		// Flag with no argument at the end of the vector.
		{PID: 301, Cmdline: []string{"prismlauncher", "--launch"}},
	}

	m := NewMonitorWithDeps(fixedLister(procs))
	running := m.Snapshot(context.Background(), []instance.Record{rec})
	require.False(t, running["Sky"])
}

func TestSnapshotNothingRunning(t *testing.T) {
	rec := instance.Record{ID: "Survival", Path: "/instances/Survival"}
	m := NewMonitorWithDeps(fixedLister([]ProcessInfo{
		{PID: 400, Cmdline: []string{"/usr/bin/top"}},
	}))

	running := m.Snapshot(context.Background(), []instance.Record{rec})
	require.False(t, running["Survival"])
}

func TestSnapshotDegradesOnListError(t *testing.T) {
	m := NewMonitorWithDeps(func(ctx context.Context) ([]ProcessInfo, error) {
		return nil, errors.New("permission denied")
	})

	running := m.Snapshot(context.Background(), []instance.Record{{ID: "Survival", Path: "/instances/Survival"}})
	require.Empty(t, running)
}

func TestSnapshotEmptyRecordsSkipsQuery(t *testing.T) {
	called := false
	m := NewMonitorWithDeps(func(ctx context.Context) ([]ProcessInfo, error) {
		called = true
		return nil, nil
	})

	running := m.Snapshot(context.Background(), nil)
	require.Empty(t, running)
	require.False(t, called)
}

func TestChangedDetectsTransitions(t *testing.T) {
	m := NewMonitor()

	// First observation always counts as a change.
	require.True(t, m.Changed(map[string]bool{"Survival": true}))
	require.False(t, m.Changed(map[string]bool{"Survival": true}))

	require.True(t, m.Changed(map[string]bool{"Survival": true, "Creative": true}))
	require.False(t, m.Changed(map[string]bool{"Creative": true, "Survival": true}))

	require.True(t, m.Changed(map[string]bool{}))
	require.False(t, m.Changed(map[string]bool{"Creative": false}))
}
