//go:build e2e && unix

package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddModuleFromSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, startInWorkspace(tf), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Rack is empty"), "Should start with an empty rack")

	require.NoError(t, tf.OpenBrowser())
	require.True(t, tf.SeePlain("Add module"), "Browser should open")
	require.True(t, tf.SeePlain("Manufacturers"), "Browse mode should list manufacturers")

	require.NoError(t, tf.Search("even"))
	require.True(t, tf.SeePlain("EvenVCO"), "Search should show the module")

	// The Modules header sits above the only match, which is selected
	require.NoError(t, tf.Enter())
	require.True(t, tf.WaitForStatusMessage("Added EvenVCO", 3*time.Second), "Should add the module")
	require.True(t, tf.SeePlain("Rack (1)"), "Rack should hold one instance")
}

func TestEscapeClosesBrowser(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, startInWorkspace(tf), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.OpenBrowser())
	require.True(t, tf.SeePlain("Add module"), "Browser should open")

	tf.Snapshot()
	require.NoError(t, tf.Escape())
	time.Sleep(300 * time.Millisecond)

	// Typing q only quits once the browser has closed
	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	require.NoError(t, tf.Quit())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		tf.DumpTailOnFail(t, "escape-failure", 4096)
		t.Fatal("app did not quit after closing the browser")
	}
	require.False(t, strings.Contains(tf.SnapshotPlain(), "Added"), "Nothing should have been added")
}

func TestFavoriteIsSaved(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, startInWorkspace(tf), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.OpenBrowser())
	require.NoError(t, tf.Search("scope"))
	require.True(t, tf.SeePlain("Scope"), "Search should show the module")

	require.NoError(t, tf.Favorite())
	require.True(t, tf.WaitFor(func(string) bool {
		data, err := os.ReadFile(tf.SettingsPath())
		return err == nil && strings.Contains(string(data), `"Scope"`)
	}, 3*time.Second), "Favorite should be written to the settings file")
}
