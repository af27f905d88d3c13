//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

// testManifest is a small plugin set with two manufacturers
const testManifest = `
[[plugins]]
slug = "Fundamental"
name = "Fundamental"
manufacturer = "VCV"

  [[plugins.models]]
  slug = "VCO"
  name = "VCO-1"
  tags = ["oscillator"]

  [[plugins.models]]
  slug = "VCF"
  name = "VCF"
  tags = ["filter"]

  [[plugins.models]]
  slug = "Scope"
  name = "Scope"
  tags = ["visual"]

[[plugins]]
slug = "Befaco"
name = "Befaco"
manufacturer = "Befaco"

  [[plugins.models]]
  slug = "EvenVCO"
  name = "EvenVCO"
  tags = ["oscillator"]

  [[plugins.models]]
  slug = "SpringReverb"
  name = "Spring Reverb"
  tags = ["reverb"]
`

// CreateTestWorkspace creates a temporary directory that serves as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreatePluginsDir writes the test manifest into <workspace>/plugins
func (tf *TUITestFramework) CreatePluginsDir() (string, error) {
	dir := filepath.Join(tf.workspace, "plugins")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "plugins.toml"), []byte(testManifest), 0644); err != nil {
		return "", err
	}
	return dir, nil
}

// SettingsPath is where the app under test keeps its favorites
func (tf *TUITestFramework) SettingsPath() string {
	return filepath.Join(tf.workspace, "settings.json")
}

// AppArgs points every file the app touches into the workspace
func (tf *TUITestFramework) AppArgs(pluginsDir string) []string {
	return []string{
		"--config", filepath.Join(tf.workspace, "config.toml"),
		"--settings", tf.SettingsPath(),
		"--plugins", pluginsDir,
	}
}

// startInWorkspace creates the workspace and plugins and launches the app
func startInWorkspace(tf *TUITestFramework) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	dir, err := tf.CreatePluginsDir()
	if err != nil {
		return err
	}
	return tf.StartApp(tf.AppArgs(dir)...)
}
