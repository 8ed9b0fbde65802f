//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

const e2eVersion = "e2e"

// fixtureDir holds config files shared by every test; tests that need their
// own config write it into their workspace instead.
var fixtureDir string

func TestMain(m *testing.M) {
	os.Exit(runMain(m))
}

func runMain(m *testing.M) int {
	tmp, err := os.MkdirTemp("", "multiselect-e2e-")
	if err != nil {
		fmt.Printf("failed to create temp dir: %v\n", err)
		return 1
	}
	defer os.RemoveAll(tmp)

	binPath = filepath.Join(tmp, "multiselect_e2e")
	fixtureDir = filepath.Join(tmp, "fixtures")

	if err := writeFixtures(fixtureDir); err != nil {
		fmt.Printf("failed to write fixtures: %v\n", err)
		return 1
	}

	// Build from the main module with a fixed version so --version is predictable
	cmd := exec.Command("go", "build",
		"-ldflags", "-X main.version="+e2eVersion,
		"-o", binPath, ".")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("failed to build test binary: %v\n", err)
		return 1
	}

	return m.Run()
}

func writeFixtures(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(fixturePath("fruit.toml"), []byte(fruitConfig), 0644)
}

func fixturePath(name string) string {
	return filepath.Join(fixtureDir, name)
}
