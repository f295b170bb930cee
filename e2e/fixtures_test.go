//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// planet is one catalog entry as written to a fixture file
type planet struct {
	Name   string  `json:"pl_name"`
	Host   string  `json:"hostname"`
	Period float64 `json:"pl_orbper,omitempty"`
}

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalog writes a JSON catalog into the workspace
func (tf *TUITestFramework) WriteCatalog(name string, planets []planet) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	data, err := json.Marshal(planets)
	if err != nil {
		return "", err
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// keplerCatalog returns n Kepler planets followed by the TRAPPIST-1 system
func keplerCatalog(n int) []planet {
	planets := make([]planet, 0, n+3)
	for i := 1; i <= n; i++ {
		planets = append(planets, planet{
			Name:   fmt.Sprintf("Kepler-%03d b", i),
			Host:   fmt.Sprintf("Kepler-%03d", i),
			Period: float64(i) * 1.5,
		})
	}
	for _, suffix := range []string{"b", "c", "d"} {
		planets = append(planets, planet{Name: "TRAPPIST-1 " + suffix, Host: "TRAPPIST-1"})
	}
	return planets
}
