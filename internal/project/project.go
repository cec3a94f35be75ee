// Package project provides JSON persistence for BoardCut projects and the
// user's board catalog.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/BoardCut/internal/model"
)

// DefaultConfigDir returns the default directory for application files.
// On all platforms this is ~/.boardcut/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".boardcut")
}

// Save persists a project to the given path as pretty-printed JSON.
// It creates any missing parent directories automatically.
func Save(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from the given path.
func Load(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("cannot parse project file %s: %w", path, err)
	}
	// Ensure slices are never nil after load
	if p.Cuts == nil {
		p.Cuts = []model.CutRequest{}
	}
	if p.Boards == nil {
		p.Boards = []model.BoardOffering{}
	}
	// Default each settings field separately so a hand-edited file that
	// sets only some of them still yields a usable configuration.
	def := model.DefaultSettings()
	if p.Settings.MaxPatternsPerBoardType <= 0 {
		p.Settings.MaxPatternsPerBoardType = def.MaxPatternsPerBoardType
	}
	if p.Settings.BoundMultiplier <= 0 {
		p.Settings.BoundMultiplier = def.BoundMultiplier
	}
	if p.Settings.SolveTimeout <= 0 {
		p.Settings.SolveTimeout = def.SolveTimeout
	}
	return p, nil
}
