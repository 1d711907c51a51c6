package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Arcade   *ArcadeConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadArcade loads arcade.json
func (l *Loader) LoadArcade() (*ArcadeConfig, error) {
	var cfg ArcadeConfig
	if err := l.decode("arcade.json", &cfg); err != nil {
		return nil, err
	}
	if cfg.Display.ScreenWidth <= 0 || cfg.Display.ScreenHeight <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d in %s/arcade.json",
			cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, l.basePath)
	}
	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.decode("entities.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) decode(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadAll loads all base configurations (arcade, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	arcade, err := l.LoadArcade()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Arcade:   arcade,
		Entities: entities,
	}, nil
}
