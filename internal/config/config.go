// Package config provides YAML-based configuration loading for TEN!.
package config

// TenConfig contains all configuration for the game and its tooling.
type TenConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Files    FilesConfig    `yaml:"files"`
	Storage  StorageConfig  `yaml:"storage"`
}

// BoardConfig defines the board shape.
type BoardConfig struct {
	Size int `yaml:"size"` // Side length; values below the minimum are clamped up
}

// GameplayConfig defines how a game ends.
type GameplayConfig struct {
	WinScore int   `yaml:"win_score"` // 1..100; 100 means merging two top-tier tiles
	Seed     int64 `yaml:"seed"`      // 0 picks a fresh seed every game
}

// FilesConfig defines where board snapshots are written and read.
type FilesConfig struct {
	BoardPath string `yaml:"board_path"`
}

// StorageConfig defines the score database location.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}
