package config

import (
	_ "embed"

	"github.com/mamoru/ten/internal/games/ten"
)

//go:embed defaults/ten.yaml
var defaultTenYAML []byte

// DefaultTenConfig returns the built-in configuration.
func DefaultTenConfig() TenConfig {
	return TenConfig{
		Board: BoardConfig{
			Size: ten.DefaultSize,
		},
		Gameplay: GameplayConfig{
			WinScore: ten.WinScore,
		},
		Files: FilesConfig{
			BoardPath: "~/.ten/board.txt",
		},
		Storage: StorageConfig{
			DBPath: "~/.ten/scores.db",
		},
	}
}

// Normalize clamps out-of-range values and fills empty fields from the
// defaults.
func (c *TenConfig) Normalize() {
	def := DefaultTenConfig()

	if c.Board.Size == 0 {
		c.Board.Size = def.Board.Size
	}
	c.Board.Size = max(c.Board.Size, ten.MinSize)

	if c.Gameplay.WinScore <= 0 || c.Gameplay.WinScore > ten.WinScore {
		c.Gameplay.WinScore = def.Gameplay.WinScore
	}
	if c.Files.BoardPath == "" {
		c.Files.BoardPath = def.Files.BoardPath
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
}
