package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"raysnake/game/types"
)

// Defaults used when no flag overrides them.
const (
	DefaultTileSize  = 30
	DefaultMapSize   = 30
	DefaultTargetFPS = 12
)

// Bounds accepted by Validate.
const (
	MinMapSize   = 8
	MaxMapSize   = 200
	MinTileSize  = 4
	MaxTileSize  = 64
	MinTargetFPS = 1
	MaxTargetFPS = 60
)

// Config holds grid geometry and pacing.
type Config struct {
	TileSize  int // pixels per cell
	MapSize   int // cells per side, border included
	TargetFPS int // ticks per second
}

func Default() Config {
	return Config{
		TileSize:  DefaultTileSize,
		MapSize:   DefaultMapSize,
		TargetFPS: DefaultTargetFPS,
	}
}

// Validate reports every out-of-range field at once.
func (c Config) Validate() error {
	var merr *multierror.Error

	if c.MapSize < MinMapSize || c.MapSize > MaxMapSize {
		merr = multierror.Append(merr, fmt.Errorf("map size %d out of range [%d, %d]", c.MapSize, MinMapSize, MaxMapSize))
	}
	if c.TileSize < MinTileSize || c.TileSize > MaxTileSize {
		merr = multierror.Append(merr, fmt.Errorf("tile size %d out of range [%d, %d]", c.TileSize, MinTileSize, MaxTileSize))
	}
	if c.TargetFPS < MinTargetFPS || c.TargetFPS > MaxTargetFPS {
		merr = multierror.Append(merr, fmt.Errorf("target fps %d out of range [%d, %d]", c.TargetFPS, MinTargetFPS, MaxTargetFPS))
	}

	return merr.ErrorOrNil()
}

func (c Config) Grid() types.Grid {
	return types.NewSquareGrid(c.MapSize)
}

func (c Config) ScreenWidth() int {
	return c.TileSize * c.MapSize
}

func (c Config) ScreenHeight() int {
	return c.TileSize * c.MapSize
}

// FontSize is 70% of a tile.
func (c Config) FontSize() int {
	return c.TileSize * 7 / 10
}
