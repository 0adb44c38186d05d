package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if c.ScreenWidth() != 900 || c.ScreenHeight() != 900 {
		t.Errorf("screen = %dx%d, want 900x900", c.ScreenWidth(), c.ScreenHeight())
	}
	if c.FontSize() != 21 {
		t.Errorf("FontSize() = %d, want 21", c.FontSize())
	}
	if g := c.Grid(); g.Width != 30 || g.Height != 30 {
		t.Errorf("Grid() = %+v", g)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	c := Config{TileSize: 1, MapSize: 3, TargetFPS: 0}

	err := c.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("error %T is not a multierror", err)
	}
	if len(merr.Errors) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(merr.Errors), err)
	}
	for _, want := range []string{"map size 3", "tile size 1", "target fps 0"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"smallest", Config{TileSize: MinTileSize, MapSize: MinMapSize, TargetFPS: MinTargetFPS}, true},
		{"largest", Config{TileSize: MaxTileSize, MapSize: MaxMapSize, TargetFPS: MaxTargetFPS}, true},
		{"map too big", Config{TileSize: 10, MapSize: MaxMapSize + 1, TargetFPS: 10}, false},
		{"fps too high", Config{TileSize: 10, MapSize: 20, TargetFPS: MaxTargetFPS + 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, ok want %v", err, tt.ok)
			}
		})
	}
}
