// Copyright 2020 Aleksandr Demakin. All rights reserved.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/avdva/decnum/round"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	a := assert.New(t)
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	a.Equal(Config{Rounding: "half-even", Split: 8, Scale: -18, Format: FormatPlain}, *cfg)
	mode, err := cfg.Mode()
	a.NoError(err)
	a.Equal(round.HalfEven, mode)
	verb, err := cfg.Verb()
	a.NoError(err)
	a.Equal(byte('f'), verb)
}

func TestLoadFile(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	files := map[string]string{
		"decnum.yaml": "rounding: half_up\nsplit: 4\nscale: -6\nformat: sci\n",
		"decnum.toml": "rounding = \"half-up\"\nsplit = 4\nscale = -6\nformat = \"sci\"\n",
		"decnum.json": `{"rounding": "HALF-UP", "split": 4, "scale": -6, "format": "sci"}`,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
			cfg, err := Load(path)
			require.NoError(t, err)
			a.Equal(4, cfg.Split)
			a.Equal(-6, cfg.Scale)
			mode, err := cfg.Mode()
			a.NoError(err)
			a.Equal(round.HalfUp, mode)
			verb, err := cfg.Verb()
			a.NoError(err)
			a.Equal(byte('e'), verb)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	a := assert.New(t)
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "decnum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scale: -6\nsplit: 2\n"), 0644))
	t.Setenv("DECNUM_SCALE", "-4")
	t.Setenv("DECNUM_ROUNDING", "floor")
	cfg, err := Load(path)
	require.NoError(t, err)
	a.Equal(-4, cfg.Scale)
	a.Equal(2, cfg.Split)
	a.Equal("floor", cfg.Rounding)
}

func TestLoadErrors(t *testing.T) {
	a := assert.New(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	a.Error(err)

	tests := []string{
		"rounding: nearest\n",
		"split: 9\n",
		"split: -1\n",
		"scale: 40000\n",
		"format: hex\n",
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "decnum.yaml")
			require.NoError(t, os.WriteFile(path, []byte(test), 0644))
			_, err := Load(path)
			a.ErrorContains(err, "config validation failed")
		})
	}
}
