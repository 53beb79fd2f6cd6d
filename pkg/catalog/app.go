package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/neatsheets/neatsheets/pkg/sheet"
)

// formatConstraint is the range of sheet data formats this build can
// load. The app config may pin its format version; a major bump in the
// record layout will move this.
var formatConstraint = mustConstraint("^1")

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// PlatformConfig names the sheet data file for one platform.
type PlatformConfig struct {
	Data string `toml:"data" yaml:"data" json:"data" jsonschema:"description=Sheet CSV file, relative to the app directory"`
}

// AppConfig is the app.toml / app.yml structure of one app directory.
type AppConfig struct {
	Format          string          `toml:"format,omitempty" yaml:"format,omitempty" json:"format,omitempty" jsonschema:"description=Sheet data format version (semver)"`
	Logo            string          `toml:"logo" yaml:"logo" json:"logo" jsonschema:"description=Logo image file, relative to the app directory"`
	DisplayName     string          `toml:"display_name" yaml:"display_name" json:"display_name"`
	DisplayNameFull string          `toml:"display_name_full" yaml:"display_name_full" json:"display_name_full"`
	Mac             *PlatformConfig `toml:"mac,omitempty" yaml:"mac,omitempty" json:"mac,omitempty"`
	PC              *PlatformConfig `toml:"pc,omitempty" yaml:"pc,omitempty" json:"pc,omitempty"`
}

// Platform returns the per-platform table, or nil when the app has no
// sheet for that platform.
func (c *AppConfig) Platform(p Platform) *PlatformConfig {
	switch p {
	case PlatformMac:
		return c.Mac
	case PlatformPC:
		return c.PC
	default:
		return nil
	}
}

// App is the collective data for a single application: display names,
// logo and one assembled sheet per platform.
type App struct {
	Name            string
	Lang            Language
	Dir             string
	Logo            string
	DisplayName     string
	DisplayNameFull string
	Sheets          map[Platform]*sheet.Sheet
}

// Platforms returns the platforms this app has sheets for, in display
// order.
func (a *App) Platforms() []Platform {
	var out []Platform
	for _, p := range AllPlatforms() {
		if _, ok := a.Sheets[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Sheet returns the sheet for one platform, or nil.
func (a *App) Sheet(p Platform) *sheet.Sheet { return a.Sheets[p] }

// LoadApp reads one app directory. The config may be app.toml or
// app.yml; every platform table it names must load completely, so a
// single bad record rejects the whole app.
func LoadApp(dir string) (*App, error) {
	cfg, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	if cfg.Format != "" {
		v, err := semver.NewVersion(cfg.Format)
		if err != nil {
			return nil, fmt.Errorf("%s: bad format version %q: %w", dir, cfg.Format, err)
		}
		if !formatConstraint.Check(v) {
			return nil, fmt.Errorf("%s: format version %s outside supported range %s", dir, v, formatConstraint)
		}
	}

	app := &App{
		Name:            filepath.Base(dir),
		Dir:             dir,
		Logo:            cfg.Logo,
		DisplayName:     cfg.DisplayName,
		DisplayNameFull: cfg.DisplayNameFull,
		Sheets:          make(map[Platform]*sheet.Sheet),
	}

	for _, p := range AllPlatforms() {
		pc := cfg.Platform(p)
		if pc == nil {
			continue
		}
		dataPath := filepath.Join(dir, pc.Data)
		f, err := os.Open(dataPath)
		if err != nil {
			return nil, fmt.Errorf("open sheet data: %w", err)
		}
		s, err := sheet.ReadCSV(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", dataPath, err)
		}
		app.Sheets[p] = s
	}

	if len(app.Sheets) == 0 {
		return nil, fmt.Errorf("%s: app config names no platform sheets", dir)
	}
	return app, nil
}

// LoadConfig reads the app.toml (preferred) or app.yml config from an
// app directory.
func LoadConfig(dir string) (*AppConfig, error) {
	var cfg AppConfig

	tomlPath := filepath.Join(dir, "app.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		if _, err := toml.DecodeFile(tomlPath, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", tomlPath, err)
		}
		return &cfg, nil
	}

	ymlPath := filepath.Join(dir, "app.yml")
	raw, err := os.ReadFile(ymlPath)
	if err != nil {
		return nil, fmt.Errorf("%s: no app.toml or app.yml", dir)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ymlPath, err)
	}
	return &cfg, nil
}
