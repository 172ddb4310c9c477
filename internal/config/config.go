package config

import (
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds viewer and server settings read from YAML.
type Config struct {
	View struct {
		PanFraction   float64 `yaml:"pan_fraction"`    // fraction of the window moved per pan step
		LaneHeight    int     `yaml:"lane_height"`     // rows per lane in the terminal
		MinLabelWidth int     `yaml:"min_label_width"` // boxes this many cells wide or less carry no label
		SidebarWidth  int     `yaml:"sidebar_width"`
	} `yaml:"view"`
	Palette      []string `yaml:"palette"`
	Background   string   `yaml:"background"`
	DownloadName string   `yaml:"download_name"`
	Server       struct {
		Addr string `yaml:"addr"`
		Mode string `yaml:"mode"` // gin mode: debug, release or test
		// LabelMinWidth is the box width in axis units above which a
		// layout entry is marked as labelled.
		LabelMinWidth float64 `yaml:"label_min_width"`
		Width         float64 `yaml:"width"` // default axis width of a layout
	} `yaml:"server"`
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.View.PanFraction = 0.2
	c.View.LaneHeight = 1
	c.View.MinLabelWidth = 4
	c.View.SidebarWidth = 28
	c.Palette = []string{"#4f46e5", "#06b6d4", "#ef4444", "#10b981", "#f59e0b"}
	c.Background = "#0B0F14"
	c.DownloadName = "regions.bed"
	c.Server.Addr = ":8080"
	c.Server.Mode = "release"
	c.Server.LabelMinWidth = 20
	c.Server.Width = 1080
	return c
}

// DefaultPath is $XDG_CONFIG_HOME/ribbit/config.yaml or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ribbit", "config.yaml")
}

// Load reads path over the defaults. An empty path loads DefaultPath, and a
// missing default file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return c, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return c, nil
		}
		return c, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parse config %s", path)
	}
	if err := c.Validate(); err != nil {
		return c, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Validate checks ranges and colors.
func (c Config) Validate() error {
	if !(c.View.PanFraction > 0 && c.View.PanFraction <= 1) {
		return errors.Errorf("pan_fraction %v outside (0, 1]", c.View.PanFraction)
	}
	if c.View.LaneHeight < 1 {
		return errors.Errorf("lane_height %d below 1", c.View.LaneHeight)
	}
	if c.View.MinLabelWidth < 0 {
		return errors.Errorf("min_label_width %d is negative", c.View.MinLabelWidth)
	}
	if c.View.SidebarWidth < 10 {
		return errors.Errorf("sidebar_width %d below 10", c.View.SidebarWidth)
	}
	if len(c.Palette) == 0 {
		return errors.New("palette is empty")
	}
	for _, col := range append([]string{c.Background}, c.Palette...) {
		if _, err := colorful.Hex(col); err != nil {
			return errors.Wrapf(err, "color %q", col)
		}
	}
	if c.DownloadName == "" || filepath.Base(c.DownloadName) != c.DownloadName {
		return errors.Errorf("download_name %q must be a plain file name", c.DownloadName)
	}
	if c.Server.Width <= 0 {
		return errors.Errorf("server width %v must be positive", c.Server.Width)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return errors.Errorf("server mode %q unknown", c.Server.Mode)
	}
	return nil
}
