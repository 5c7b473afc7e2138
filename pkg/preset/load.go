package preset

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
)

// DefaultBase is the preset a scene file starts from when it names none.
const DefaultBase = "vermont"

// Load reads a YAML scene file. The file is decoded over the preset named by
// its base key, so it only needs the fields it changes.
func Load(path string) (Landscape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Landscape{}, fmt.Errorf("read scene file: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return Landscape{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a scene from YAML.
func Parse(data []byte) (Landscape, error) {
	var head struct {
		Base string `yaml:"base"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Landscape{}, fmt.Errorf("parse scene: %w", err)
	}
	if head.Base == "" {
		head.Base = DefaultBase
	}

	l, err := Named(head.Base)
	if err != nil {
		return Landscape{}, err
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Landscape{}, fmt.Errorf("parse scene: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Landscape{}, err
	}
	return l, nil
}

// Write saves a scene as YAML, creating its directory if needed.
func Write(path string, l Landscape) error {
	data, err := yaml.Marshal(&l)
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create scene directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}
