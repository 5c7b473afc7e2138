package preset

import (
	"fmt"
	"github.com/willbeason/vermont/pkg/facade"
	"github.com/willbeason/vermont/pkg/frame"
	"gopkg.in/yaml.v3"
	"os"
)

// LoadStreet reads a rowhome street file over the default street. An empty
// path returns the default.
func LoadStreet(path string) (facade.StreetConfig, error) {
	return loadOver(path, facade.DefaultStreet())
}

// LoadFrame reads a picture frame file over the default frame. An empty path
// returns the default.
func LoadFrame(path string) (frame.Config, error) {
	return loadOver(path, frame.DefaultConfig())
}

func loadOver[T any](path string, base T) (T, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}
