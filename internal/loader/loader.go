package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/clicker-sim/internal/models"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML
var ErrUnsupportedFormat = errors.New("unsupported file format")

// decode reads path and unmarshals it into v, picking the codec from the extension
func decode(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		return fmt.Errorf("%w: %q (want .json, .yaml or .yml)", ErrUnsupportedFormat, ext)
	}
	return nil
}

// LoadCatalog loads and validates a catalog file
func LoadCatalog(path string) (*models.Catalog, error) {
	var raw models.CatalogConfig
	if err := decode(path, &raw); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(raw.Items))
	for _, it := range raw.Items {
		if seen[it.Name] {
			return nil, fmt.Errorf("%w: duplicate item %q", models.ErrInvalidCatalog, it.Name)
		}
		seen[it.Name] = true
	}

	catalog := raw.ToCatalog()
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return catalog, nil
}

// LoadConfig loads and validates a scenario file. Durations left out of the file
// fall back to models.SimTime when the config is resolved.
func LoadConfig(path string) (*models.Config, error) {
	var cfg models.Config
	if err := decode(path, &cfg); err != nil {
		return nil, err
	}
	if err := models.ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// SaveCatalog writes a catalog in the format implied by the file extension
func SaveCatalog(path string, catalog *models.Catalog) error {
	raw := models.CatalogConfig{Growth: catalog.Growth(), Items: catalog.Snapshot()}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(raw, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(raw)
	default:
		return fmt.Errorf("%w: %q (want .json, .yaml or .yml)", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
