package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"folio/internal/app/errors"
	"folio/internal/config"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// loadBundles merges the embedded locale bundles with any bundles found in
// the configured override directory. Override entries win key by key.
func loadBundles(cfg *config.Config) (map[string]map[string]string, error) {
	bundles := make(map[string]map[string]string)

	entries, err := embeddedLocales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrLocaleNotFound, err)
	}

	for _, entry := range entries {
		lang := strings.TrimSuffix(entry.Name(), ".json")

		data, err := embeddedLocales.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrLocaleNotFound, err)
		}

		bundle, err := parseBundle(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrLocaleCorrupted, entry.Name())
		}

		bundles[lang] = bundle
	}

	if cfg.Locales == "" {
		return bundles, nil
	}

	for _, lang := range cfg.Languages {
		path := filepath.Join(cfg.Locales, lang+".json")

		data, err := os.ReadFile(path)
		if err != nil {
			// override bundles are optional per language
			if os.IsNotExist(err) {
				continue
			}

			return nil, fmt.Errorf("%w: %s", errors.ErrLocaleNotFound, path)
		}

		bundle, err := parseBundle(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrLocaleCorrupted, path)
		}

		if bundles[lang] == nil {
			bundles[lang] = make(map[string]string)
		}

		for k, v := range bundle {
			bundles[lang][k] = v
		}
	}

	return bundles, nil
}

func parseBundle(data []byte) (map[string]string, error) {
	var bundle map[string]string
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, err
	}

	return bundle, nil
}
