package transform

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aivistools/style-adder/internal/archive"
	"github.com/aivistools/style-adder/internal/model"
)

// File format constants
const (
	ExtPackaged = ".aivis"
	ExtPlain    = ".json"

	ConfigFileName = "config.json"

	// StagingDirPattern names the per-load staging directories created via
	// os.MkdirTemp. Every load gets its own directory, so concurrent or
	// back-to-back runs never collide.
	StagingDirPattern = "aivis-staging-*"

	// JSONIndent is the step width of saved configurations
	JSONIndent = "  "
)

// Load reads a model file from path. A plain JSON file is parsed directly; a
// packaged model is extracted into a fresh staging directory owned by the
// returned document. On any failure during packaged loading the staging
// directory is removed before the error is returned.
func Load(path string) (*model.ModelDocument, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtPackaged:
		return loadPackaged(path)
	case ExtPlain:
		config, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		return &model.ModelDocument{Kind: model.KindPlain, Config: config}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// loadPackaged extracts a ZIP-packaged model and parses its root config.json
func loadPackaged(path string) (*model.ModelDocument, error) {
	stagingDir, err := os.MkdirTemp("", StagingDirPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}

	if err := archive.ExtractAll(path, stagingDir); err != nil {
		os.RemoveAll(stagingDir)
		return nil, fmt.Errorf("failed to extract %s: %w", filepath.Base(path), err)
	}

	configPath := filepath.Join(stagingDir, ConfigFileName)
	if _, err := os.Stat(configPath); err != nil {
		os.RemoveAll(stagingDir)
		return nil, fmt.Errorf("%w: %s", ErrMissingConfig, filepath.Base(path))
	}

	config, err := readConfigFile(configPath)
	if err != nil {
		os.RemoveAll(stagingDir)
		return nil, err
	}

	return &model.ModelDocument{
		Kind:       model.KindPackaged,
		Config:     config,
		StagingDir: stagingDir,
	}, nil
}

// readConfigFile parses a JSON object from path
func readConfigFile(path string) (model.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var config model.Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return config, nil
}

// MergeStyles injects the full style catalog into the document configuration.
// Catalog entries overwrite same-named style table entries, so merging an
// already-merged document changes nothing. Speaker entries without a styles
// field gain the ordered catalog identifier list; existing speaker styles are
// left untouched. Configurations whose styles or speakers keys hold unexpected
// types are rejected with model.ErrMalformedConfig.
func MergeStyles(doc *model.ModelDocument) error {
	table, err := doc.Config.Styles()
	if err != nil {
		return err
	}

	for _, id := range model.StyleOrder {
		table[id] = model.StyleCatalog[id].Entry()
	}

	speakers, found, err := doc.Config.Speakers()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	for _, speaker := range speakers {
		if _, ok := speaker[model.KeyStyles]; ok {
			continue
		}
		ids := make([]any, len(model.StyleOrder))
		for i, id := range model.StyleOrder {
			ids[i] = id
		}
		speaker[model.KeyStyles] = ids
	}
	return nil
}

// Save writes the document to outputPath in its source format. For a packaged
// document the updated config.json is written into the staging directory, the
// directory is re-packaged as a ZIP archive, and the staging directory is
// removed regardless of the outcome.
func Save(doc *model.ModelDocument, outputPath string) error {
	if doc.Kind == model.KindPackaged {
		return savePackaged(doc, outputPath)
	}
	return writeConfigFile(doc.Config, outputPath)
}

// savePackaged re-packages the staging directory into a new archive
func savePackaged(doc *model.ModelDocument, outputPath string) error {
	// The staging directory must not outlive the save, error or not
	defer os.RemoveAll(doc.StagingDir)

	configPath := filepath.Join(doc.StagingDir, ConfigFileName)
	if err := writeConfigFile(doc.Config, configPath); err != nil {
		return err
	}

	return archive.CreateFromDirectory(doc.StagingDir, outputPath)
}

// writeConfigFile serializes a configuration as indented UTF-8 JSON with
// non-ASCII characters preserved literally
func writeConfigFile(config model.Config, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", JSONIndent)

	if err := encoder.Encode(config); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return out.Close()
}
