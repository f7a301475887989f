package model

import (
	"errors"
	"fmt"
)

// ErrMalformedConfig is returned when a configuration key holds a value of an
// unexpected type, e.g. "styles" present but not an object.
var ErrMalformedConfig = errors.New("malformed model configuration")

// Config keys with typed accessors
const (
	KeyStyles   = "styles"
	KeySpeakers = "speakers"
)

// Config is a model configuration: an untyped JSON object as decoded by
// encoding/json. Mutations through the accessors below are visible to the
// owning ModelDocument.
type Config map[string]any

// DocumentKind distinguishes how a model was loaded and how it is saved back.
type DocumentKind string

const (
	// KindPlain is a bare JSON configuration file
	KindPlain DocumentKind = "plain"

	// KindPackaged is a ZIP archive holding config.json plus model assets
	KindPackaged DocumentKind = "packaged"
)

// ModelDocument is a loaded speech-synthesis model. For KindPackaged the
// document exclusively owns StagingDir from load until save; save removes it.
type ModelDocument struct {
	Kind       DocumentKind
	Config     Config
	StagingDir string // extracted archive contents, KindPackaged only
}

// Styles returns the styles table of the configuration, creating an empty one
// if absent. Fails with ErrMalformedConfig when the key holds a non-object.
func (c Config) Styles() (map[string]any, error) {
	raw, ok := c[KeyStyles]
	if !ok {
		table := map[string]any{}
		c[KeyStyles] = table
		return table, nil
	}

	table, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, expected object", ErrMalformedConfig, KeyStyles, raw)
	}
	return table, nil
}

// Speakers returns the speaker entries of the configuration. The second
// return is false when the configuration has no speakers key at all. Fails
// with ErrMalformedConfig when the key holds a non-array or an entry is not
// an object.
func (c Config) Speakers() ([]map[string]any, bool, error) {
	raw, ok := c[KeySpeakers]
	if !ok {
		return nil, false, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, true, fmt.Errorf("%w: %q is %T, expected array", ErrMalformedConfig, KeySpeakers, raw)
	}

	speakers := make([]map[string]any, 0, len(list))
	for i, entry := range list {
		speaker, ok := entry.(map[string]any)
		if !ok {
			return nil, true, fmt.Errorf("%w: %s[%d] is %T, expected object", ErrMalformedConfig, KeySpeakers, i, entry)
		}
		speakers = append(speakers, speaker)
	}
	return speakers, true, nil
}
