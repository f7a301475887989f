package model

// Style identifiers injected into every model, in catalog order.
const (
	StyleNormal      = "normal"
	StyleStandard    = "standard"
	StyleHighTension = "high_tension"
	StyleCalm        = "calm"
	StyleCheerful    = "cheerful"
	StyleEmotional   = "emotional"
)

// StyleParameters holds the numeric synthesis parameters of a style preset.
type StyleParameters struct {
	Speed           float64
	Pitch           float64
	Intonation      float64
	Volume          float64
	EmotionStrength float64
}

// Style pairs a display name with its parameter preset.
type Style struct {
	Name       string
	Parameters StyleParameters
}

// StyleOrder lists the six catalog identifiers in insertion order. Speaker
// entries that gain a styles field receive this exact ordering.
var StyleOrder = []string{
	StyleNormal,
	StyleStandard,
	StyleHighTension,
	StyleCalm,
	StyleCheerful,
	StyleEmotional,
}

// StyleCatalog is the fixed set of speaking styles added to every model.
// It is constructed once and must never be mutated; it is shared read-only
// across batch workers.
var StyleCatalog = map[string]Style{
	StyleNormal: {
		Name:       "Normal",
		Parameters: StyleParameters{Speed: 1.0, Pitch: 0.0, Intonation: 1.0, Volume: 1.0, EmotionStrength: 0.5},
	},
	StyleStandard: {
		Name:       "Standard",
		Parameters: StyleParameters{Speed: 1.0, Pitch: 0.0, Intonation: 1.0, Volume: 1.0, EmotionStrength: 0.5},
	},
	StyleHighTension: {
		Name:       "High Tension",
		Parameters: StyleParameters{Speed: 1.2, Pitch: 0.2, Intonation: 1.5, Volume: 1.2, EmotionStrength: 0.8},
	},
	StyleCalm: {
		Name:       "Calm",
		Parameters: StyleParameters{Speed: 0.9, Pitch: -0.1, Intonation: 0.8, Volume: 0.9, EmotionStrength: 0.3},
	},
	StyleCheerful: {
		Name:       "Cheerful",
		Parameters: StyleParameters{Speed: 1.1, Pitch: 0.1, Intonation: 1.3, Volume: 1.1, EmotionStrength: 0.7},
	},
	StyleEmotional: {
		Name:       "Emotional",
		Parameters: StyleParameters{Speed: 0.95, Pitch: -0.2, Intonation: 1.4, Volume: 1.0, EmotionStrength: 0.9},
	},
}

// Entry returns the style as a generic JSON tree ready to be inserted into a
// model configuration under config["styles"][id].
func (s Style) Entry() map[string]any {
	return map[string]any{
		"name": s.Name,
		"parameters": map[string]any{
			"speed":            s.Parameters.Speed,
			"pitch":            s.Parameters.Pitch,
			"intonation":       s.Parameters.Intonation,
			"volume":           s.Parameters.Volume,
			"emotion_strength": s.Parameters.EmotionStrength,
		},
	}
}
