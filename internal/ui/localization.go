package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyAddFiles         = "add_files"
	KeyClear            = "clear"
	KeyRun              = "run"
	KeyStop             = "stop"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyOutputFolder     = "output_folder"
	KeySelectFolder     = "select_folder"
	KeyNotSelected      = "not_selected"
	KeyOutputPrefix     = "output_prefix"
	KeyStylesHeader     = "styles_header"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyReveal           = "reveal"
	KeyAutoReveal       = "auto_reveal"
	KeySelectFiles      = "select_files"
	KeyFilesSelected    = "files_selected"
	KeyProcessing       = "processing"
	KeyDone             = "done"
	KeyWarning          = "warning"
	KeyWarnNoFiles      = "warn_no_files"
	KeyWarnNoOutput     = "warn_no_output"
	KeyCompleted        = "completed"
	KeyCompletedAll     = "completed_all"
	KeyCompletedErrors  = "completed_errors"
	KeyError            = "error"
	KeyFileError        = "file_error"
	KeyAlreadyInQueue   = "already_in_queue"
	KeyErrorOpeningFile = "error_opening_file"
	KeySettingsSaved    = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ja": "日本語",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Aivis Style Adder",
		KeyAddFiles:         "Add Files",
		KeyClear:            "Clear",
		KeyRun:              "Add Styles",
		KeyStop:             "Stop",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyOutputFolder:     "Output Folder",
		KeySelectFolder:     "Select Folder",
		KeyNotSelected:      "Not selected",
		KeyOutputPrefix:     "Output: ",
		KeyStylesHeader:     "Styles to be added",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyReveal:           "Reveal",
		KeyAutoReveal:       "Reveal output when finished",
		KeySelectFiles:      "Select model files to begin",
		KeyFilesSelected:    "%d file(s) selected",
		KeyProcessing:       "Processing... (%d/%d)",
		KeyDone:             "Finished",
		KeyWarning:          "Warning",
		KeyWarnNoFiles:      "Please select model files",
		KeyWarnNoOutput:     "Please select an output folder",
		KeyCompleted:        "Completed",
		KeyCompletedAll:     "All files processed!\nSucceeded: %d",
		KeyCompletedErrors:  "Processing finished.\nSucceeded: %d\nErrors: %d",
		KeyError:            "Error",
		KeyFileError:        "Error while processing %s: %s",
		KeyAlreadyInQueue:   "Already in queue",
		KeyErrorOpeningFile: "Error opening file",
		KeySettingsSaved:    "Settings saved successfully!",
	}

	// Japanese texts
	l.texts["ja"] = map[string]string{
		KeyAppTitle:         "AivisSpeech スタイル追加ツール",
		KeyAddFiles:         "ファイルを選択",
		KeyClear:            "クリア",
		KeyRun:              "スタイル追加を実行",
		KeyStop:             "停止",
		KeySettings:         "設定",
		KeyFile:             "ファイル",
		KeyLanguage:         "言語",
		KeyOutputFolder:     "出力フォルダ",
		KeySelectFolder:     "フォルダを選択",
		KeyNotSelected:      "未選択",
		KeyOutputPrefix:     "出力先: ",
		KeyStylesHeader:     "追加されるスタイル",
		KeySave:             "保存",
		KeyCancel:           "キャンセル",
		KeyReveal:           "表示",
		KeyAutoReveal:       "完了時に出力先を表示",
		KeySelectFiles:      "ファイルを選択してください",
		KeyFilesSelected:    "%d個のファイルが選択されました",
		KeyProcessing:       "処理中... (%d/%d)",
		KeyDone:             "処理完了",
		KeyWarning:          "警告",
		KeyWarnNoFiles:      "モデルファイルを選択してください",
		KeyWarnNoOutput:     "出力フォルダを選択してください",
		KeyCompleted:        "完了",
		KeyCompletedAll:     "すべてのファイルの処理が完了しました！\n成功: %d個",
		KeyCompletedErrors:  "処理が完了しました。\n成功: %d個\nエラー: %d個",
		KeyError:            "エラー",
		KeyFileError:        "%sの処理中にエラー: %s",
		KeyAlreadyInQueue:   "既にキューにあります",
		KeyErrorOpeningFile: "ファイルを開けませんでした",
		KeySettingsSaved:    "設定を保存しました！",
	}
}
