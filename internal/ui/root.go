package ui

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/aivistools/style-adder/internal/batch"
	"github.com/aivistools/style-adder/internal/config"
	"github.com/aivistools/style-adder/internal/model"
	"github.com/aivistools/style-adder/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window

	addBtn   *widget.Button
	clearBtn *widget.Button
	runBtn   *widget.Button
	stopBtn  *widget.Button
	fileList *widget.List

	outputBtn   *widget.Button
	outputLabel *widget.Label

	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	tasks []*model.StyleTask

	batchSvc     batch.Processor
	settings     *config.Settings
	localization *Localization

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, batchSvc batch.Processor) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Get configured output directory and make sure it exists
	outputDir := settings.GetOutputDirectory()
	platform.CreateDirectoryIfNotExists(outputDir)
	batchSvc.SetOutputDirectory(outputDir)

	ui := &RootUI{
		window:       window,
		batchSvc:     batchSvc,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Wire batch processor callbacks back to the UI
	ui.batchSvc.SetUpdateCallback(ui.onTaskUpdate)
	ui.batchSvc.SetCompletionCallback(ui.onBatchComplete)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// File queue buttons
	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddFiles), ui.onAddFilesClick)
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClear), ui.onClearClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewHBox(settingsBtn, ui.addBtn, ui.clearBtn)

	// File list
	ui.fileList = widget.NewList(
		func() int {
			return len(ui.tasks)
		},
		func() fyne.CanvasObject { return ui.createFileItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateFileItem(id, obj) },
	)

	// Output folder picker
	ui.outputBtn = widget.NewButton(ui.localization.GetText(KeySelectFolder), ui.onSelectOutputDir)
	ui.outputLabel = widget.NewLabel(ui.localization.GetText(KeyOutputPrefix) + ui.settings.GetOutputDirectory())
	ui.outputLabel.Truncation = fyne.TextTruncateEllipsis
	outputRow := container.NewBorder(nil, nil,
		widget.NewLabel(IconFolder+" "+ui.localization.GetText(KeyOutputFolder)),
		ui.outputBtn, ui.outputLabel)

	// Style catalog card: the fixed set of styles every model gains
	var styleLines []string
	for _, id := range model.StyleOrder {
		styleLines = append(styleLines, "• "+model.StyleCatalog[id].Name)
	}
	stylesCard := widget.NewCard(ui.localization.GetText(KeyStylesHeader), "",
		widget.NewLabel(strings.Join(styleLines, "\n")))

	// Progress and status
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeySelectFiles))

	// Run and stop buttons
	ui.runBtn = widget.NewButton(ui.localization.GetText(KeyRun), ui.onRunClick)
	ui.runBtn.Importance = widget.HighImportance

	ui.stopBtn = widget.NewButton(ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Disable()

	bottomPanel := container.NewVBox(
		outputRow,
		stylesCard,
		ui.progressBar,
		ui.statusLabel,
		container.NewGridWithColumns(2, ui.runBtn, ui.stopBtn),
	)

	content := container.NewBorder(
		topPanel,    // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		ui.fileList, // center - queued model files
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.addBtn.SetText(ui.localization.GetText(KeyAddFiles))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClear))
	ui.runBtn.SetText(ui.localization.GetText(KeyRun))
	ui.stopBtn.SetText(ui.localization.GetText(KeyStop))
	ui.outputBtn.SetText(ui.localization.GetText(KeySelectFolder))
	ui.outputLabel.SetText(ui.localization.GetText(KeyOutputPrefix) + ui.settings.GetOutputDirectory())

	ui.fileList.Refresh()
}

// onAddFilesClick opens the model file picker
func (ui *RootUI) onAddFilesClick() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ui.addFile(path)
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(ModelFileExtensions))
	fileDialog.Show()
}

// addFile queues one model file and refreshes the list
func (ui *RootUI) addFile(path string) {
	_, err := ui.batchSvc.AddFile(path)
	if err != nil {
		if strings.Contains(err.Error(), "already queued") {
			widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyAlreadyInQueue)), ui.window.Canvas())
		} else {
			widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyError)+": "+err.Error()), ui.window.Canvas())
		}
		return
	}

	log.Printf("Queued model file: %s", path)

	ui.refreshTasks()
	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyFilesSelected), len(ui.tasks)))
}

// onClearClick empties the file queue
func (ui *RootUI) onClearClick() {
	if err := ui.batchSvc.ClearTasks(); err != nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyError)+": "+err.Error()), ui.window.Canvas())
		return
	}

	ui.refreshTasks()
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(ui.localization.GetText(KeySelectFiles))
}

// onSelectOutputDir opens the output folder picker
func (ui *RootUI) onSelectOutputDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}

		dir := uri.Path()
		ui.settings.SetOutputDirectory(dir)
		ui.batchSvc.SetOutputDirectory(dir)
		ui.outputLabel.SetText(ui.localization.GetText(KeyOutputPrefix) + dir)
	}, ui.window)
}

// onRunClick starts the batch run
func (ui *RootUI) onRunClick() {
	if len(ui.tasks) == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning),
			ui.localization.GetText(KeyWarnNoFiles), ui.window)
		return
	}

	if ui.settings.GetOutputDirectory() == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning),
			ui.localization.GetText(KeyWarnNoOutput), ui.window)
		return
	}

	if err := ui.batchSvc.Run(); err != nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyError)+": "+err.Error()), ui.window.Canvas())
		return
	}

	ui.runBtn.Disable()
	ui.addBtn.Disable()
	ui.clearBtn.Disable()
	ui.stopBtn.Enable()
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyProcessing), 0, len(ui.tasks)))
}

// onStopClick asks the batch processor to stop after the current file
func (ui *RootUI) onStopClick() {
	ui.batchSvc.Stop()
	ui.stopBtn.Disable()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.batchSvc.SetOutputDirectory(ui.settings.GetOutputDirectory())
		ui.outputLabel.SetText(ui.localization.GetText(KeyOutputPrefix) + ui.settings.GetOutputDirectory())
	})
}

// createFileItem creates a new file row widget for the list
func (ui *RootUI) createFileItem() fyne.CanvasObject {
	dummyTask := &model.StyleTask{
		ID:     "placeholder",
		Status: model.TaskStatusPending,
	}

	fileRow := NewFileRow(dummyTask, ui.localization)
	fileRow.SetCallbacks(ui.onRevealFile)
	return fileRow
}

// updateFileItem updates a file row with current data
func (ui *RootUI) updateFileItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.tasks) {
		return
	}

	task := ui.tasks[id]
	if task == nil {
		return
	}

	if fileRow, ok := item.(*FileRow); ok {
		fileRow.SetCallbacks(ui.onRevealFile)
		fileRow.UpdateTask(task)
	}
}

// onRevealFile handles revealing a styled file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		return
	}

	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// refreshTasks re-reads the queue from the batch processor
func (ui *RootUI) refreshTasks() {
	ui.tasks = ui.batchSvc.GetAllTasks()
	ui.fileList.Refresh()
}

// debouncedUIUpdate prevents excessive UI updates by limiting frequency
func (ui *RootUI) debouncedUIUpdate() bool {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return false // Skip update if too soon
	}

	ui.lastUIUpdate = now
	return true
}

// onTaskUpdate handles task updates from the batch processor. It is invoked
// on the worker goroutine, so all widget access is marshaled via fyne.Do.
func (ui *RootUI) onTaskUpdate(task *model.StyleTask) {
	log.Printf("Task update received: id=%s status=%s output=%s",
		task.ID, task.Status, task.OutputPath)

	if !task.Status.IsFinished() && !ui.debouncedUIUpdate() {
		return
	}

	fyne.Do(func() {
		ui.refreshTasks()

		total := len(ui.tasks)
		finished := 0
		for _, t := range ui.tasks {
			if t.Status.IsFinished() {
				finished++
			}
		}

		if total > 0 {
			ui.progressBar.SetValue(float64(finished) / float64(total))
		}
		ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyProcessing), finished, total))
	})
}

// onBatchComplete handles the end-of-batch tally from the processor
func (ui *RootUI) onBatchComplete(result batch.Result) {
	log.Printf("Batch finished: %d succeeded, %d failed, %d stopped",
		result.Succeeded, result.Failed, result.Stopped)

	fyne.Do(func() {
		ui.refreshTasks()
		ui.progressBar.SetValue(1.0)
		ui.statusLabel.SetText(ui.localization.GetText(KeyDone))

		ui.runBtn.Enable()
		ui.addBtn.Enable()
		ui.clearBtn.Enable()
		ui.stopBtn.Disable()

		// Per-file errors are reported without having halted the batch
		for _, fileErr := range result.Errors {
			log.Printf("File failed: %s: %s", fileErr.InputPath, fileErr.Err)
		}

		if result.Failed == 0 {
			dialog.ShowInformation(ui.localization.GetText(KeyCompleted),
				fmt.Sprintf(ui.localization.GetText(KeyCompletedAll), result.Succeeded), ui.window)
		} else {
			message := fmt.Sprintf(ui.localization.GetText(KeyCompletedErrors), result.Succeeded, result.Failed)
			for _, fileErr := range result.Errors {
				message += "\n" + fmt.Sprintf(ui.localization.GetText(KeyFileError),
					fileErr.InputPath, fileErr.Err)
			}
			dialog.ShowInformation(ui.localization.GetText(KeyCompleted), message, ui.window)
		}

		// Auto-reveal the last styled file if enabled
		if ui.settings.GetAutoRevealOnComplete() {
			for i := len(ui.tasks) - 1; i >= 0; i-- {
				if ui.tasks[i].Status == model.TaskStatusCompleted && ui.tasks[i].OutputPath != "" {
					ui.onRevealFile(ui.tasks[i].OutputPath)
					break
				}
			}
		}
	})
}
