package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/aivistools/style-adder/internal/model"
)

// FileRow represents a compact row for one queued model file
type FileRow struct {
	widget.BaseWidget

	task         *model.StyleTask
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	statusLabel *widget.Label

	// Action buttons
	revealBtn *widget.Button

	// Callbacks
	onReveal func(filePath string)
}

// NewFileRow creates a new file row widget
func NewFileRow(task *model.StyleTask, localization *Localization) *FileRow {
	if task == nil {
		log.Printf("Warning: NewFileRow called with nil task")
		task = &model.StyleTask{
			ID:     "dummy",
			Status: model.TaskStatusPending,
		}
	}

	fr := &FileRow{
		task:         task,
		localization: localization,
	}
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	fr.updateFromTask()
	return fr
}

// SetCallbacks sets the action callbacks
func (fr *FileRow) SetCallbacks(onReveal func(filePath string)) {
	fr.onReveal = onReveal
}

// UpdateTask updates the row with new task data
func (fr *FileRow) UpdateTask(task *model.StyleTask) {
	if task == nil {
		return
	}

	fr.task = task
	fr.updateFromTask()
	fr.Refresh()
}

// createUI creates the UI components
func (fr *FileRow) createUI() {
	fr.titleLabel = widget.NewLabel("")
	fr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	fr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	fr.titleLabel.Alignment = fyne.TextAlignLeading

	fr.statusLabel = widget.NewLabel("")
	fr.statusLabel.Alignment = fyne.TextAlignTrailing

	fr.revealBtn = widget.NewButton(fr.localization.GetText(KeyReveal), func() {
		currentTask := fr.task
		if fr.onReveal == nil {
			log.Printf("onReveal callback is nil for task %s", currentTask.ID)
			return
		}
		if currentTask.OutputPath == "" {
			return
		}
		fr.onReveal(currentTask.OutputPath)
	})
	fr.revealBtn.Importance = widget.MediumImportance
}

// updateFromTask updates UI components based on task state
func (fr *FileRow) updateFromTask() {
	if fr.task == nil {
		return
	}

	fr.titleLabel.SetText(fr.task.GetDisplayTitle())

	// Update status label color and text
	switch fr.task.Status {
	case model.TaskStatusError:
		fr.statusLabel.Importance = widget.DangerImportance
		fr.statusLabel.SetText(IconError + " " + fr.task.Status.String())
	case model.TaskStatusCompleted:
		fr.statusLabel.Importance = widget.SuccessImportance
		fr.statusLabel.SetText(IconDone + " " + fr.task.Status.String())
	case model.TaskStatusProcessing:
		fr.statusLabel.Importance = widget.HighImportance
		fr.statusLabel.SetText(fr.task.Status.String())
	default:
		fr.statusLabel.Importance = widget.MediumImportance
		fr.statusLabel.SetText(fr.task.Status.String())
	}

	// Reveal only makes sense once a styled copy exists on disk
	if fr.task.Status == model.TaskStatusCompleted && fr.task.OutputPath != "" {
		fr.revealBtn.Enable()
	} else {
		fr.revealBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	return &fileRowRenderer{fileRow: fr}
}

// fileRowRenderer renders the file row widget
type fileRowRenderer struct {
	fileRow *FileRow
	layout  *fyne.Container
}

// Layout arranges the components
func (r *fileRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		if size.Width < RowMinWidth {
			size.Width = RowMinWidth
		}
		if size.Height < RowMinHeight {
			size.Height = RowMinHeight
		}
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *fileRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *fileRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *fileRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *fileRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *fileRowRenderer) createLayout() {
	fr := r.fileRow

	// Fix the status column width with a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	rightCluster := container.NewHBox(
		fixedWidth(StatusLabelWidth, fr.statusLabel),
		fr.revealBtn,
	)

	mainContent := container.NewBorder(nil, nil, nil, rightCluster, fr.titleLabel)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
