package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/aivistools/style-adder/internal/batch"
	"github.com/aivistools/style-adder/internal/config"
	"github.com/aivistools/style-adder/internal/platform"
	"github.com/aivistools/style-adder/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.aivistools.style-adder"
	AppName = "Aivis Style Adder"

	WindowWidth  = 720
	WindowHeight = 560
)

func main() {
	// Log version information
	fmt.Printf("Aivis Style Adder v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		fmt.Printf("failed to ensure output dir: %v\n", err)
	}

	batchSvc := batch.NewService(outputDir)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, batchSvc)

	// Show and run
	myWindow.ShowAndRun()
}
