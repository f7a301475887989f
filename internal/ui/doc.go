package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires file selection, the output folder picker, and the run
// button to the batch processor and renders per-file rows, progress, and the
// final tally. All UI strings are localized via Localization.
