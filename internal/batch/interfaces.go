package batch

import (
	"github.com/aivistools/style-adder/internal/model"
)

// FileError records one failed input inside a batch run.
type FileError struct {
	InputPath string
	Err       string
}

// Result is the final tally of a batch run.
type Result struct {
	Succeeded int
	Failed    int
	Stopped   int
	Errors    []FileError
}

// Processor defines the interface for the batch style-injection service.
type Processor interface {
	SetUpdateCallback(func(*model.StyleTask))
	SetCompletionCallback(func(Result))
	SetOutputDirectory(dir string)
	AddFile(path string) (*model.StyleTask, error)
	GetTask(id string) (*model.StyleTask, bool)
	GetAllTasks() []*model.StyleTask
	ClearTasks() error
	Run() error
	Stop()
	IsRunning() bool
}
