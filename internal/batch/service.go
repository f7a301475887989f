package batch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aivistools/style-adder/internal/model"
	"github.com/aivistools/style-adder/internal/transform"
)

// Output naming and ID constants
const (
	// StyledSuffix is appended to the input file stem for output naming
	StyledSuffix = "_styled"

	TaskIDPrefix = "style-"
)

// Service handles batch style-injection runs
type Service struct {
	tasks      map[string]*model.StyleTask
	taskOrder  []string // task IDs in enqueue order
	tasksMutex sync.RWMutex

	outputDir     string
	running       bool
	stopRequested bool

	onUpdate   func(*model.StyleTask) // callback for UI updates
	onComplete func(Result)           // callback for end-of-batch tally
}

// NewService creates a new batch processor
func NewService(outputDir string) *Service {
	return &Service{
		tasks:     make(map[string]*model.StyleTask),
		outputDir: outputDir,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.StyleTask)) {
	s.onUpdate = callback
}

// SetCompletionCallback sets the callback invoked with the final batch tally
func (s *Service) SetCompletionCallback(callback func(Result)) {
	s.onComplete = callback
}

// SetOutputDirectory sets the directory styled copies are written to
func (s *Service) SetOutputDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.outputDir = dir
}

// AddFile queues a model file for the next run
func (s *Service) AddFile(path string) (*model.StyleTask, error) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Check for duplicate inputs still in flight or queued
	for _, task := range s.tasks {
		if task.InputPath == path && !task.Status.IsFinished() {
			return nil, fmt.Errorf("file already queued: %s", path)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("input file does not exist: %s", path)
	}

	task := &model.StyleTask{
		ID:        generateTaskID(),
		InputPath: path,
		Status:    model.TaskStatusPending,
		Progress:  0.0,
		Percent:   0,
	}

	s.tasks[task.ID] = task
	s.taskOrder = append(s.taskOrder, task.ID)

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.StyleTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks in enqueue order
func (s *Service) GetAllTasks() []*model.StyleTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.StyleTask, 0, len(s.taskOrder))
	for _, id := range s.taskOrder {
		tasks = append(tasks, s.tasks[id])
	}
	return tasks
}

// ClearTasks removes all queued tasks. Fails while a run is active.
func (s *Service) ClearTasks() error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.running {
		return fmt.Errorf("cannot clear tasks while a batch run is active")
	}

	s.tasks = make(map[string]*model.StyleTask)
	s.taskOrder = nil
	return nil
}

// IsRunning reports whether a batch run is in progress
func (s *Service) IsRunning() bool {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.running
}

// Stop requests that no further files are started. The file currently being
// transformed runs to completion; there is no mid-file abort.
func (s *Service) Stop() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	if s.running {
		s.stopRequested = true
	}
}

// Run starts processing all pending tasks on a background goroutine. Files are
// processed strictly one at a time so each document's full load/merge/save
// cycle completes before the next begins.
func (s *Service) Run() error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.running {
		return fmt.Errorf("batch run already in progress")
	}
	if len(s.taskOrder) == 0 {
		return fmt.Errorf("no files queued")
	}
	if s.outputDir == "" {
		return fmt.Errorf("output directory not set")
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	s.running = true
	s.stopRequested = false

	go s.processAll()
	return nil
}

// processAll walks the queue sequentially and reports the final tally
func (s *Service) processAll() {
	var result Result

	s.tasksMutex.RLock()
	ids := make([]string, len(s.taskOrder))
	copy(ids, s.taskOrder)
	outputDir := s.outputDir
	s.tasksMutex.RUnlock()

	for _, id := range ids {
		s.tasksMutex.RLock()
		task := s.tasks[id]
		stopped := s.stopRequested
		s.tasksMutex.RUnlock()

		if task == nil || task.Status != model.TaskStatusPending {
			continue
		}

		if stopped {
			s.tasksMutex.Lock()
			task.Status = model.TaskStatusStopped
			task.FinishedAt = time.Now()
			s.tasksMutex.Unlock()
			s.notifyUpdate(task)
			result.Stopped++
			continue
		}

		if err := s.processTask(task, outputDir); err != nil {
			log.Printf("Failed to style %s: %v", task.InputPath, err)
			result.Failed++
			result.Errors = append(result.Errors, FileError{InputPath: task.InputPath, Err: err.Error()})
		} else {
			result.Succeeded++
		}
	}

	s.tasksMutex.Lock()
	s.running = false
	s.stopRequested = false
	s.tasksMutex.Unlock()

	if s.onComplete != nil {
		s.onComplete(result)
	}
}

// processTask runs one file through load, merge, and save
func (s *Service) processTask(task *model.StyleTask, outputDir string) error {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusProcessing
	task.StartedAt = time.Now()
	task.OutputPath = generateOutputPath(task.InputPath, outputDir)
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	err := s.transformFile(task.InputPath, task.OutputPath)

	s.tasksMutex.Lock()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	return err
}

// transformFile performs the full load/merge/save cycle for one model file
func (s *Service) transformFile(inputPath, outputPath string) error {
	doc, err := transform.Load(inputPath)
	if err != nil {
		return err
	}
	if err := transform.MergeStyles(doc); err != nil {
		// A packaged document still owns its staging dir here; Save is the
		// normal release path, so drop it explicitly on the merge error path.
		if doc.StagingDir != "" {
			os.RemoveAll(doc.StagingDir)
		}
		return err
	}
	return transform.Save(doc, outputPath)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.StyleTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateOutputPath places the styled copy of inputPath in outputDir,
// keeping the source extension: <stem>_styled<ext>
func generateOutputPath(inputPath, outputDir string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(outputDir, stem+StyledSuffix+ext)
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
