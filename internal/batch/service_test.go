package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aivistools/style-adder/internal/model"
)

func TestNewService(t *testing.T) {
	service := NewService("/tmp/out")

	if len(service.tasks) != 0 {
		t.Errorf("Expected empty tasks map, got %d items", len(service.tasks))
	}
	if service.IsRunning() {
		t.Error("New service should not be running")
	}
}

func TestGenerateOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		dir      string
		expected string
	}{
		{"/models/miku.aivis", "/out", "/out/miku_styled.aivis"},
		{"/models/miku.json", "/out", "/out/miku_styled.json"},
		{"miku.aivis", "/out", "/out/miku_styled.aivis"},
		{"/models/noext", "/out", "/out/noext_styled"},
	}

	for _, test := range tests {
		result := generateOutputPath(test.input, test.dir)
		if result != test.expected {
			t.Errorf("generateOutputPath(%s, %s) = %s, expected %s", test.input, test.dir, result, test.expected)
		}
	}
}

func TestAddFile_NonExistentFile(t *testing.T) {
	service := NewService(t.TempDir())

	_, err := service.AddFile("/path/to/nonexistent/model.aivis")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestAddFile_Duplicate(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dir)

	path := filepath.Join(dir, "model.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	task, err := service.AddFile(path)
	if err != nil {
		t.Fatalf("Expected no error for first add, got: %v", err)
	}

	if _, err := service.AddFile(path); err == nil {
		t.Error("Expected error for duplicate add, got nil")
	}

	// A finished task no longer blocks re-adding the same file
	service.tasksMutex.Lock()
	task.Status = model.TaskStatusCompleted
	service.tasksMutex.Unlock()

	if _, err := service.AddFile(path); err != nil {
		t.Errorf("Expected re-add after completion to succeed, got: %v", err)
	}
}

func TestGetAllTasksOrder(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dir)

	names := []string{"a.json", "b.json", "c.json"}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatalf("failed to write input: %v", err)
		}
		if _, err := service.AddFile(path); err != nil {
			t.Fatalf("AddFile failed: %v", err)
		}
	}

	tasks := service.GetAllTasks()
	if len(tasks) != len(names) {
		t.Fatalf("Expected %d tasks, got %d", len(names), len(tasks))
	}
	for i, name := range names {
		if got := tasks[i].GetDisplayTitle(); got != name {
			t.Errorf("Task %d: expected %s, got %s", i, name, got)
		}
	}
}

func TestRunWithoutFiles(t *testing.T) {
	service := NewService(t.TempDir())

	if err := service.Run(); err == nil {
		t.Error("Expected error for empty queue, got nil")
	}
}

func TestRunWithoutOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	service := NewService("")

	path := filepath.Join(dir, "model.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	if _, err := service.AddFile(path); err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}

	if err := service.Run(); err == nil {
		t.Error("Expected error for unset output directory, got nil")
	}
}

func TestRunBatch(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "styled")
	service := NewService(outputDir)

	good1 := filepath.Join(inputDir, "one.json")
	good2 := filepath.Join(inputDir, "two.json")
	broken := filepath.Join(inputDir, "broken.json")
	if err := os.WriteFile(good1, []byte(`{"name":"one"}`), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	if err := os.WriteFile(good2, []byte(`{"speakers":[{"id":1}]}`), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	if err := os.WriteFile(broken, []byte(`{"name": `), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	for _, path := range []string{good1, broken, good2} {
		if _, err := service.AddFile(path); err != nil {
			t.Fatalf("AddFile failed: %v", err)
		}
	}

	done := make(chan Result, 1)
	service.SetCompletionCallback(func(result Result) { done <- result })

	var updates int
	service.SetUpdateCallback(func(*model.StyleTask) { updates++ })

	if err := service.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var result Result
	select {
	case result = <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("batch did not complete in time")
	}

	if result.Succeeded != 2 {
		t.Errorf("Expected 2 successes, got %d", result.Succeeded)
	}
	if result.Failed != 1 {
		t.Errorf("Expected 1 failure, got %d", result.Failed)
	}
	if len(result.Errors) != 1 || result.Errors[0].InputPath != broken {
		t.Errorf("Expected the broken file in the error list, got %+v", result.Errors)
	}
	if updates == 0 {
		t.Error("Expected update callbacks during the run")
	}
	if service.IsRunning() {
		t.Error("Service should not be running after completion")
	}

	// A failed file must not abort the rest of the batch
	styled := filepath.Join(outputDir, "two_styled.json")
	data, err := os.ReadFile(styled)
	if err != nil {
		t.Fatalf("styled output missing: %v", err)
	}

	var config map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatalf("styled output is not valid JSON: %v", err)
	}
	styles, ok := config["styles"].(map[string]any)
	if !ok {
		t.Fatal("styled output has no styles table")
	}
	if len(styles) != len(model.StyleOrder) {
		t.Errorf("Expected %d styles, got %d", len(model.StyleOrder), len(styles))
	}

	if _, err := os.Stat(filepath.Join(outputDir, "broken_styled.json")); !os.IsNotExist(err) {
		t.Error("failed input must not leave an output file")
	}
}

func TestClearTasks(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dir)

	path := filepath.Join(dir, "model.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	if _, err := service.AddFile(path); err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}

	if err := service.ClearTasks(); err != nil {
		t.Fatalf("ClearTasks failed: %v", err)
	}
	if len(service.GetAllTasks()) != 0 {
		t.Error("Expected no tasks after clear")
	}

	// Clearing during an active run is refused
	service.tasksMutex.Lock()
	service.running = true
	service.tasksMutex.Unlock()

	if err := service.ClearTasks(); err == nil {
		t.Error("Expected error when clearing during a run, got nil")
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService("/tmp/out")

	updateCalled := false
	var updatedTask *model.StyleTask

	service.SetUpdateCallback(func(task *model.StyleTask) {
		updateCalled = true
		updatedTask = task
	})

	task := &model.StyleTask{
		ID:        "test-id",
		InputPath: "/models/miku.aivis",
		Status:    model.TaskStatusProcessing,
	}

	service.notifyUpdate(task)

	if !updateCalled {
		t.Error("Expected update callback to be called")
	}
	if updatedTask != task {
		t.Error("Expected updated task to be the same as input task")
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}
	if !strings.HasPrefix(id1, TaskIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", TaskIDPrefix, id1)
	}
}

func TestStopSkipsRemainingFiles(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "styled")
	service := NewService(outputDir)

	var inputs []string
	for _, name := range []string{"first.json", "second.json", "third.json"} {
		path := filepath.Join(inputDir, name)
		if err := os.WriteFile(path, []byte(`{"speakers":[{"id":1}]}`), 0644); err != nil {
			t.Fatalf("failed to write input: %v", err)
		}
		if _, err := service.AddFile(path); err != nil {
			t.Fatalf("AddFile failed: %v", err)
		}
		inputs = append(inputs, path)
	}

	done := make(chan Result, 1)
	service.SetCompletionCallback(func(result Result) { done <- result })

	// Request the stop as soon as the first file starts processing. The file
	// in flight runs to completion; everything behind it must be skipped.
	var stopOnce sync.Once
	service.SetUpdateCallback(func(task *model.StyleTask) {
		if task.Status == model.TaskStatusProcessing {
			stopOnce.Do(service.Stop)
		}
	})

	if err := service.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var result Result
	select {
	case result = <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("batch did not complete in time")
	}

	if result.Succeeded != 1 {
		t.Errorf("Expected 1 success, got %d", result.Succeeded)
	}
	if result.Stopped != 2 {
		t.Errorf("Expected 2 stopped tasks, got %d", result.Stopped)
	}
	if result.Failed != 0 {
		t.Errorf("Expected no failures, got %d", result.Failed)
	}
	if service.IsRunning() {
		t.Error("Service should not be running after a stopped batch")
	}

	tasks := service.GetAllTasks()
	if tasks[0].Status != model.TaskStatusCompleted {
		t.Errorf("First task should be Completed, got %s", tasks[0].Status)
	}
	for _, task := range tasks[1:] {
		if task.Status != model.TaskStatusStopped {
			t.Errorf("Task %s should be Stopped, got %s", task.GetDisplayTitle(), task.Status)
		}
	}

	// Only the in-flight file may have produced output
	if _, err := os.Stat(filepath.Join(outputDir, "first_styled.json")); err != nil {
		t.Errorf("styled output for the in-flight file missing: %v", err)
	}
	for _, name := range []string{"second_styled.json", "third_styled.json"} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); !os.IsNotExist(err) {
			t.Errorf("stopped file must not leave an output file: %s", name)
		}
	}

	// A fresh run after a stop picks the skipped files back up as new tasks
	if _, err := service.AddFile(inputs[1]); err != nil {
		t.Errorf("re-adding a stopped file should succeed: %v", err)
	}
}
