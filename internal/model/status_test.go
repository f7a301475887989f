package model

import "testing"

func TestTaskStatusIsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusProcessing, true},
		{TaskStatusStopped, false},
		{TaskStatusCompleted, false},
		{TaskStatusError, false},
	}

	for _, test := range tests {
		if got := test.status.IsActive(); got != test.expected {
			t.Errorf("%s.IsActive() = %v, expected %v", test.status, got, test.expected)
		}
	}
}

func TestTaskStatusIsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusProcessing, false},
		{TaskStatusStopped, true},
		{TaskStatusCompleted, true},
		{TaskStatusError, true},
	}

	for _, test := range tests {
		if got := test.status.IsFinished(); got != test.expected {
			t.Errorf("%s.IsFinished() = %v, expected %v", test.status, got, test.expected)
		}
	}
}

func TestTaskStatusString(t *testing.T) {
	if TaskStatusProcessing.String() != "Processing" {
		t.Errorf("expected 'Processing', got %s", TaskStatusProcessing.String())
	}
}
