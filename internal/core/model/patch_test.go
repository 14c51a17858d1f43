package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestTaskPatchApply(t *testing.T) {
	dueDate := NewDate(2024, time.June, 12)
	createdAt := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	original := NewTask("task-1", "Buy milk", &dueDate, false, createdAt)

	updated := PatchCompleted(true).Apply(original)

	if e, g := true, updated.Completed(); e != g {
		t.Errorf("updated.Completed(): expected %v, got %v", e, g)
	}

	if e, g := false, original.Completed(); e != g {
		t.Errorf("original should not be mutated: expected %v, got %v", e, g)
	}

	if e, g := "Buy milk", updated.Title(); e != g {
		t.Errorf("updated.Title(): expected %v, got %v", e, g)
	}

	if updated.DueDate() == nil || *updated.DueDate() != dueDate {
		t.Errorf("updated.DueDate(): expected %v, got %v", dueDate, updated.DueDate())
	}

	cleared := PatchDueDate(nil).Apply(updated)
	if cleared.DueDate() != nil {
		t.Errorf("cleared.DueDate(): expected nil, got %v", cleared.DueDate())
	}

	if e, g := createdAt, cleared.CreatedAt(); !e.Equal(g) {
		t.Errorf("cleared.CreatedAt(): expected %v, got %v", e, g)
	}
}

func TestTaskPatchJSON(t *testing.T) {
	type payload struct {
		Title     *string         `json:"title"`
		DueDate   Optional[*Date] `json:"dueDate"`
		Completed *bool           `json:"completed"`
	}

	type testCase struct {
		Body       string
		DueDateSet bool
		DueDateNil bool
	}

	testCases := []testCase{
		{Body: `{"completed":true}`, DueDateSet: false, DueDateNil: true},
		{Body: `{"dueDate":null}`, DueDateSet: true, DueDateNil: true},
		{Body: `{"dueDate":"2024-06-11"}`, DueDateSet: true, DueDateNil: false},
	}

	for _, tc := range testCases {
		var p payload
		if err := json.Unmarshal([]byte(tc.Body), &p); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		dueDate, set := p.DueDate.Get()

		if e, g := tc.DueDateSet, set; e != g {
			t.Errorf("%s: dueDate set: expected %v, got %v", tc.Body, e, g)
		}

		if e, g := tc.DueDateNil, dueDate == nil; e != g {
			t.Errorf("%s: dueDate nil: expected %v, got %v", tc.Body, e, g)
		}
	}
}
