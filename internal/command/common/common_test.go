package common

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/bornholm/mustdo/internal/session"
	"github.com/bornholm/mustdo/pkg/client"
	"github.com/pkg/errors"
)

func TestMatchTask(t *testing.T) {
	now := time.Now()
	tasks := []model.Task{
		model.NewTask("abc123", "First", nil, false, now),
		model.NewTask("abd456", "Second", nil, false, now),
		model.NewTask("ab", "Third", nil, false, now),
	}

	type testCase struct {
		Ref           string
		ExpectedTitle string
		ExpectedErr   error
	}

	testCases := []testCase{
		{Ref: "abc", ExpectedTitle: "First"},
		{Ref: "abd456", ExpectedTitle: "Second"},
		{Ref: "ab", ExpectedTitle: "Third"},
		{Ref: "a", ExpectedErr: ErrAmbiguousReference},
		{Ref: "zzz", ExpectedErr: port.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.Ref, func(t *testing.T) {
			task, err := matchTask(tasks, tc.Ref)

			if tc.ExpectedErr != nil {
				if !errors.Is(err, tc.ExpectedErr) {
					t.Errorf("matchTask(%q): expected error %v, got %+v", tc.Ref, tc.ExpectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedTitle, task.Title(); e != g {
				t.Errorf("task.Title(): expected %v, got %v", e, g)
			}
		})
	}
}

func TestParseDueDate(t *testing.T) {
	dueDate, err := ParseDueDate("")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if dueDate != nil {
		t.Errorf("ParseDueDate(\"\"): expected nil, got %v", dueDate)
	}

	dueDate, err = ParseDueDate(" 2024-06-15 ")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "2024-06-15", dueDate.String(); e != g {
		t.Errorf("dueDate.String(): expected %v, got %v", e, g)
	}

	if _, err := ParseDueDate("15/06/2024"); !port.IsValidationError(err) {
		t.Errorf("ParseDueDate(invalid): expected validation error, got %+v", err)
	}
}

func TestUserMessage(t *testing.T) {
	type testCase struct {
		Name     string
		Err      error
		Expected string
	}

	testCases := []testCase{
		{Name: "NoSession", Err: errors.WithStack(session.ErrNoSession), Expected: "You are not logged in, please run 'auth login' first."},
		{Name: "Validation", Err: errors.WithStack(port.NewValidationError("Title is required")), Expected: "Title is required"},
		{Name: "NotFound", Err: errors.WithStack(port.ErrNotFound), Expected: "Task not found"},
		{Name: "Transient", Err: errors.WithStack(client.ErrTransient), Expected: "Sorry we're having some technical issues right now. Please try again later."},
		{Name: "Local", Err: errors.New("unknown time zone 'Mars/Olympus'"), Expected: "unknown time zone 'Mars/Olympus'"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.Expected, UserMessage(tc.Err); e != g {
				t.Errorf("UserMessage(): expected %v, got %v", e, g)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	type testCase struct {
		Input    string
		Expected bool
	}

	testCases := []testCase{
		{Input: "y\n", Expected: true},
		{Input: "YES\n", Expected: true},
		{Input: "n\n", Expected: false},
		{Input: "\n", Expected: false},
		{Input: "y", Expected: true},
	}

	for _, tc := range testCases {
		t.Run(strings.TrimSpace(tc.Input), func(t *testing.T) {
			var out bytes.Buffer

			confirmed, err := Confirm(strings.NewReader(tc.Input), &out, "Delete?")
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, confirmed; e != g {
				t.Errorf("Confirm(%q): expected %v, got %v", tc.Input, e, g)
			}

			if e, g := "Delete? [y/N] ", out.String(); e != g {
				t.Errorf("out: expected %q, got %q", e, g)
			}
		})
	}
}
