package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestDateRoundTripAcrossOffsets(t *testing.T) {
	offsets := []int{-12, -5, 0, 2, 9, 14}

	for _, hours := range offsets {
		loc := time.FixedZone("test", hours*3600)

		date, err := ParseDate("2024-06-15")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		local := date.In(loc)

		if e, g := "2024-06-15", local.Format(DateLayout); e != g {
			t.Errorf("offset %d: formatted local date: expected %v, got %v", hours, e, g)
		}

		if e, g := date, DateOf(local); e != g {
			t.Errorf("offset %d: DateOf(local): expected %v, got %v", hours, e, g)
		}
	}
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		DueDate *Date `json:"dueDate"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"dueDate":"2024-02-29"}`), &p); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if p.DueDate == nil {
		t.Fatalf("p.DueDate should not be nil")
	}

	if e, g := NewDate(2024, time.February, 29), *p.DueDate; e != g {
		t.Errorf("p.DueDate: expected %v, got %v", e, g)
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := `{"dueDate":"2024-02-29"}`, string(data); e != g {
		t.Errorf("json.Marshal(p): expected %v, got %v", e, g)
	}

	if err := json.Unmarshal([]byte(`{"dueDate":"2024-13-01"}`), &p); err == nil {
		t.Errorf("invalid month should not be accepted")
	}
}

func TestDateArithmetic(t *testing.T) {
	type testCase struct {
		Date     Date
		Days     int
		Expected Date
	}

	testCases := []testCase{
		{Date: NewDate(2024, time.June, 30), Days: 1, Expected: NewDate(2024, time.July, 1)},
		{Date: NewDate(2024, time.December, 31), Days: 1, Expected: NewDate(2025, time.January, 1)},
		{Date: NewDate(2024, time.March, 1), Days: -1, Expected: NewDate(2024, time.February, 29)},
		{Date: NewDate(2024, time.June, 10), Days: 0, Expected: NewDate(2024, time.June, 10)},
	}

	for _, tc := range testCases {
		if e, g := tc.Expected, tc.Date.AddDays(tc.Days); e != g {
			t.Errorf("%s + %d days: expected %v, got %v", tc.Date, tc.Days, e, g)
		}
	}

	if !NewDate(2024, time.June, 9).Before(NewDate(2024, time.June, 10)) {
		t.Errorf("2024-06-09 should be before 2024-06-10")
	}

	if !NewDate(2025, time.January, 1).After(NewDate(2024, time.December, 31)) {
		t.Errorf("2025-01-01 should be after 2024-12-31")
	}
}
