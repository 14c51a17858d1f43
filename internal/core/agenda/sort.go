package agenda

import (
	"slices"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
)

// Compare orders incomplete tasks first, then by ascending due date,
// undated tasks last.
func Compare(a, b model.Task) int {
	if a.Completed() != b.Completed() {
		if a.Completed() {
			return 1
		}

		return -1
	}

	dueA, dueB := a.DueDate(), b.DueDate()

	switch {
	case dueA == nil && dueB == nil:
		return 0
	case dueA == nil:
		return 1
	case dueB == nil:
		return -1
	default:
		return dueA.Compare(*dueB)
	}
}

// Sort returns a sorted copy of tasks. Equal tasks keep their input order.
func Sort[T model.Task](tasks []T) []T {
	sorted := make([]T, len(tasks))
	copy(sorted, tasks)

	slices.SortStableFunc(sorted, func(a, b T) int {
		return Compare(a, b)
	})

	return sorted
}

type Overview[T model.Task] struct {
	MustDo []T
	All    []T
}

// Partition splits tasks between must-do tasks and the others, each sorted.
func Partition[T model.Task](tasks []T, now time.Time) Overview[T] {
	mustDo := make([]T, 0)
	all := make([]T, 0)

	for _, t := range tasks {
		if IsMustDo(t.DueDate(), now) {
			mustDo = append(mustDo, t)
		} else {
			all = append(all, t)
		}
	}

	return Overview[T]{
		MustDo: Sort(mustDo),
		All:    Sort(all),
	}
}
