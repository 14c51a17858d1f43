package model

// TaskPatch describes a partial task update. Unset fields are left untouched.
// DueDate set to a nil value clears the due date.
type TaskPatch struct {
	Title     *string
	DueDate   Optional[*Date]
	Completed *bool
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && !p.DueDate.IsSet() && p.Completed == nil
}

// Apply returns a copy of the task with the patch merged in.
func (p TaskPatch) Apply(task Task) *BaseTask {
	updated := CopyTask(task)

	if p.Title != nil {
		updated.SetTitle(*p.Title)
	}

	if dueDate, ok := p.DueDate.Get(); ok {
		updated.SetDueDate(dueDate)
	}

	if p.Completed != nil {
		updated.SetCompleted(*p.Completed)
	}

	return updated
}

func PatchTitle(title string) TaskPatch {
	return TaskPatch{Title: &title}
}

func PatchCompleted(completed bool) TaskPatch {
	return TaskPatch{Completed: &completed}
}

func PatchDueDate(dueDate *Date) TaskPatch {
	return TaskPatch{DueDate: Some(dueDate)}
}
