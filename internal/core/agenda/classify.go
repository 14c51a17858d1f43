package agenda

import (
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
)

// DisplayLayout is the layout of dates outside of the named buckets.
const DisplayLayout = "Jan 2, 2006"

type Kind int

const (
	KindDate Kind = iota
	KindOverdue
	KindToday
	KindTomorrow
)

type Label struct {
	Kind Kind
	Date model.Date
}

// String implements [fmt.Stringer].
func (l Label) String() string {
	switch l.Kind {
	case KindOverdue:
		return "Overdue"
	case KindToday:
		return "Today"
	case KindTomorrow:
		return "Tomorrow"
	default:
		return FormatDate(l.Date)
	}
}

// EndOfTomorrow returns the last millisecond of the day after now, in now's location.
func EndOfTomorrow(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day+1, 23, 59, 59, int(999*time.Millisecond), now.Location())
}

// IsDueBy reports whether the due instant is at or before the end of tomorrow.
func IsDueBy(due time.Time, now time.Time) bool {
	return !due.After(EndOfTomorrow(now))
}

// IsMustDo reports whether a task due at the given date must be done by the
// end of tomorrow. Tasks without due date never are.
func IsMustDo(dueDate *model.Date, now time.Time) bool {
	if dueDate == nil {
		return false
	}

	return IsDueBy(dueDate.In(now.Location()), now)
}

// LabelOf classifies the due date against now's calendar day.
func LabelOf(dueDate model.Date, now time.Time) Label {
	today := model.DateOf(now)

	switch {
	case dueDate.Before(today):
		return Label{Kind: KindOverdue, Date: dueDate}
	case dueDate == today:
		return Label{Kind: KindToday, Date: dueDate}
	case dueDate == today.AddDays(1):
		return Label{Kind: KindTomorrow, Date: dueDate}
	default:
		return Label{Kind: KindDate, Date: dueDate}
	}
}

// LabelAt classifies an instant, ignoring its time of day in now's location.
func LabelAt(due time.Time, now time.Time) Label {
	return LabelOf(model.DateOf(due.In(now.Location())), now)
}

func FormatDate(date model.Date) string {
	return date.In(time.UTC).Format(DisplayLayout)
}
