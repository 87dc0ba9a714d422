// Package datelabel turns creation timestamps into the headers used when
// listing todos: "Today", "Yesterday" or a DD/MM/YYYY date.
package datelabel

import "time"

// DateLayout is the display format for dates (zero-padded day/month/year).
const DateLayout = "02/01/2006"

// Category is the coarse bucket a timestamp falls into relative to now.
type Category int

const (
	Today Category = iota
	Yesterday
	Other
)

func (c Category) String() string {
	switch c {
	case Today:
		return "Today"
	case Yesterday:
		return "Yesterday"
	default:
		return "Other"
	}
}

// Label is a categorized timestamp. Date is the timestamp's calendar day in
// the location it was categorized in.
type Label struct {
	Category Category
	Date     time.Time
}

// String renders "Today", "Yesterday" or the formatted date.
func (l Label) String() string {
	switch l.Category {
	case Today, Yesterday:
		return l.Category.String()
	default:
		return l.Date.Format(DateLayout)
	}
}

// Recent reports whether the label is Today or Yesterday.
func (l Label) Recent() bool { return l.Category == Today || l.Category == Yesterday }

// Categorize compares the calendar day of ts with the calendar day of now,
// both taken in loc. A nil loc means time.Local.
func Categorize(ts int64, now time.Time, loc *time.Location) Label {
	if loc == nil {
		loc = time.Local
	}
	day := midnight(time.Unix(ts, 0).In(loc))
	today := midnight(now.In(loc))

	switch {
	case day.Equal(today):
		return Label{Category: Today, Date: day}
	case day.Equal(today.AddDate(0, 0, -1)):
		return Label{Category: Yesterday, Date: day}
	default:
		return Label{Category: Other, Date: day}
	}
}

// FormatDate formats the calendar day of ts in loc as DD/MM/YYYY.
func FormatDate(ts int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(ts, 0).In(loc).Format(DateLayout)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Labeler categorizes timestamps against a clock that is sampled on every
// call, so a long-running process sees the boundaries move at midnight.
type Labeler struct {
	Location *time.Location
	Now      func() time.Time
}

// New returns a Labeler on the wall clock in loc.
func New(loc *time.Location) Labeler {
	return Labeler{Location: loc, Now: time.Now}
}

// Label categorizes ts against the current moment.
func (l Labeler) Label(ts int64) Label {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	return Categorize(ts, now(), l.Location)
}

// IsRecent reports whether ts falls today or yesterday.
func (l Labeler) IsRecent(ts int64) bool { return l.Label(ts).Recent() }
