package addressbook

import (
	"strings"
	"time"
)

// upcomingWindowDays is how far ahead UpcomingBirthdays looks, today
// inclusive.
const upcomingWindowDays = 7

// Greeting is one entry of the upcoming-birthdays query: who to
// congratulate and on which date.
type Greeting struct {
	Name               string   `json:"name"`
	CongratulationDate Birthday `json:"congratulation_date"`
}

// Book is the name-keyed collection of records. It preserves insertion
// order for iteration and owns its records exclusively.
type Book struct {
	records map[string]*Record
	order   []string
}

func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// AddRecord inserts r, replacing any record stored under the same name.
// A replaced record keeps its original position in iteration order.
func (b *Book) AddRecord(r *Record) {
	if _, ok := b.records[r.Name()]; !ok {
		b.order = append(b.order, r.Name())
	}
	b.records[r.Name()] = r
}

// Find looks a record up by exact name.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name. Deleting an unknown name
// is a no-op.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *Book) Len() int { return len(b.records) }

// Records returns the records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// UpcomingBirthdays lists contacts whose birthday falls within the next
// upcomingWindowDays days of today. A birthday landing on a weekend is
// congratulated on the following Monday. Entries come out in record
// iteration order, not sorted by date.
func (b *Book) UpcomingBirthdays(today time.Time) []Greeting {
	today = dateOnly(today)

	var upcoming []Greeting
	for _, r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}

		next := nextOccurrence(bd.Date(), today)
		daysUntil := int(next.Sub(today).Hours() / 24)
		if daysUntil < 0 || daysUntil > upcomingWindowDays {
			continue
		}

		upcoming = append(upcoming, Greeting{
			Name:               r.Name(),
			CongratulationDate: Birthday{date: shiftFromWeekend(next)},
		})
	}
	return upcoming
}

func (b *Book) String() string {
	lines := make([]string, 0, len(b.order))
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// nextOccurrence projects a birthday onto today's year, or onto next year
// when it has already passed. Feb 29 normalizes to Mar 1 in non-leap years.
func nextOccurrence(birthday, today time.Time) time.Time {
	next := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next
}

// shiftFromWeekend moves Saturday dates forward two days and Sunday dates
// forward one day, to the following Monday.
func shiftFromWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}
