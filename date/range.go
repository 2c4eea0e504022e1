package date

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range between from and to, boundaries included.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Trailing returns the range covering the last n days up to and including 'to'.
func Trailing(to Date, n int) Range { return Range{From: to.Add(1 - n), To: to} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int {
	n := 0
	for d := r.From; !d.After(r.To); d = d.Add(1) {
		n++
	}
	return n
}
