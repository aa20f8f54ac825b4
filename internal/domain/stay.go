package domain

import "time"

// StayRange is a half-open date interval [CheckIn, CheckOut):
// the guest occupies the nights from CheckIn up to, but not including,
// CheckOut. Both bounds are dates truncated to midnight UTC.
type StayRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	r := StayRange{
		CheckIn:  toDate(checkIn),
		CheckOut: toDate(checkOut),
	}
	if !r.CheckIn.Before(r.CheckOut) {
		return StayRange{}, ErrInvalidStayRange
	}
	return r, nil
}

func (r StayRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Overlaps reports whether two half-open ranges share at least one night.
func (r StayRange) Overlaps(o StayRange) bool {
	return r.CheckIn.Before(o.CheckOut) && o.CheckIn.Before(r.CheckOut)
}

// EachNight calls fn for every occupied night in order.
func (r StayRange) EachNight(fn func(day time.Time)) {
	for d := r.CheckIn; d.Before(r.CheckOut); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
