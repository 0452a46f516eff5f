package domain

import "time"

// PackTime encodes t in the client's packed calendar time layout: minute,
// hour, weekday, day-of-month, month and years-since-2000 bit fields, low
// to high.
func PackTime(t time.Time) uint32 {
	return uint32(t.Minute()) |
		uint32(t.Hour())<<6 |
		uint32(t.Weekday())<<12 |
		uint32(t.Day()-1)<<15 |
		uint32(int(t.Month())-1)<<20 |
		uint32(t.Year()-2000)<<24
}
