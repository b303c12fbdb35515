package ledger

import (
	"time"
)

// HotelClock pins every temporal policy decision to the hotel's own timezone
// and its fixed check-in hour, no matter where the caller is.
type HotelClock struct {
	Location    *time.Location
	CheckInHour int
	Now         func() time.Time
}

func NewHotelClock(timezone string, checkInHour int) (*HotelClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &HotelClock{
		Location:    loc,
		CheckInHour: checkInHour,
		Now:         time.Now,
	}, nil
}

// Today returns the current date in the hotel's timezone at midnight.
func (c *HotelClock) Today() time.Time {
	now := c.Now().In(c.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.Location)
}

// CheckInAt places a booking's check-in instant: the stored date at the
// hotel's check-in hour, hotel-local.
func (c *HotelClock) CheckInAt(checkInDate time.Time) time.Time {
	return time.Date(checkInDate.Year(), checkInDate.Month(), checkInDate.Day(),
		c.CheckInHour, 0, 0, 0, c.Location)
}

// HoursUntilCheckIn is the whole number of hours between now and check-in,
// negative once check-in has passed.
func (c *HotelClock) HoursUntilCheckIn(checkInDate time.Time) int {
	return int(c.CheckInAt(checkInDate).Sub(c.Now().In(c.Location)).Hours())
}
