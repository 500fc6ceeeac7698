package utils

import "time"

// IST is the Indian Standard Time location (UTC+5:30).
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: fixed zone when the tz database is not available.
		IST = time.FixedZone("IST", 5*60*60+30*60)
	}
}

// NowIST returns the current time in IST.
func NowIST() time.Time {
	return time.Now().In(IST)
}

// ToIST converts a time.Time to IST.
func ToIST(t time.Time) time.Time {
	return t.In(IST)
}

// FormatDateTimeIST formats a time.Time to "2006-01-02 15:04:05 IST".
func FormatDateTimeIST(t time.Time) string {
	return t.In(IST).Format("2006-01-02 15:04:05 IST")
}

// FormatPublished formats an article timestamp the way the dashboard
// shows it ("2006-01-02 15:04").
func FormatPublished(t time.Time) string {
	return t.In(IST).Format("2006-01-02 15:04")
}

// MarketStatus reports where the NSE trading day stands right now.
// Pre-open session runs 09:00-09:15 IST, regular trading 09:15-15:30.
func MarketStatus() string {
	now := NowIST()

	if now.Weekday() == time.Saturday || now.Weekday() == time.Sunday {
		return "CLOSED (Weekend)"
	}

	preOpen := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, IST)
	open := time.Date(now.Year(), now.Month(), now.Day(), 9, 15, 0, 0, IST)
	close := time.Date(now.Year(), now.Month(), now.Day(), 15, 30, 0, 0, IST)

	switch {
	case now.Before(preOpen):
		return "PRE-MARKET"
	case now.Before(open):
		return "PRE-OPEN SESSION"
	case !now.After(close):
		return "OPEN"
	default:
		return "CLOSED"
	}
}
