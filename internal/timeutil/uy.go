package timeutil

import (
	"time"
)

// UY is the Uruguay business timezone (UTC-3, no DST since 2015)
var UY *time.Location

func init() {
	var err error
	UY, err = time.LoadLocation("America/Montevideo")
	if err != nil {
		UY = time.FixedZone("UYT", -3*60*60)
	}
}

// Now returns the current time in Montevideo
func Now() time.Time {
	return time.Now().In(UY)
}

// Stamp formats t as the RFC 3339 string stored in lastUpdated fields
func Stamp(t time.Time) string {
	return t.In(UY).Format(time.RFC3339)
}

// NowStamp is Stamp(Now())
func NowStamp() string {
	return Stamp(Now())
}

// Common layouts for display formatting
const (
	DateLayout    = "2006-01-02"
	DisplayLayout = "02/01/2006 15:04"
)
