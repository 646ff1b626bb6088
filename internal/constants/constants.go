package constants

import "time"

var CacheTTL = struct {
	WrappedResult time.Duration
}{
	WrappedResult: 5 * time.Minute,
}

var APIConfig = struct {
	HubTimeout     time.Duration
	PapersPageSize int
	MaxPages       int
}{
	HubTimeout:     10 * time.Second,
	PapersPageSize: 20,
	// Hard cap on cursor follows per listing, in case the API ever loops.
	MaxPages: 200,
}

var WrappedConfig = struct {
	// FreezeInstant gates every refresh, regardless of requested year.
	FreezeInstant time.Time
	TopTagCount   int
	TopRepoCount  int
	MaxBadges     int
}{
	FreezeInstant: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	TopTagCount:   6,
	TopRepoCount:  3,
	MaxBadges:     6,
}

var InputLimits = struct {
	MinHandleLength int
	MaxHandleLength int
	MinYear         int
	MaxYear         int
}{
	MinHandleLength: 2,
	MaxHandleLength: 80,
	MinYear:         2000,
	MaxYear:         2100,
}
