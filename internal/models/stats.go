package models

import "time"

// AggregatedStats is the reduction of all per-day analytics rows for the
// queried date range. TotalWatchHours and AvgViewDuration are formatted to
// two decimal places; that string form is the stable external representation.
type AggregatedStats struct {
	TotalViews      int64  `json:"totalViews"`
	TotalWatchHours string `json:"totalWatchHours"`
	AvgViewDuration string `json:"avgViewDuration"`
	TotalLikes      int64  `json:"totalLikes"`
	TotalDislikes   int64  `json:"totalDislikes"`
}

// AnalyticsRow is one per-day row as returned by the YouTube Analytics
// reports query, in column order day, views, estimated minutes watched,
// average view duration (seconds), likes, dislikes.
type AnalyticsRow struct {
	Day                    string  `json:"day"`
	Views                  float64 `json:"views"`
	WatchMinutes           float64 `json:"watchMinutes"`
	AvgViewDurationSeconds float64 `json:"avgViewDurationSeconds"`
	Likes                  float64 `json:"likes"`
	Dislikes               float64 `json:"dislikes"`
}

// SheetUpdateRequest is the body of POST /api/googleSheets
type SheetUpdateRequest struct {
	AccessToken string           `json:"accessToken"`
	Stats       *AggregatedStats `json:"stats"`
}

// SyncRecord is one entry in the sheet sync history
type SyncRecord struct {
	ID            string          `json:"id"`
	SpreadsheetID string          `json:"spreadsheetId"`
	Range         string          `json:"range"`
	Stats         AggregatedStats `json:"stats"`
	CreatedAt     time.Time       `json:"createdAt"`
}
