package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/raj-vbeasy/youtubeapi/internal/models"
)

func TestHasRequiredScopes(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  bool
	}{
		{
			"both required scopes",
			"https://www.googleapis.com/auth/spreadsheets https://www.googleapis.com/auth/drive",
			true,
		},
		{
			"spreadsheets only",
			"https://www.googleapis.com/auth/spreadsheets",
			false,
		},
		{
			"drive only",
			"https://www.googleapis.com/auth/drive",
			false,
		},
		{
			"required plus extras",
			"https://www.googleapis.com/auth/youtube.readonly https://www.googleapis.com/auth/drive https://www.googleapis.com/auth/spreadsheets https://www.googleapis.com/auth/yt-analytics.readonly",
			true,
		},
		{
			"empty scope field",
			"",
			false,
		},
		{
			"readonly variants do not satisfy",
			"https://www.googleapis.com/auth/spreadsheets.readonly https://www.googleapis.com/auth/drive.readonly",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasRequiredScopes(tt.scope); got != tt.want {
				t.Errorf("hasRequiredScopes(%q) = %v, want %v", tt.scope, got, tt.want)
			}
		})
	}
}

func TestBuildSheetValues(t *testing.T) {
	stats := &models.AggregatedStats{
		TotalViews:      1000,
		TotalWatchHours: "16.67",
		AvgViewDuration: "245.30",
		TotalLikes:      50,
		TotalDislikes:   2,
	}

	values := buildSheetValues(stats)
	if len(values) != 2 {
		t.Fatalf("buildSheetValues() rows = %d, want 2", len(values))
	}

	wantHeader := []interface{}{"Hours Watched", "Average View Duration", "Total Likes", "Total Dislikes"}
	if !reflect.DeepEqual(values[0], wantHeader) {
		t.Errorf("header row = %v, want %v", values[0], wantHeader)
	}

	// TotalViews is used internally only, never written
	wantData := []interface{}{"16.67", "245.30", int64(50), int64(2)}
	if !reflect.DeepEqual(values[1], wantData) {
		t.Errorf("data row = %v, want %v", values[1], wantData)
	}
}

func TestUpdateSheetMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"missing stats", `{"accessToken":"tok"}`},
		{"missing accessToken", `{"stats":{"totalViews":10,"totalWatchHours":"1.00","avgViewDuration":"30.00","totalLikes":1,"totalDislikes":0}}`},
		{"not json", `not-json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			w := doRequest(s, http.MethodPost, "/api/googleSheets", &tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("googleSheets status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			body := decodeBody(t, w)
			if _, ok := body["error"]; !ok {
				t.Errorf("googleSheets body has no error key: %v", body)
			}
		})
	}
}

func TestUpdateSheetMethodNotAllowed(t *testing.T) {
	s := newTestServer()
	w := doRequest(s, http.MethodPut, "/api/googleSheets", nil)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("googleSheets PUT status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
	body := decodeBody(t, w)
	if _, ok := body["error"]; !ok {
		t.Errorf("googleSheets 405 body has no error key: %v", body)
	}
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrMissingCode, http.StatusBadRequest},
		{ErrInvalidToken, http.StatusBadRequest},
		{ErrNoVideos, http.StatusNotFound},
		{ErrNoData, http.StatusNotFound},
		{ErrInsufficientScope, http.StatusForbidden},
		{ErrAuthExchange, http.StatusInternalServerError},
		{ErrSheetWrite, http.StatusInternalServerError},
		{ErrProviderCall, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusForError(tt.err); got != tt.want {
			t.Errorf("statusForError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
