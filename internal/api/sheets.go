package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/raj-vbeasy/youtubeapi/internal/models"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

const sheetRange = "Data!A1:D2"

// requiredSheetScopes must all be present on the token before any write is
// attempted. The check is conjunctive.
var requiredSheetScopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive",
}

var sheetHeader = []interface{}{"Hours Watched", "Average View Duration", "Total Likes", "Total Dislikes"}

// updateGoogleSheet verifies the token's scopes via introspection, then
// overwrites the fixed stats range in the configured spreadsheet.
func (s *Server) updateGoogleSheet(c *gin.Context) {
	var req models.SheetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing accessToken or stats"})
		return
	}
	if req.AccessToken == "" || req.Stats == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing accessToken or stats"})
		return
	}

	ctx := c.Request.Context()

	scope, err := s.introspectTokenScopes(ctx, req.AccessToken)
	if err != nil {
		log.Printf("Error introspecting access token: %v", err)
		respondError(c, err)
		return
	}
	if !hasRequiredScopes(scope) {
		respondError(c, ErrInsufficientScope)
		return
	}

	if err := s.writeStats(ctx, req.AccessToken, req.Stats); err != nil {
		log.Printf("Error updating Google Sheet: %v", err)
		respondError(c, err)
		return
	}

	s.recordSync(req.Stats)

	c.JSON(http.StatusOK, gin.H{"message": "Sheet updated successfully"})
}

// introspectTokenScopes retrieves the token's granted scope set from the
// provider's tokeninfo endpoint.
func (s *Server) introspectTokenScopes(ctx context.Context, accessToken string) (string, error) {
	svc, err := googleoauth2.NewService(ctx, option.WithTokenSource(tokenSource(accessToken)))
	if err != nil {
		return "", fmt.Errorf("failed to create OAuth2 service: %w", err)
	}

	info, err := svc.Tokeninfo().AccessToken(accessToken).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: tokeninfo: %v", ErrProviderCall, err)
	}

	return info.Scope, nil
}

// hasRequiredScopes reports whether the space-separated scope field carries
// every required scope.
func hasRequiredScopes(scope string) bool {
	granted := make(map[string]bool)
	for _, s := range strings.Fields(scope) {
		granted[s] = true
	}
	for _, required := range requiredSheetScopes {
		if !granted[required] {
			return false
		}
	}
	return true
}

// writeStats overwrites the stats range with raw values: a static header
// row and one data row. TotalViews is never written.
func (s *Server) writeStats(ctx context.Context, accessToken string, stats *models.AggregatedStats) error {
	svc, err := sheets.NewService(ctx, option.WithTokenSource(tokenSource(accessToken)))
	if err != nil {
		return fmt.Errorf("failed to create Sheets service: %w", err)
	}

	valueRange := &sheets.ValueRange{
		Values: buildSheetValues(stats),
	}

	_, err = svc.Spreadsheets.Values.Update(s.cfg.SpreadsheetID, sheetRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSheetWrite, err)
	}

	return nil
}

// buildSheetValues lays out the two rows written to the spreadsheet
func buildSheetValues(stats *models.AggregatedStats) [][]interface{} {
	return [][]interface{}{
		sheetHeader,
		{stats.TotalWatchHours, stats.AvgViewDuration, stats.TotalLikes, stats.TotalDislikes},
	}
}

// recordSync appends the write to the sync history. The sheet update has
// already succeeded, so storage failures are logged and not surfaced.
func (s *Server) recordSync(stats *models.AggregatedStats) {
	if s.db == nil {
		return
	}

	record := &models.SyncRecord{
		ID:            uuid.NewString(),
		SpreadsheetID: s.cfg.SpreadsheetID,
		Range:         sheetRange,
		Stats:         *stats,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.db.StoreSyncRecord(record); err != nil {
		log.Printf("Failed to store sync record: %v", err)
		return
	}
	log.Printf("Stored sync record %s for spreadsheet %s", record.ID, record.SpreadsheetID)
}
