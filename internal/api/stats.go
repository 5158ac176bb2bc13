package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/raj-vbeasy/youtubeapi/internal/models"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"
	youtubeanalytics "google.golang.org/api/youtubeanalytics/v2"
)

const (
	// analyticsStartDate is the fixed epoch start of the queried date range
	analyticsStartDate = "2000-01-01"
	analyticsMetrics   = "views,estimatedMinutesWatched,averageViewDuration,likes,dislikes"
	maxListedVideos    = 50
)

// tokenSource wraps a bare access token for the Google API clients
func tokenSource(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
}

// getYouTubeStats aggregates per-day analytics rows for the authenticated
// channel into channel-level summary statistics. The analytics query and
// the video listing are independent and run concurrently; the listing's
// items are not folded into the result but an empty listing is a 404.
func (s *Server) getYouTubeStats(c *gin.Context) {
	accessToken := c.Query("accessToken")
	if accessToken == "" {
		respondError(c, ErrInvalidToken)
		return
	}

	ctx := c.Request.Context()

	var (
		wg         sync.WaitGroup
		stats      *models.AggregatedStats
		videoCount int
		statsErr   error
		videosErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, statsErr = s.fetchAggregatedStats(ctx, accessToken)
	}()
	go func() {
		defer wg.Done()
		videoCount, videosErr = s.fetchVideoCount(ctx, accessToken)
	}()
	wg.Wait()

	if videosErr != nil {
		log.Printf("Error fetching video list: %v", videosErr)
		respondError(c, videosErr)
		return
	}
	if videoCount == 0 {
		respondError(c, ErrNoVideos)
		return
	}
	if statsErr != nil {
		log.Printf("Error fetching YouTube Analytics data: %v", statsErr)
		respondError(c, statsErr)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// fetchAggregatedStats queries the YouTube Analytics reports endpoint for
// per-day metrics from the epoch start to today and reduces the rows.
func (s *Server) fetchAggregatedStats(ctx context.Context, accessToken string) (*models.AggregatedStats, error) {
	svc, err := youtubeanalytics.NewService(ctx, option.WithTokenSource(tokenSource(accessToken)))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube Analytics service: %w", err)
	}

	resp, err := svc.Reports.Query().
		Ids("channel==MINE").
		StartDate(analyticsStartDate).
		EndDate(time.Now().Format("2006-01-02")).
		Metrics(analyticsMetrics).
		Dimensions("day").
		Sort("day").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: analytics query: %v", ErrProviderCall, err)
	}

	return aggregateRows(resp.Rows)
}

// fetchVideoCount lists the channel's most recent videos and returns how
// many were found. The listing itself is not used beyond this gate.
func (s *Server) fetchVideoCount(ctx context.Context, accessToken string) (int, error) {
	svc, err := youtube.NewService(ctx, option.WithTokenSource(tokenSource(accessToken)))
	if err != nil {
		return 0, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	resp, err := svc.Search.List([]string{"snippet"}).
		ChannelId(s.cfg.ChannelID).
		MaxResults(maxListedVideos).
		Order("date").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("%w: video list: %v", ErrProviderCall, err)
	}

	return len(resp.Items), nil
}

// aggregateRows reduces the per-day analytics rows into AggregatedStats.
// An empty row set produces no stats, never a zero-filled result.
func aggregateRows(rows [][]interface{}) (*models.AggregatedStats, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	var totalViews, totalWatchMinutes, totalViewDurationSeconds, totalLikes, totalDislikes float64
	for _, raw := range rows {
		row := parseAnalyticsRow(raw)
		totalViews += row.Views
		totalWatchMinutes += row.WatchMinutes
		totalViewDurationSeconds += row.AvgViewDurationSeconds
		totalLikes += row.Likes
		totalDislikes += row.Dislikes
	}

	totalWatchHours := totalWatchMinutes / 60
	// Mean of the per-day averages, not weighted by views
	avgViewDuration := totalViewDurationSeconds / float64(len(rows))

	return &models.AggregatedStats{
		TotalViews:      int64(totalViews),
		TotalWatchHours: fmt.Sprintf("%.2f", totalWatchHours),
		AvgViewDuration: fmt.Sprintf("%.2f", avgViewDuration),
		TotalLikes:      int64(totalLikes),
		TotalDislikes:   int64(totalDislikes),
	}, nil
}

// parseAnalyticsRow decodes one raw report row in column order day, views,
// watch minutes, average view duration, likes, dislikes. Missing or
// non-numeric cells count as zero.
func parseAnalyticsRow(raw []interface{}) models.AnalyticsRow {
	return models.AnalyticsRow{
		Day:                    cellString(raw, 0),
		Views:                  cellFloat(raw, 1),
		WatchMinutes:           cellFloat(raw, 2),
		AvgViewDurationSeconds: cellFloat(raw, 3),
		Likes:                  cellFloat(raw, 4),
		Dislikes:               cellFloat(raw, 5),
	}
}

func cellString(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	if s, ok := row[i].(string); ok {
		return s
	}
	return ""
}

func cellFloat(row []interface{}, i int) float64 {
	if i >= len(row) {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
