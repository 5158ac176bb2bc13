package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	// ErrMissingCode is returned when the OAuth callback has no authorization code
	ErrMissingCode = errors.New("missing authorization code")
	// ErrAuthExchange is returned when the code-for-token exchange fails
	ErrAuthExchange = errors.New("error during authentication")
	// ErrInvalidToken is returned when the stats endpoint receives no usable access token
	ErrInvalidToken = errors.New("invalid access token")
	// ErrNoVideos is returned when the channel's video listing comes back empty
	ErrNoVideos = errors.New("no videos found")
	// ErrNoData is returned when the analytics query returns zero rows
	ErrNoData = errors.New("no data returned from YouTube Analytics")
	// ErrInsufficientScope is returned when the token lacks a required scope
	ErrInsufficientScope = errors.New("access token does not have the required scopes")
	// ErrSheetWrite is returned when the spreadsheet update fails
	ErrSheetWrite = errors.New("failed to update Google Sheet")
	// ErrProviderCall is the catch-all for unclassified provider failures
	ErrProviderCall = errors.New("provider call failed")
)

// statusForError maps the error taxonomy to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrMissingCode), errors.Is(err, ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoVideos), errors.Is(err, ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientScope):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError converts an error into a JSON error body with the mapped status
func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{
		"error": err.Error(),
	})
}
