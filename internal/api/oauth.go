package api

import (
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// consentScopes is the fixed scope set requested from the user: read-only
// YouTube data, Sheets read/write, Drive access, and read-only YouTube
// Analytics.
var consentScopes = []string{
	"https://www.googleapis.com/auth/youtube.readonly",
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive",
	"https://www.googleapis.com/auth/yt-analytics.readonly",
}

// oauthConfig builds the OAuth2 configuration from the injected settings.
// Constructed per request rather than held as shared state.
func (s *Server) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.ClientID,
		ClientSecret: s.cfg.ClientSecret,
		RedirectURL:  s.cfg.RedirectURI,
		Scopes:       consentScopes,
		Endpoint:     google.Endpoint,
	}
}

// authorize redirects the user agent to the provider consent URL. Offline
// access is requested so a refresh token is issuable.
func (s *Server) authorize(c *gin.Context) {
	authURL := s.oauthConfig().AuthCodeURL("", oauth2.AccessTypeOffline)
	c.Redirect(http.StatusFound, authURL)
}

// oauth2Callback exchanges the authorization code for an access token and
// redirects the user agent back to the application root with the token.
func (s *Server) oauth2Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		respondError(c, ErrMissingCode)
		return
	}

	log.Printf("Exchanging authorization code for access token...")
	token, err := s.oauthConfig().Exchange(c.Request.Context(), code)
	if err != nil {
		log.Printf("Error exchanging code for access token: %v", err)
		respondError(c, fmt.Errorf("%w: %v", ErrAuthExchange, err))
		return
	}

	// The token travels back to the UI in the redirect URL; keep it out of
	// intermediary caches.
	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusFound, "/?access_token="+url.QueryEscape(token.AccessToken))
}
