package catalog

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kapu/undercurrent/internal/constants"
	"go.uber.org/zap"
)

type lastfmArtistInfoResponse struct {
	Artist struct {
		Name  string `json:"name"`
		Image []struct {
			Text string `json:"#text"`
			Size string `json:"size"`
		} `json:"image"`
	} `json:"artist"`
}

// LastFMClient fetches artist images from the Last.fm web service and builds
// public artist page links.
type LastFMClient struct {
	apiKey      string
	baseURL     string
	pageBaseURL string
	httpClient  *http.Client
	logger      *zap.Logger
}

func NewLastFMClient(apiKey, baseURL, pageBaseURL string, httpClient *http.Client, logger *zap.Logger) *LastFMClient {
	if baseURL == "" {
		baseURL = constants.LastFMConfig.DefaultBaseURL
	}
	if pageBaseURL == "" {
		pageBaseURL = constants.LastFMConfig.DefaultPageURL
	}
	return &LastFMClient{
		apiKey:      apiKey,
		baseURL:     baseURL,
		pageBaseURL: pageBaseURL,
		httpClient:  httpClient,
		logger:      logger,
	}
}

// Enabled reports whether an API key is configured.
func (c *LastFMClient) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// ArtistImage returns the largest image from artist.getinfo. Last.fm lists
// sizes from small to large, so the last entry wins.
func (c *LastFMClient) ArtistImage(ctx context.Context, artist string) ImageLookup {
	if !c.Enabled() {
		return ImageLookup{Status: LookupNotFound}
	}

	params := url.Values{}
	params.Set("method", constants.LastFMConfig.ArtistInfoMethod)
	params.Set("artist", artist)
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")

	var payload lastfmArtistInfoResponse
	if err := getJSON(ctx, c.httpClient, c.baseURL+"?"+params.Encode(), &payload); err != nil {
		c.logger.Debug("Last.fm artist.getinfo failed", zap.String("artist", artist), zap.Error(err))
		return ImageLookup{Status: LookupUnavailable, Err: err}
	}

	images := payload.Artist.Image
	if len(images) == 0 || images[len(images)-1].Text == "" {
		return ImageLookup{Status: LookupNotFound}
	}

	return ImageLookup{Status: LookupOK, ImageURL: images[len(images)-1].Text}
}

// ArtistPageURL links to the artist's public Last.fm page. Names are
// query-escaped, so "Foo Bar" becomes "Foo+Bar".
func (c *LastFMClient) ArtistPageURL(artist string) string {
	return c.pageBaseURL + url.QueryEscape(artist)
}
