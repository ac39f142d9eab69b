package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kapu/undercurrent/internal/constants"
	"go.uber.org/zap"
)

type itunesSearchResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		TrackName     string `json:"trackName"`
		PreviewURL    string `json:"previewUrl"`
		ArtworkURL100 string `json:"artworkUrl100"`
	} `json:"results"`
}

// ITunesClient queries the public iTunes Search API. No credentials needed.
type ITunesClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewITunesClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *ITunesClient {
	return &ITunesClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// SearchTrack looks up the first music track for an artist name.
func (c *ITunesClient) SearchTrack(ctx context.Context, artist string) TrackLookup {
	params := url.Values{}
	params.Set("term", artist)
	params.Set("entity", constants.CatalogConfig.ITunesEntity)
	params.Set("limit", strconv.Itoa(constants.CatalogConfig.ITunesResultLimit))

	reqURL := c.baseURL + constants.CatalogConfig.ITunesSearchPath + "?" + params.Encode()

	var payload itunesSearchResponse
	if err := getJSON(ctx, c.httpClient, reqURL, &payload); err != nil {
		c.logger.Debug("iTunes search failed", zap.String("artist", artist), zap.Error(err))
		return TrackLookup{Status: LookupUnavailable, Err: err}
	}

	if payload.ResultCount <= 0 || len(payload.Results) == 0 {
		return TrackLookup{Status: LookupNotFound}
	}

	item := payload.Results[0]
	return TrackLookup{
		Status: LookupOK,
		Track: TrackMetadata{
			PreviewURL: item.PreviewURL,
			TrackName:  item.TrackName,
			ArtworkURL: UpscaleArtwork(item.ArtworkURL100),
		},
	}
}

// UpscaleArtwork swaps the catalog's 100x100 artwork token for the 400x400
// variant. URLs without the exact token are returned unchanged.
func UpscaleArtwork(artworkURL string) string {
	return strings.Replace(artworkURL,
		constants.CatalogConfig.ArtworkSmallToken,
		constants.CatalogConfig.ArtworkLargeToken,
		-1,
	)
}
