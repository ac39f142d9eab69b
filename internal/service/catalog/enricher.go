package catalog

import (
	"context"

	"github.com/kapu/undercurrent/internal/domain"
	"github.com/kapu/undercurrent/internal/util"
	"go.uber.org/zap"
)

// Enricher attaches preview audio and artwork to a recommended artist.
// Lookup failures never escape: the affected fields are simply left nil.
type Enricher struct {
	itunes *ITunesClient
	lastfm *LastFMClient
	logger *zap.Logger
}

func NewEnricher(itunes *ITunesClient, lastfm *LastFMClient, logger *zap.Logger) *Enricher {
	return &Enricher{
		itunes: itunes,
		lastfm: lastfm,
		logger: logger,
	}
}

func (e *Enricher) Enrich(ctx context.Context, artist string) domain.Enrichment {
	var meta domain.Enrichment

	track := e.itunes.SearchTrack(ctx, artist)
	switch track.Status {
	case LookupOK:
		meta.SampleURL = util.StringPtr(track.Track.PreviewURL)
		meta.SampleTrack = util.StringPtr(track.Track.TrackName)
		meta.Image = util.StringPtr(track.Track.ArtworkURL)
	case LookupUnavailable:
		e.logger.Warn("Catalog lookup unavailable",
			zap.String("artist", artist),
			zap.Error(track.Err),
		)
	}

	if meta.Image != nil || !e.lastfm.Enabled() {
		return meta
	}

	image := e.lastfm.ArtistImage(ctx, artist)
	switch image.Status {
	case LookupOK:
		meta.Image = util.StringPtr(image.ImageURL)
	case LookupUnavailable:
		e.logger.Warn("Fallback image lookup unavailable",
			zap.String("artist", artist),
			zap.Error(image.Err),
		)
	}

	return meta
}

func (e *Enricher) ArtistPageURL(artist string) string {
	return e.lastfm.ArtistPageURL(artist)
}
