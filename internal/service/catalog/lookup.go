package catalog

// LookupStatus is the outcome of a single catalog call.
type LookupStatus string

const (
	LookupOK          LookupStatus = "ok"
	LookupNotFound    LookupStatus = "not_found"
	LookupUnavailable LookupStatus = "unavailable" // network, HTTP status or decode failure
)

// TrackMetadata is what the primary catalog contributes to a recommendation.
// Empty strings mean the catalog had no value.
type TrackMetadata struct {
	PreviewURL string
	TrackName  string
	ArtworkURL string
}

type TrackLookup struct {
	Status LookupStatus
	Track  TrackMetadata
	Err    error
}

type ImageLookup struct {
	Status   LookupStatus
	ImageURL string
	Err      error
}
