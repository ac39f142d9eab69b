package constants

import "time"

var RecommendationLimits = struct {
	MaxRecommendations int
	TagsPerArtist      int
	MinGlobalTags      int
	MaxGlobalTags      int
}{
	MaxRecommendations: 5, // 응답에 포함되는 추천 아티스트 최대 수
	TagsPerArtist:      3,
	MinGlobalTags:      5,
	MaxGlobalTags:      8,
}

var CatalogConfig = struct {
	ITunesSearchPath  string
	ITunesEntity      string
	ITunesResultLimit int
	ArtworkSmallToken string
	ArtworkLargeToken string
	DefaultTimeout    time.Duration
}{
	ITunesSearchPath:  "/search",
	ITunesEntity:      "musicTrack",
	ITunesResultLimit: 1,
	ArtworkSmallToken: "100x100bb.jpg",
	ArtworkLargeToken: "400x400bb.jpg",
	DefaultTimeout:    8 * time.Second,
}

var LastFMConfig = struct {
	ArtistInfoMethod string
	DefaultBaseURL   string
	DefaultPageURL   string
}{
	ArtistInfoMethod: "artist.getinfo",
	DefaultBaseURL:   "http://ws.audioscrobbler.com/2.0/",
	DefaultPageURL:   "https://www.last.fm/music/",
}

var AIConfig = struct {
	DefaultGeminiModel string
	DefaultOpenAIModel string
}{
	DefaultGeminiModel: "gemini-2.5-flash",
	DefaultOpenAIModel: "gpt-5-mini",
}

var ServerConfig = struct {
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	MaxBodyBytes      int64
}{
	ReadHeaderTimeout: 10 * time.Second,
	ShutdownTimeout:   10 * time.Second,
	MaxBodyBytes:      1 << 20,
}
