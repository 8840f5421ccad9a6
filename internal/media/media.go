package media

import (
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"regexp"
	"strings"
)

// LofiStreams are played when no custom media is configured.
var LofiStreams = []string{
	"jfKfPfyJRdk",
	"4xDzrJKXOOY",
	"7NOSDKb0HlU",
}

// ErrInvalidMedia reports a custom media setting that is neither a video id nor a web URL.
var ErrInvalidMedia = errors.New("invalid media id")

var videoID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// URL returns the page to open for a custom media setting. A bare id is
// treated as a YouTube video; an http(s) URL is used as is. An empty setting
// picks one of LofiStreams.
func URL(id string) (*url.URL, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = LofiStreams[rand.Intn(len(LofiStreams))]
	}

	if strings.Contains(id, "://") {
		parsed, err := url.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMedia, err)
		}
		if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMedia, id)
		}
		return parsed, nil
	}

	if !videoID.MatchString(id) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMedia, id)
	}
	return &url.URL{
		Scheme:   "https",
		Host:     "www.youtube.com",
		Path:     "/watch",
		RawQuery: url.Values{"v": {id}}.Encode(),
	}, nil
}
