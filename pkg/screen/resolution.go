package screen

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/devicelab-dev/droidctl/pkg/core"
)

// Resolution is the device screen size in pixels.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// sizeRe matches the first <width>x<height> pair in free-form output like
// "Physical size: 1080x2400".
var sizeRe = regexp.MustCompile(`(\d+)x(\d+)`)

// Resolution returns the device screen size. The cached value is served
// without re-querying; on a miss the device's size report is fetched and
// parsed. Transport errors and unparseable output propagate without
// populating the cache, so a later call retries.
func (s *Screen) Resolution() (Resolution, error) {
	s.mu.Lock()
	if s.resolution != nil {
		r := *s.resolution
		s.mu.Unlock()
		return r, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do("resolution", func() (any, error) {
		out, err := s.device.Shell(sizeCommand)
		if err != nil {
			return nil, fmt.Errorf("get resolution: %w", err)
		}
		r, err := parseResolution(out)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if s.resolution == nil {
			s.resolution = &r
		}
		r = *s.resolution
		s.mu.Unlock()
		return r, nil
	})
	if err != nil {
		return Resolution{}, err
	}
	return v.(Resolution), nil
}

// parseResolution extracts the first <int>x<int> pair. First match wins.
func parseResolution(out string) (Resolution, error) {
	m := sizeRe.FindStringSubmatch(out)
	if m == nil {
		return Resolution{}, core.ErrResolutionUnavailable
	}
	width, err := strconv.Atoi(m[1])
	if err != nil {
		return Resolution{}, core.ErrResolutionUnavailable.WithCause(err)
	}
	height, err := strconv.Atoi(m[2])
	if err != nil {
		return Resolution{}, core.ErrResolutionUnavailable.WithCause(err)
	}
	return Resolution{Width: width, Height: height}, nil
}
