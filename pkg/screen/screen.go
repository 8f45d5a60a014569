package screen

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/devicelab-dev/droidctl/pkg/logger"
)

// Device shell commands issued by the facade.
const (
	// uiautomator refuses to dump to stdout on some builds, so dump to a
	// scratch file and cat it back in one shell invocation.
	dumpCommand = "uiautomator dump /sdcard/window_dump.xml >/dev/null 2>&1 && cat /sdcard/window_dump.xml"
	sizeCommand = "wm size"
)

// ShellExecutor runs shell commands on a device.
// Implemented by adb.Device.
type ShellExecutor interface {
	Shell(cmd string) (string, error)
}

// Screen queries and caches the UI state of a single device. Each cache slot
// holds at most one value for the life of the process; nothing expires. A
// populated slot is served as-is no matter how stale it is; callers that
// need fresh data must ClearCache first.
//
// Safe for concurrent use: slots sit behind a mutex and concurrent fetches
// of the same slot are collapsed into one device round-trip.
type Screen struct {
	device ShellExecutor

	mu         sync.Mutex
	hierarchy  []Element   // last flattened hierarchy, nil when empty
	element    Element     // last unambiguously located element, nil when empty
	resolution *Resolution // last parsed screen size, nil when empty

	group singleflight.Group
}

// New creates a Screen backed by the given device.
func New(device ShellExecutor) *Screen {
	return &Screen{device: device}
}

// Hierarchy returns the flattened element records for the current screen.
// A cached hierarchy is returned immediately without querying the device,
// even if the on-device screen has changed since it was captured. On a miss
// the device is dumped, the result flattened, cached, and returned; dump or
// parse failures propagate and leave the cache empty so the next call
// retries.
func (s *Screen) Hierarchy() ([]Element, error) {
	s.mu.Lock()
	if s.hierarchy != nil {
		h := s.hierarchy
		s.mu.Unlock()
		logger.Debug("hierarchy cache hit (%d elements)", len(h))
		return h, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do("hierarchy", func() (any, error) {
		source, err := s.device.Shell(dumpCommand)
		if err != nil {
			return nil, fmt.Errorf("get hierarchy: %w", err)
		}
		elements, err := ParseHierarchy(source)
		if err != nil {
			return nil, fmt.Errorf("get hierarchy: %w", err)
		}

		s.mu.Lock()
		if s.hierarchy == nil {
			s.hierarchy = elements
		}
		h := s.hierarchy
		s.mu.Unlock()
		logger.Debug("hierarchy fetched (%d elements)", len(h))
		return h, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Element), nil
}

// Source returns the raw XML dump of the current screen. The result is
// never flattened and never cached; every call queries the device.
func (s *Screen) Source() (string, error) {
	source, err := s.device.Shell(dumpCommand)
	if err != nil {
		return "", fmt.Errorf("get source: %w", err)
	}
	return source, nil
}

// WriteSource fetches the raw XML dump and writes it verbatim to path.
func (s *Screen) WriteSource(path string) (string, error) {
	source, err := s.Source()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		return "", fmt.Errorf("write source: %w", err)
	}
	return source, nil
}

// WriteHierarchy behaves like Hierarchy and additionally persists the
// flattened records as JSON to path. Like Hierarchy, a populated cache is
// served without touching the device; the file is only written when a fresh
// dump was fetched.
func (s *Screen) WriteHierarchy(path string) ([]Element, error) {
	s.mu.Lock()
	cached := s.hierarchy != nil
	s.mu.Unlock()

	elements, err := s.Hierarchy()
	if err != nil {
		return nil, err
	}
	if cached {
		return elements, nil
	}

	data, err := json.MarshalIndent(elements, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("write hierarchy: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write hierarchy: %w", err)
	}
	return elements, nil
}

// findOptions collects the optional arguments of FindElement.
type findOptions struct {
	hierarchy []Element
	attrs     []string
}

// FindOption customizes a FindElement call.
type FindOption func(*findOptions)

// WithHierarchy searches the supplied records instead of fetching (or
// serving the cached) hierarchy.
func WithHierarchy(els []Element) FindOption {
	return func(o *findOptions) { o.hierarchy = els }
}

// WithAttributes projects every returned record down to the named attribute
// keys. Keys absent on a record are omitted from its projection.
func WithAttributes(attrs ...string) FindOption {
	return func(o *findOptions) { o.attrs = attrs }
}

// FindElement returns the records matching cond, in hierarchy order.
//
// When the element cache is populated, the cached record is returned
// immediately and cond and all options are ignored. On a miss the condition
// is applied to the supplied or fetched hierarchy; a nil result means no
// record matched and is not an error. A match is cached only when it is
// unambiguous: exactly one record survives the filter. Multiple matches are
// returned without touching the cache, so an underspecified condition never
// silently pins the wrong element.
func (s *Screen) FindElement(cond Condition, opts ...FindOption) ([]Element, error) {
	s.mu.Lock()
	if s.element != nil {
		el := s.element
		s.mu.Unlock()
		logger.Debug("element cache hit")
		return []Element{el}, nil
	}
	s.mu.Unlock()

	var o findOptions
	for _, opt := range opts {
		opt(&o)
	}

	candidates := o.hierarchy
	if candidates == nil {
		var err error
		candidates, err = s.Hierarchy()
		if err != nil {
			return nil, err
		}
	}

	matches := Filter(candidates, cond)
	if len(matches) == 0 {
		return nil, nil
	}

	if o.attrs != nil {
		projected := make([]Element, len(matches))
		for i, el := range matches {
			projected[i] = el.Project(o.attrs)
		}
		matches = projected
	}

	if len(matches) == 1 {
		s.mu.Lock()
		if s.element == nil {
			s.element = matches[0]
		}
		s.mu.Unlock()
	}

	return matches, nil
}

// Flag reports the boolean value of the named attribute, resolved against
// el when it is non-empty, otherwise against the last located element. The
// result is indeterminate (ok false) when neither record is available, the
// attribute is absent, or its value is not boolean. An absent attribute is
// never reported as false.
func (s *Screen) Flag(attr string, el Element) (value, ok bool) {
	record := el
	if len(record) == 0 {
		s.mu.Lock()
		record = s.element
		s.mu.Unlock()
	}
	if len(record) == 0 {
		return false, false
	}
	return record.Bool(attr)
}

// ClearCache empties all three cache slots so the next query re-fetches
// from the device. This is the only way to force fresh data.
func (s *Screen) ClearCache() {
	s.mu.Lock()
	s.hierarchy = nil
	s.element = nil
	s.resolution = nil
	s.mu.Unlock()
	logger.Debug("screen caches cleared")
}
