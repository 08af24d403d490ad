package portability

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/getmockd/intercept/pkg/mock"
	"github.com/getmockd/intercept/pkg/store"
)

// CollectionVersion is the current collection document version.
const CollectionVersion = "1.0"

// Source identifies which repository mapping a collection was built from.
type Source string

const (
	// SourceOverrides exports the developer-configured overrides.
	SourceOverrides Source = "overrides"
	// SourceObserved exports the captured real responses.
	SourceObserved Source = "observed"
)

// Collection is a serializable snapshot of one repository mapping.
type Collection struct {
	Version    string    `json:"version" yaml:"version"`
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name,omitempty" yaml:"name,omitempty"`
	Source     Source    `json:"source" yaml:"source"`
	ExportedAt time.Time `json:"exportedAt" yaml:"exportedAt"`
	Entries    []Entry   `json:"entries" yaml:"entries"`
}

// Entry is one signature/descriptor pair in transportable form.
type Entry struct {
	Method     string            `json:"method" yaml:"method"`
	Path       string            `json:"path" yaml:"path"`
	StatusCode int               `json:"statusCode" yaml:"statusCode"`
	Body       string            `json:"body,omitempty" yaml:"body,omitempty"`
	DelayMs    int               `json:"delayMs,omitempty" yaml:"delayMs,omitempty"`
	Headers    map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// Export builds a collection from one of the repository's mappings.
// Entries are sorted by method then path for deterministic output.
func Export(repo store.Repository, source Source, name string) (*Collection, error) {
	var snapshot map[mock.Signature]mock.Descriptor
	switch source {
	case SourceOverrides:
		snapshot = repo.AllOverrides()
	case SourceObserved:
		snapshot = repo.AllObserved()
	default:
		return nil, fmt.Errorf("unknown source %q", source)
	}

	entries := make([]Entry, 0, len(snapshot))
	for sig, d := range snapshot {
		entries = append(entries, Entry{
			Method:     sig.Method(),
			Path:       sig.Path(),
			StatusCode: d.Code(),
			Body:       d.Body(),
			DelayMs:    d.DelayMs(),
			Headers:    d.Headers(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Method != entries[j].Method {
			return entries[i].Method < entries[j].Method
		}
		return entries[i].Path < entries[j].Path
	})

	return &Collection{
		Version:    CollectionVersion,
		ID:         uuid.NewString(),
		Name:       name,
		Source:     source,
		ExportedAt: time.Now().UTC(),
		Entries:    entries,
	}, nil
}

// Apply writes every entry of the collection into the repository's
// overrides mapping and returns the number applied. All entries are
// validated first; an invalid entry aborts the import before anything is
// written.
func Apply(c *Collection, repo store.Repository) (int, error) {
	type pair struct {
		sig mock.Signature
		d   mock.Descriptor
	}

	pairs := make([]pair, 0, len(c.Entries))
	for i, e := range c.Entries {
		sig, err := mock.NewSignature(e.Method, e.Path)
		if err != nil {
			return 0, &ImportError{
				Message: fmt.Sprintf("entry %d: invalid signature", i),
				Cause:   err,
			}
		}
		var opts []mock.DescriptorOption
		if e.DelayMs != 0 {
			opts = append(opts, mock.WithDelay(e.DelayMs))
		}
		if len(e.Headers) > 0 {
			opts = append(opts, mock.WithHeaders(e.Headers))
		}
		d, err := mock.NewDescriptor(e.StatusCode, e.Body, opts...)
		if err != nil {
			return 0, &ImportError{
				Message: fmt.Sprintf("entry %d: invalid descriptor", i),
				Cause:   err,
			}
		}
		pairs = append(pairs, pair{sig: sig, d: d})
	}

	for _, p := range pairs {
		repo.SaveOverride(p.sig, p.d)
	}
	return len(pairs), nil
}
