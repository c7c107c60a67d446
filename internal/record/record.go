package record

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/j-nivekk/miscdataworks/internal/jsontree"
)

// UnknownIdentity is the fallback when a record carries no usable ID field.
const UnknownIdentity = "unknown"

// identityPaths are tried in order when resolving a record's identity.
var identityPaths = []string{"data.item_id", "data.id"}

// Descriptor is one subtitle or caption track referenced by a record.
type Descriptor struct {
	LanguageCode string
	Format       string
	URL          string
	// URLExpire is the URL expiry as Unix seconds, 0 when absent.
	URLExpire int64
}

// Fetchable reports whether the descriptor can be downloaded at the given
// instant: it needs a non-empty URL whose expiry is strictly in the future.
// Checked per attempt, not cached, so long batches notice mid-run expiry.
func (d Descriptor) Fetchable(now time.Time) bool {
	return d.URL != "" && d.URLExpire > now.Unix()
}

// Record is one dataset entry. Raw holds the decoded JSON tree unmodified;
// Identity is resolved once at construction and never changes.
type Record struct {
	Identity string
	Raw      map[string]any
}

// New resolves the record identity from the raw tree. data.item_id wins over
// data.id; both absent yields UnknownIdentity.
func New(raw map[string]any) Record {
	identity := UnknownIdentity
	for _, path := range identityPaths {
		if value, ok := jsontree.GetString(raw, path); ok && value != "" {
			identity = value
			break
		}
	}
	return Record{Identity: identity, Raw: raw}
}

// Descriptors extracts the media descriptors for the given kind, preserving
// dataset order. Entries that are not objects are skipped; missing fields
// default to their zero values.
func (r Record) Descriptors(kind Kind) []Descriptor {
	entries := jsontree.Slice(r.Raw, kind.DescriptorPath())
	if len(entries) == 0 {
		return nil
	}
	descriptors := make([]Descriptor, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		descriptors = append(descriptors, Descriptor{
			LanguageCode: stringField(obj, "LanguageCodeName"),
			Format:       stringField(obj, "Format"),
			URL:          stringField(obj, "Url"),
			URLExpire:    intField(obj, "UrlExpire"),
		})
	}
	return descriptors
}

func stringField(obj map[string]any, key string) string {
	value, ok := obj[key]
	if !ok || value == nil {
		return ""
	}
	if s, isString := value.(string); isString {
		return s
	}
	if n, isNumber := value.(json.Number); isNumber {
		return n.String()
	}
	return ""
}

// intField tolerates the expiry arriving as a JSON number, a numeric string,
// or a float, all of which appear in the wild.
func intField(obj map[string]any, key string) int64 {
	switch value := obj[key].(type) {
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}
		if f, err := value.Float64(); err == nil {
			return int64(f)
		}
	case string:
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	case float64:
		return int64(value)
	}
	return 0
}
