package saphana

// Manifest keys read from an installation's manifest file.
const (
	ManifestKeyRelease       = "release"
	ManifestKeyRevNumber     = "rev-number"
	ManifestKeyRevPatchLevel = "rev-patchlevel"
)

// Defaults used when a manifest key is missing.
const (
	DefaultRelease       = "0.00"
	DefaultRevNumber     = "000"
	DefaultRevPatchLevel = "00"
)

// ManifestEntry is a single key/value line of an installation manifest.
type ManifestEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Manifest is the ordered list of manifest entries of an installation.
// Keys are not unique; lookups resolve to the first occurrence.
type Manifest []ManifestEntry

// Lookup returns the value of the first entry with the given key.
func (m Manifest) Lookup(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}

	return "", false
}

// Get returns the value of the first entry with the given key, or def.
func (m Manifest) Get(key string, def string) string {
	if v, ok := m.Lookup(key); ok {
		return v
	}

	return def
}

// Instance is an installed SAP HANA instance.
type Instance struct {
	Name           string   `json:"name"`
	Path           string   `json:"path"`
	Admin          string   `json:"admin"`
	InstanceNumber string   `json:"instanceNumber"`
	Manifest       Manifest `json:"manifest,omitempty"`
}

// Info is the collection of SAP HANA facts gathered on the system.
type Info struct {
	Instances []Instance `json:"instances,omitempty"`

	// Running is true if any SAP HANA instance is running on the system.
	Running bool `json:"running"`
}
