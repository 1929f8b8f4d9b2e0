// internal/domain/models/asset.go
package models

// AssetKind selects one of the fallback tables.
type AssetKind string

const (
	AssetVideo AssetKind = "video"
	AssetImage AssetKind = "image"
)

// Placeholder paths served when a key is unknown or nothing else resolves.
// Both files ship with the site under public/assets.
const (
	VideoPlaceholder = "/assets/videos/placeholder.mp4"
	ImagePlaceholder = "/assets/images/placeholder.jpg"
)

// ParseAssetKind maps a path or query value to an AssetKind.
func ParseAssetKind(s string) (AssetKind, bool) {
	switch AssetKind(s) {
	case AssetVideo, AssetImage:
		return AssetKind(s), true
	}
	return "", false
}

// Placeholder returns the kind-specific placeholder URL.
func (k AssetKind) Placeholder() string {
	if k == AssetVideo {
		return VideoPlaceholder
	}
	return ImagePlaceholder
}

// AssetFallback is one entry of a fallback table. Fallbacks are tried in
// order after Primary; by convention the last fallback is a file that is
// always present.
type AssetFallback struct {
	Primary     string   `yaml:"primary" json:"primary"`
	Fallbacks   []string `yaml:"fallbacks" json:"fallbacks"`
	Placeholder string   `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// Candidates returns Primary, the fallbacks, then Placeholder when it is set
// and not already the final candidate.
func (a AssetFallback) Candidates() []string {
	out := make([]string, 0, len(a.Fallbacks)+2)
	if a.Primary != "" {
		out = append(out, a.Primary)
	}
	for _, f := range a.Fallbacks {
		if f != "" {
			out = append(out, f)
		}
	}
	if a.Placeholder != "" && (len(out) == 0 || out[len(out)-1] != a.Placeholder) {
		out = append(out, a.Placeholder)
	}
	return out
}
