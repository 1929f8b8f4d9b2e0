// internal/app/system/assets/manifest.go
package assets

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/dalemusser/orsonvision/internal/domain/models"
	"gopkg.in/yaml.v3"
)

// Manifest is the optional YAML file that adds to or overrides the built-in
// tables:
//
//	video:
//	  hero-reel:
//	    primary: https://cdn.example.com/hero.webm
//	    fallbacks: [/assets/videos/hero-reel.mp4, /assets/videos/placeholder.mp4]
//	image:
//	  team:
//	    primary: /assets/images/team-2025.webp
type Manifest struct {
	Video map[string]models.AssetFallback `yaml:"video"`
	Image map[string]models.AssetFallback `yaml:"image"`
}

// ParseManifest decodes a manifest and rejects entries without a primary URL.
func ParseManifest(data []byte, source string) (Manifest, error) {
	var m Manifest
	if len(strings.TrimSpace(string(data))) == 0 {
		return Manifest{}, fmt.Errorf("assets: manifest %s is empty", source)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("assets: parse %s: %w", source, err)
	}
	for key, fb := range m.Video {
		if strings.TrimSpace(fb.Primary) == "" {
			return Manifest{}, fmt.Errorf("assets: %s: video %q has no primary", source, key)
		}
	}
	for key, fb := range m.Image {
		if strings.TrimSpace(fb.Primary) == "" {
			return Manifest{}, fmt.Errorf("assets: %s: image %q has no primary", source, key)
		}
	}
	return m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("assets: read manifest: %w", err)
	}
	return ParseManifest(data, path)
}

// Tables returns copies of the built-in tables with the manifest merged over
// them. Manifest entries win key by key.
func (m Manifest) Tables() (video, image map[string]models.AssetFallback) {
	video = maps.Clone(DefaultVideos)
	image = maps.Clone(DefaultImages)
	maps.Copy(video, m.Video)
	maps.Copy(image, m.Image)
	return video, image
}
