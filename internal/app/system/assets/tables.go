// internal/app/system/assets/tables.go
package assets

import "github.com/dalemusser/orsonvision/internal/domain/models"

// DefaultVideos is the built-in video fallback table. Each chain ends with a
// file that ships with the site so the last candidate always exists.
var DefaultVideos = map[string]models.AssetFallback{
	"hero-reel": {
		Primary:   "/assets/videos/hero-reel.webm",
		Fallbacks: []string{"/assets/videos/hero-reel.mp4", "/assets/videos/hero-reel-lite.mp4", models.VideoPlaceholder},
	},
	"showreel": {
		Primary:   "/assets/videos/showreel-2024.mp4",
		Fallbacks: []string{"/assets/videos/showreel.mp4", models.VideoPlaceholder},
	},
	"fashion-hero": {
		Primary:   "/assets/videos/fashion/runway.webm",
		Fallbacks: []string{"/assets/videos/fashion/runway.mp4", models.VideoPlaceholder},
	},
	"hospitality-hero": {
		Primary:   "/assets/videos/hospitality/tour.webm",
		Fallbacks: []string{"/assets/videos/hospitality/tour.mp4", models.VideoPlaceholder},
	},
	"wedding-hero": {
		Primary:   "/assets/videos/wedding/first-dance.webm",
		Fallbacks: []string{"/assets/videos/wedding/first-dance.mp4", models.VideoPlaceholder},
	},
	"education-hero": {
		Primary:   "/assets/videos/education/campus.webm",
		Fallbacks: []string{"/assets/videos/education/campus.mp4", models.VideoPlaceholder},
	},
}

// DefaultImages is the built-in image fallback table.
var DefaultImages = map[string]models.AssetFallback{
	"hero-poster": {
		Primary:   "/assets/images/hero-poster.avif",
		Fallbacks: []string{"/assets/images/hero-poster.webp", "/assets/images/hero-poster.jpg", models.ImagePlaceholder},
	},
	"team": {
		Primary:   "/assets/images/team.webp",
		Fallbacks: []string{"/assets/images/team.jpg", models.ImagePlaceholder},
	},
	"studio": {
		Primary:   "/assets/images/studio.webp",
		Fallbacks: []string{"/assets/images/studio.jpg", models.ImagePlaceholder},
	},
	"fashion-cover": {
		Primary:   "/assets/images/fashion/cover.webp",
		Fallbacks: []string{"/assets/images/fashion/cover.jpg", models.ImagePlaceholder},
	},
	"hospitality-cover": {
		Primary:   "/assets/images/hospitality/cover.webp",
		Fallbacks: []string{"/assets/images/hospitality/cover.jpg", models.ImagePlaceholder},
	},
	"wedding-cover": {
		Primary:   "/assets/images/wedding/cover.webp",
		Fallbacks: []string{"/assets/images/wedding/cover.jpg", models.ImagePlaceholder},
	},
	"education-cover": {
		Primary:   "/assets/images/education/cover.webp",
		Fallbacks: []string{"/assets/images/education/cover.jpg", models.ImagePlaceholder},
	},
}
