// internal/domain/models/sitesettings.go
package models

// DefaultSiteName is shown in the header and page titles.
const DefaultSiteName = "Orson Vision"

// SiteNameFR is the brand used on French pages.
const SiteNameFR = "Digital Vérité"

// SiteName returns the brand for a language.
func SiteName(lang string) string {
	if lang == "fr" {
		return SiteNameFR
	}
	return DefaultSiteName
}
