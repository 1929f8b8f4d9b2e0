// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/orsonvision/internal/domain/animations"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// NavItem is one link in the site header.
type NavItem struct {
	Href   string
	Label  string
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, loc.T(i18n.CareersTitle), "/"),
//	}
type BaseVM struct {
	SiteName string

	// Language context
	Lang          string // "en" or "fr", for <html lang>
	OtherLang     string // code the switcher posts to /lang
	OtherLangName string // switcher label, in the other language

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	Nav         []NavItem
	FooterText  string
	Year        int

	// CSRF protection
	CSRFToken string
}

var navLinks = []struct {
	href string
	key  i18n.Key
}{
	{"/", i18n.NavHome},
	{"/industries", i18n.NavIndustries},
	{"/journey", i18n.NavJourney},
	{"/careers", i18n.NavCareers},
	{"/contact", i18n.NavContact},
}

// NewBaseVM creates a fully populated BaseVM for a page. Labels come from
// the request's Localizer.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title, already translated
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	loc := i18n.FromContext(r.Context())
	current := httpnav.CurrentPath(r)

	vm := BaseVM{
		SiteName:      models.SiteName(loc.Code()),
		Lang:          loc.Code(),
		OtherLang:     string(loc.Other()),
		OtherLangName: loc.T(i18n.NavLanguage),
		Title:         title,
		BackURL:       httpnav.ResolveBackURL(r, backDefault),
		CurrentPath:   current,
		FooterText:    loc.T(i18n.FooterRights),
		Year:          time.Now().Year(),
		CSRFToken:     csrf.Token(r),
	}

	vm.Nav = make([]NavItem, 0, len(navLinks))
	for _, l := range navLinks {
		vm.Nav = append(vm.Nav, NavItem{
			Href:   l.href,
			Label:  loc.T(l.key),
			Active: isActive(current, l.href),
		})
	}
	return vm
}

func isActive(current, href string) bool {
	path, _, _ := strings.Cut(current, "?")
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

// HeroVM is the full-bleed video header shared by the marketing pages.
// Video and Poster are already resolved asset URLs.
type HeroVM struct {
	Heading  string
	Subline  string
	CTAHref  string
	CTALabel string
	Video    string
	Poster   string
	Anim     animations.Variant
}

// Media resolves asset keys to URLs without blocking on the network.
// *assets.Resolver satisfies it through its warmed cache.
type Media interface {
	Video(key string) string
	Image(key string) string
}
