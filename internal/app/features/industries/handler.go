// internal/app/features/industries/handler.go
package industries

import (
	"net/http"

	"github.com/dalemusser/orsonvision/internal/domain/animations"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/viewdata"
	"github.com/dalemusser/orsonvision/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type card struct {
	Href    string
	Name    string
	Tagline string
	Image   string
	Anim    animations.Variant
}

type indexData struct {
	viewdata.BaseVM
	Heading string
	Intro   string
	Cards   []card
}

type landingData struct {
	viewdata.BaseVM
	Hero          viewdata.HeroVM
	Summary       string
	ServicesTitle string
	Services      []string
	Cover         string
}

// Handler serves the industry index and the per-vertical landing pages.
// NotFound renders the 404 page for unknown slugs.
type Handler struct {
	Media    viewdata.Media
	Log      *zap.Logger
	Render   viewdata.Renderer
	NotFound http.HandlerFunc
}

func NewHandler(media viewdata.Media, notFound http.HandlerFunc, logger *zap.Logger) *Handler {
	return &Handler{Media: media, Log: logger, Render: viewdata.Render, NotFound: notFound}
}

// ServeIndex handles GET /industries.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())
	lang := loc.Code()

	data := indexData{
		BaseVM:  viewdata.NewBaseVM(r, loc.T(i18n.IndustriesTitle), "/"),
		Heading: loc.T(i18n.IndustriesTitle),
		Intro:   loc.T(i18n.IndustriesIntro),
	}
	for _, ind := range models.Industries {
		data.Cards = append(data.Cards, card{
			Href:    "/industries/" + ind.Slug,
			Name:    ind.Name.In(lang),
			Tagline: ind.Tagline.In(lang),
			Image:   h.Media.Image(ind.HeroImage),
			Anim:    ind.Animation,
		})
	}

	h.Render(w, r, "industries_index", data)
}

// ServeLanding handles GET /industries/{slug}.
func (h *Handler) ServeLanding(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	ind, ok := models.IndustryBySlug(slug)
	if !ok {
		h.Log.Debug("unknown industry", zap.String("slug", slug))
		h.NotFound(w, r)
		return
	}

	loc := i18n.FromContext(r.Context())
	lang := loc.Code()
	name := ind.Name.In(lang)

	data := landingData{
		BaseVM: viewdata.NewBaseVM(r, name, "/industries"),
		Hero: viewdata.HeroVM{
			Heading:  name,
			Subline:  ind.Tagline.In(lang),
			CTAHref:  "/contact",
			CTALabel: loc.T(i18n.IndustryCTA),
			Video:    h.Media.Video(ind.HeroVideo),
			Poster:   h.Media.Image(ind.HeroImage),
			Anim:     ind.Animation,
		},
		Summary:       ind.Summary.In(lang),
		ServicesTitle: loc.T(i18n.IndustryServices),
		Cover:         h.Media.Image(ind.HeroImage),
	}
	for _, s := range ind.Services {
		data.Services = append(data.Services, s.In(lang))
	}

	h.Render(w, r, "industry_landing", data)
}
