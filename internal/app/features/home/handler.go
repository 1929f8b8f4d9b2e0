// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/orsonvision/internal/domain/animations"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/viewdata"
	"github.com/dalemusser/orsonvision/internal/domain/models"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Media  viewdata.Media
	Render viewdata.Renderer
}

func NewHandler(media viewdata.Media) *Handler {
	return &Handler{
		Media:  media,
		Render: viewdata.Render,
	}
}

type industryCard struct {
	Href    string
	Name    string
	Tagline string
	Image   string
	Anim    animations.Variant
}

type stageTeaser struct {
	Number int
	Title  string
}

type homeData struct {
	viewdata.BaseVM
	Hero            viewdata.HeroVM
	Showreel        string
	ShowreelLabel   string
	IndustriesTitle string
	Industries      []industryCard
	JourneyTitle    string
	Journey         []stageTeaser
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())
	lang := loc.Code()

	data := homeData{
		BaseVM: viewdata.NewBaseVM(r, loc.T(i18n.HomeTitle), "/"),
		Hero: viewdata.HeroVM{
			Heading:  loc.T(i18n.HomeHeadline),
			Subline:  loc.T(i18n.HomeSubline),
			CTAHref:  "/contact",
			CTALabel: loc.T(i18n.HomeCTA),
			Video:    h.Media.Video("hero-reel"),
			Poster:   h.Media.Image("hero-poster"),
			Anim:     animations.LensFlare,
		},
		Showreel:        h.Media.Video("showreel"),
		ShowreelLabel:   loc.T(i18n.HomeShowreel),
		IndustriesTitle: loc.T(i18n.IndustriesTitle),
		JourneyTitle:    loc.T(i18n.JourneyTitle),
	}

	for _, ind := range models.Industries {
		data.Industries = append(data.Industries, industryCard{
			Href:    "/industries/" + ind.Slug,
			Name:    ind.Name.In(lang),
			Tagline: ind.Tagline.In(lang),
			Image:   h.Media.Image(ind.HeroImage),
			Anim:    ind.Animation,
		})
	}
	for _, st := range models.Journey {
		data.Journey = append(data.Journey, stageTeaser{Number: st.Number, Title: st.Title.In(lang)})
	}

	h.Render(w, r, "home", data)
}
