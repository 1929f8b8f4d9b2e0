// internal/app/features/journey/handler.go
package journey

import (
	"net/http"

	"github.com/dalemusser/orsonvision/internal/domain/animations"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/viewdata"
	"github.com/dalemusser/orsonvision/internal/domain/models"
)

type stage struct {
	Number int
	Title  string
	Body   string
	Anim   animations.Variant
}

type pageData struct {
	viewdata.BaseVM
	Heading     string
	Intro       string
	StudioImage string
	Stages      []stage
	CTALabel    string
}

type Handler struct {
	Media  viewdata.Media
	Render viewdata.Renderer
}

func NewHandler(media viewdata.Media) *Handler {
	return &Handler{Media: media, Render: viewdata.Render}
}

// ServeJourney handles GET /journey: the client journey, one animated
// panel per stage.
func (h *Handler) ServeJourney(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())
	lang := loc.Code()

	data := pageData{
		BaseVM:      viewdata.NewBaseVM(r, loc.T(i18n.JourneyTitle), "/"),
		Heading:     loc.T(i18n.JourneyTitle),
		Intro:       loc.T(i18n.JourneyIntro),
		StudioImage: h.Media.Image("studio"),
		CTALabel:    loc.T(i18n.HomeCTA),
	}
	for _, st := range models.Journey {
		data.Stages = append(data.Stages, stage{
			Number: st.Number,
			Title:  st.Title.In(lang),
			Body:   st.Body.In(lang),
			Anim:   st.Animation,
		})
	}

	h.Render(w, r, "journey", data)
}
