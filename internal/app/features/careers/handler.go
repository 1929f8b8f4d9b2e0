// internal/app/features/careers/handler.go
package careers

import (
	"net/http"

	"github.com/dalemusser/orsonvision/internal/domain/animations"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/viewdata"
	"github.com/dalemusser/orsonvision/internal/domain/models"
)

type opening struct {
	ID       string
	Title    string
	Location string
	Type     string
	Summary  string
}

type pageData struct {
	viewdata.BaseVM
	Heading    string
	Intro      string
	TeamImage  string
	Openings   []opening
	ApplyLabel string
	NoneText   string
	CardAnim   animations.Variant
}

type Handler struct {
	Media  viewdata.Media
	Render viewdata.Renderer
}

func NewHandler(media viewdata.Media) *Handler {
	return &Handler{Media: media, Render: viewdata.Render}
}

// ServeCareers handles GET /careers.
func (h *Handler) ServeCareers(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())
	lang := loc.Code()

	data := pageData{
		BaseVM:     viewdata.NewBaseVM(r, loc.T(i18n.CareersTitle), "/"),
		Heading:    loc.T(i18n.CareersTitle),
		Intro:      loc.T(i18n.CareersIntro),
		TeamImage:  h.Media.Image("team"),
		ApplyLabel: loc.T(i18n.CareersApply),
		NoneText:   loc.T(i18n.CareersNone),
		CardAnim:   animations.CinematicCard,
	}
	for _, o := range models.Openings {
		data.Openings = append(data.Openings, opening{
			ID:       o.ID,
			Title:    o.Title.In(lang),
			Location: o.Location.In(lang),
			Type:     o.Type.In(lang),
			Summary:  o.Summary.In(lang),
		})
	}

	h.Render(w, r, "careers", data)
}
