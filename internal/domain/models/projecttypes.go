// internal/domain/models/projecttypes.go
package models

// Option is one choice in a contact form select.
type Option struct {
	Value string
	Label Text
}

// Canonical project type identifiers.
const (
	ProjectBrandFilm   = "brand-film"
	ProjectCampaign    = "campaign"
	ProjectWebsite     = "website"
	ProjectEvent       = "event"
	ProjectPhotography = "photography"
	ProjectOther       = "other"
)

var ProjectTypes = []Option{
	{ProjectBrandFilm, Text{EN: "Brand film", FR: "Film de marque"}},
	{ProjectCampaign, Text{EN: "Advertising campaign", FR: "Campagne publicitaire"}},
	{ProjectWebsite, Text{EN: "Website", FR: "Site web"}},
	{ProjectEvent, Text{EN: "Event coverage", FR: "Captation d'événement"}},
	{ProjectPhotography, Text{EN: "Photography", FR: "Photographie"}},
	{ProjectOther, Text{EN: "Something else", FR: "Autre"}},
}

var Budgets = []Option{
	{"under-10k", Text{EN: "Under €10k", FR: "Moins de 10 k€"}},
	{"10k-25k", Text{EN: "€10k to €25k", FR: "10 à 25 k€"}},
	{"25k-50k", Text{EN: "€25k to €50k", FR: "25 à 50 k€"}},
	{"50k-100k", Text{EN: "€50k to €100k", FR: "50 à 100 k€"}},
	{"over-100k", Text{EN: "Over €100k", FR: "Plus de 100 k€"}},
}

var Timelines = []Option{
	{"asap", Text{EN: "As soon as possible", FR: "Dès que possible"}},
	{"1-3-months", Text{EN: "1 to 3 months", FR: "1 à 3 mois"}},
	{"3-6-months", Text{EN: "3 to 6 months", FR: "3 à 6 mois"}},
	{"flexible", Text{EN: "Flexible", FR: "Flexible"}},
}

// OptionLabel returns the label for value in opts, or value itself.
func OptionLabel(opts []Option, value, lang string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label.In(lang)
		}
	}
	return value
}
