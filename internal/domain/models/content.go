// internal/domain/models/content.go
package models

import "github.com/dalemusser/orsonvision/internal/domain/animations"

// Text is a short piece of marketing copy in every language the site serves.
type Text struct {
	EN string
	FR string
}

// In returns the copy for lang, falling back to English.
func (t Text) In(lang string) string {
	if lang == "fr" && t.FR != "" {
		return t.FR
	}
	return t.EN
}

// Industry is a vertical the agency sells into. Each has a landing page at
// /industries/{slug}.
type Industry struct {
	Slug      string
	Name      Text
	Tagline   Text
	Summary   Text
	HeroVideo string // video asset key
	HeroImage string // image asset key
	Animation animations.Variant
	Services  []Text
}

// Industries lists the verticals in menu order.
var Industries = []Industry{
	{
		Slug:      "fashion",
		Name:      Text{EN: "Fashion", FR: "Mode"},
		Tagline:   Text{EN: "Collections that move.", FR: "Des collections en mouvement."},
		Summary:   Text{EN: "Lookbook films, runway capture and campaign stills for labels of every size.", FR: "Films lookbook, captation de défilés et visuels de campagne pour toutes les maisons."},
		HeroVideo: "fashion-hero",
		HeroImage: "fashion-cover",
		Animation: animations.FilmStrip,
		Services: []Text{
			{EN: "Lookbook films", FR: "Films lookbook"},
			{EN: "Runway capture", FR: "Captation de défilés"},
			{EN: "E-commerce stills", FR: "Photos e-commerce"},
		},
	},
	{
		Slug:      "hospitality",
		Name:      Text{EN: "Hospitality", FR: "Hôtellerie"},
		Tagline:   Text{EN: "Make the stay start online.", FR: "Le séjour commence en ligne."},
		Summary:   Text{EN: "Hotel, restaurant and resort stories told through cinematic tours.", FR: "Hôtels, restaurants et resorts racontés en visites cinématographiques."},
		HeroVideo: "hospitality-hero",
		HeroImage: "hospitality-cover",
		Animation: animations.ParallaxDrift,
		Services: []Text{
			{EN: "Property tours", FR: "Visites de lieux"},
			{EN: "Menu photography", FR: "Photographie culinaire"},
			{EN: "Booking site design", FR: "Sites de réservation"},
		},
	},
	{
		Slug:      "wedding",
		Name:      Text{EN: "Weddings", FR: "Mariages"},
		Tagline:   Text{EN: "One day, kept forever.", FR: "Un jour, pour toujours."},
		Summary:   Text{EN: "Documentary wedding films and same-day edits.", FR: "Films de mariage documentaires et montages le jour même."},
		HeroVideo: "wedding-hero",
		HeroImage: "wedding-cover",
		Animation: animations.LightLeak,
		Services: []Text{
			{EN: "Feature films", FR: "Films longs"},
			{EN: "Same-day edits", FR: "Montage le jour même"},
			{EN: "Save-the-date teasers", FR: "Teasers save-the-date"},
		},
	},
	{
		Slug:      "education",
		Name:      Text{EN: "Education", FR: "Éducation"},
		Tagline:   Text{EN: "Show the campus before the visit.", FR: "Montrer le campus avant la visite."},
		Summary:   Text{EN: "Recruitment films, virtual open days and course trailers.", FR: "Films de recrutement, portes ouvertes virtuelles et bandes-annonces de cursus."},
		HeroVideo: "education-hero",
		HeroImage: "education-cover",
		Animation: animations.ApertureReveal,
		Services: []Text{
			{EN: "Recruitment films", FR: "Films de recrutement"},
			{EN: "Virtual open days", FR: "Portes ouvertes virtuelles"},
			{EN: "Course trailers", FR: "Bandes-annonces de cursus"},
		},
	},
}

// IndustryBySlug finds a vertical by its URL slug.
func IndustryBySlug(slug string) (Industry, bool) {
	for _, ind := range Industries {
		if ind.Slug == slug {
			return ind, true
		}
	}
	return Industry{}, false
}

// Opening is a role listed on the careers page.
type Opening struct {
	ID       string
	Title    Text
	Location Text
	Type     Text
	Summary  Text
}

var Openings = []Opening{
	{
		ID:       "motion-designer",
		Title:    Text{EN: "Motion Designer", FR: "Motion designer"},
		Location: Text{EN: "Paris or remote", FR: "Paris ou à distance"},
		Type:     Text{EN: "Full-time", FR: "CDI"},
		Summary:  Text{EN: "Own title sequences and lens effects across client films.", FR: "Génériques et effets d'optique sur nos films clients."},
	},
	{
		ID:       "video-editor",
		Title:    Text{EN: "Video Editor", FR: "Monteur vidéo"},
		Location: Text{EN: "Paris", FR: "Paris"},
		Type:     Text{EN: "Full-time", FR: "CDI"},
		Summary:  Text{EN: "Cut brand films from rushes to final grade.", FR: "Monter des films de marque, des rushes à l'étalonnage."},
	},
	{
		ID:       "frontend-engineer",
		Title:    Text{EN: "Front-end Engineer", FR: "Développeur front-end"},
		Location: Text{EN: "Remote", FR: "À distance"},
		Type:     Text{EN: "Contract", FR: "Freelance"},
		Summary:  Text{EN: "Build campaign sites that load fast and look cinematic.", FR: "Des sites de campagne rapides et cinématographiques."},
	},
}

// JourneyStage is one step of the client journey page.
type JourneyStage struct {
	Number    int
	Title     Text
	Body      Text
	Animation animations.Variant
}

var Journey = []JourneyStage{
	{Number: 1, Title: Text{EN: "Discovery", FR: "Découverte"}, Body: Text{EN: "We listen, audit what exists and agree on the story.", FR: "Nous écoutons, analysons l'existant et fixons l'histoire."}, Animation: animations.LensFocus},
	{Number: 2, Title: Text{EN: "Treatment", FR: "Note d'intention"}, Body: Text{EN: "Moodboards, scripts and a shot list you can sign off.", FR: "Moodboards, scénario et liste de plans à valider."}, Animation: animations.CinematicCard},
	{Number: 3, Title: Text{EN: "Production", FR: "Production"}, Body: Text{EN: "Crew, cameras and locations on the day.", FR: "Équipe, caméras et décors le jour J."}, Animation: animations.FilmReel},
	{Number: 4, Title: Text{EN: "Post-production", FR: "Post-production"}, Body: Text{EN: "Edit, grade, sound and motion design.", FR: "Montage, étalonnage, son et motion design."}, Animation: animations.LightLeak},
	{Number: 5, Title: Text{EN: "Launch", FR: "Lancement"}, Body: Text{EN: "Delivery in every format your channels need.", FR: "Livraison dans tous les formats de vos canaux."}, Animation: animations.LensFlare},
}
