// internal/app/system/i18n/keys.go
package i18n

// Key identifies one translatable string. The set is closed: adding a key
// means adding it here, to keyNames and to every dictionary.
type Key int

const (
	NavHome Key = iota
	NavCareers
	NavJourney
	NavIndustries
	NavContact
	NavLanguage

	HomeTitle
	HomeHeadline
	HomeSubline
	HomeCTA
	HomeShowreel

	CareersTitle
	CareersIntro
	CareersApply
	CareersNone

	JourneyTitle
	JourneyIntro

	IndustriesTitle
	IndustriesIntro
	IndustryServices
	IndustryCTA

	ContactTitle
	ContactIntro
	ContactStep
	ContactOf
	ContactNext
	ContactBack
	ContactSubmit
	ContactSubmitting
	ContactThanksTitle
	ContactThanksBody
	ContactSendAnother
	ContactAttachments
	ContactRateLimited
	ContactSubmitError
	ContactSelect
	ContactUploadTooLarge
	ContactUploadType
	ContactTooManyFiles
	ContactQuickTitle
	ContactStepAbout
	ContactStepProject
	ContactStepDetails

	ValidationRequired
	ValidationEmail

	FieldName
	FieldEmail
	FieldPhone
	FieldCompany
	FieldProjectType
	FieldBudget
	FieldTimeline
	FieldDescription
	FieldMessage

	ErrorNotFoundTitle
	ErrorNotFoundBody
	ErrorServerTitle
	ErrorServerBody
	ErrorBackHome

	FooterRights

	keyCount
)

var keyNames = [keyCount]string{
	NavHome:       "nav.home",
	NavCareers:    "nav.careers",
	NavJourney:    "nav.journey",
	NavIndustries: "nav.industries",
	NavContact:    "nav.contact",
	NavLanguage:   "nav.language",

	HomeTitle:    "home.title",
	HomeHeadline: "home.headline",
	HomeSubline:  "home.subline",
	HomeCTA:      "home.cta",
	HomeShowreel: "home.showreel",

	CareersTitle: "careers.title",
	CareersIntro: "careers.intro",
	CareersApply: "careers.apply",
	CareersNone:  "careers.none",

	JourneyTitle: "journey.title",
	JourneyIntro: "journey.intro",

	IndustriesTitle:  "industries.title",
	IndustriesIntro:  "industries.intro",
	IndustryServices: "industry.services",
	IndustryCTA:      "industry.cta",

	ContactTitle:       "contact.title",
	ContactIntro:       "contact.intro",
	ContactStep:        "contact.step",
	ContactOf:          "contact.of",
	ContactNext:        "contact.next",
	ContactBack:        "contact.back",
	ContactSubmit:      "contact.submit",
	ContactSubmitting:  "contact.submitting",
	ContactThanksTitle: "contact.thanks_title",
	ContactThanksBody:  "contact.thanks_body",
	ContactSendAnother: "contact.send_another",
	ContactAttachments: "contact.attachments",
	ContactRateLimited: "contact.rate_limited",
	ContactSubmitError: "contact.submit_error",
	ContactSelect:      "contact.select",

	ContactUploadTooLarge: "contact.upload_too_large",
	ContactUploadType:     "contact.upload_type",
	ContactTooManyFiles:   "contact.too_many_files",
	ContactQuickTitle:     "contact.quick_title",
	ContactStepAbout:      "contact.step_about",
	ContactStepProject:    "contact.step_project",
	ContactStepDetails:    "contact.step_details",

	ValidationRequired: "validation.required",
	ValidationEmail:    "validation.email",

	FieldName:        "field.name",
	FieldEmail:       "field.email",
	FieldPhone:       "field.phone",
	FieldCompany:     "field.company",
	FieldProjectType: "field.project_type",
	FieldBudget:      "field.budget",
	FieldTimeline:    "field.timeline",
	FieldDescription: "field.description",
	FieldMessage:     "field.message",

	ErrorNotFoundTitle: "error.not_found_title",
	ErrorNotFoundBody:  "error.not_found_body",
	ErrorServerTitle:   "error.server_title",
	ErrorServerBody:    "error.server_body",
	ErrorBackHome:      "error.back_home",

	FooterRights: "footer.rights",
}

// String returns the dotted identifier, e.g. "home.title".
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "i18n.invalid"
	}
	return keyNames[k]
}

// Keys returns every defined key.
func Keys() []Key {
	out := make([]Key, keyCount)
	for i := range out {
		out[i] = Key(i)
	}
	return out
}
