// internal/app/system/i18n/dict_en.go
package i18n

var english = [keyCount]string{
	NavHome:       "Home",
	NavCareers:    "Careers",
	NavJourney:    "How we work",
	NavIndustries: "Industries",
	NavContact:    "Contact",
	NavLanguage:   "Français",

	HomeTitle:    "Cinematic stories for brands",
	HomeHeadline: "We make brands look like cinema.",
	HomeSubline:  "Films, campaigns and websites from a small studio with a big lens.",
	HomeCTA:      "Start a project",
	HomeShowreel: "Watch the showreel",

	CareersTitle: "Careers",
	CareersIntro: "We are a small crew of directors, editors, designers and engineers.",
	CareersApply: "Apply",
	CareersNone:  "No open roles right now. Say hello anyway.",

	JourneyTitle: "The client journey",
	JourneyIntro: "Five stages from first call to launch day.",

	IndustriesTitle:  "Industries",
	IndustriesIntro:  "Sectors where we know the audience as well as the camera.",
	IndustryServices: "What we do",
	IndustryCTA:      "Talk to us about your project",

	ContactTitle:       "Start a project",
	ContactIntro:       "Tell us a little about you and what you have in mind.",
	ContactStep:        "Step",
	ContactOf:          "of",
	ContactNext:        "Next",
	ContactBack:        "Back",
	ContactSubmit:      "Send",
	ContactSubmitting:  "Sending…",
	ContactThanksTitle: "Thank you",
	ContactThanksBody:  "We received your message and will reply within two working days.",
	ContactSendAnother: "Send another message",
	ContactAttachments: "Attachments",
	ContactRateLimited: "Too many submissions. Please wait a few minutes and try again.",
	ContactSubmitError: "Failed to submit form. Please try again.",
	ContactSelect:      "Choose…",

	ContactUploadTooLarge: "That file is too large.",
	ContactUploadType:     "That file type is not accepted. Use PDF, Word, text, image or zip files.",
	ContactTooManyFiles:   "You can attach up to five files.",
	ContactQuickTitle:     "Quick message",
	ContactStepAbout:      "About you",
	ContactStepProject:    "Your project",
	ContactStepDetails:    "Details",

	ValidationRequired: "This field is required",
	ValidationEmail:    "Please enter a valid email address",

	FieldName:        "Name",
	FieldEmail:       "Email",
	FieldPhone:       "Phone",
	FieldCompany:     "Company",
	FieldProjectType: "Project type",
	FieldBudget:      "Budget",
	FieldTimeline:    "Timeline",
	FieldDescription: "Tell us about the project",
	FieldMessage:     "Message",

	ErrorNotFoundTitle: "Page not found",
	ErrorNotFoundBody:  "The page you were looking for has moved or never existed.",
	ErrorServerTitle:   "Something went wrong",
	ErrorServerBody:    "We could not complete your request. Please try again.",
	ErrorBackHome:      "Back to the home page",

	FooterRights: "All rights reserved.",
}
