// internal/app/system/i18n/dict_fr.go
package i18n

var french = [keyCount]string{
	NavHome:       "Accueil",
	NavCareers:    "Carrières",
	NavJourney:    "Notre méthode",
	NavIndustries: "Secteurs",
	NavContact:    "Contact",
	NavLanguage:   "English",

	HomeTitle:    "Des récits cinématographiques pour les marques",
	HomeHeadline: "Nous donnons aux marques l'allure du cinéma.",
	HomeSubline:  "Films, campagnes et sites web par un petit studio à grande focale.",
	HomeCTA:      "Démarrer un projet",
	HomeShowreel: "Voir la bande démo",

	CareersTitle: "Carrières",
	CareersIntro: "Une petite équipe de réalisateurs, monteurs, designers et développeurs.",
	CareersApply: "Postuler",
	CareersNone:  "Aucun poste ouvert pour le moment. Écrivez-nous quand même.",

	JourneyTitle: "Le parcours client",
	JourneyIntro: "Cinq étapes du premier appel au jour du lancement.",

	IndustriesTitle:  "Secteurs",
	IndustriesIntro:  "Des secteurs dont nous connaissons le public autant que la caméra.",
	IndustryServices: "Nos prestations",
	IndustryCTA:      "Parlons de votre projet",

	ContactTitle:       "Démarrer un projet",
	ContactIntro:       "Parlez-nous de vous et de ce que vous imaginez.",
	ContactStep:        "Étape",
	ContactOf:          "sur",
	ContactNext:        "Suivant",
	ContactBack:        "Retour",
	ContactSubmit:      "Envoyer",
	ContactSubmitting:  "Envoi…",
	ContactThanksTitle: "Merci",
	ContactThanksBody:  "Nous avons bien reçu votre message et répondrons sous deux jours ouvrés.",
	ContactSendAnother: "Envoyer un autre message",
	ContactAttachments: "Pièces jointes",
	ContactRateLimited: "Trop d'envois. Merci de patienter quelques minutes.",
	ContactSubmitError: "L'envoi du formulaire a échoué. Merci de réessayer.",
	ContactSelect:      "Choisir…",

	ContactUploadTooLarge: "Ce fichier est trop volumineux.",
	ContactUploadType:     "Ce type de fichier n'est pas accepté. Utilisez PDF, Word, texte, image ou zip.",
	ContactTooManyFiles:   "Vous pouvez joindre jusqu'à cinq fichiers.",
	ContactQuickTitle:     "Message rapide",
	ContactStepAbout:      "Vous",
	ContactStepProject:    "Votre projet",
	ContactStepDetails:    "Détails",

	ValidationRequired: "Ce champ est obligatoire",
	ValidationEmail:    "Merci de saisir une adresse e-mail valide",

	FieldName:        "Nom",
	FieldEmail:       "E-mail",
	FieldPhone:       "Téléphone",
	FieldCompany:     "Entreprise",
	FieldProjectType: "Type de projet",
	FieldBudget:      "Budget",
	FieldTimeline:    "Calendrier",
	FieldDescription: "Décrivez le projet",
	FieldMessage:     "Message",

	ErrorNotFoundTitle: "Page introuvable",
	ErrorNotFoundBody:  "La page demandée a été déplacée ou n'a jamais existé.",
	ErrorServerTitle:   "Une erreur est survenue",
	ErrorServerBody:    "Nous n'avons pas pu traiter votre demande. Merci de réessayer.",
	ErrorBackHome:      "Retour à l'accueil",

	FooterRights: "Tous droits réservés.",
}
