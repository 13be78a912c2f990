package i18n

var dictEnglish = map[string]string{
	"meta.title":       "LD Biro - Professional Bookkeeping & Financial Services | 30+ years experience",
	"meta.description": "Professional bookkeeping services, tax planning and financial consulting for businesses and agricultural farms. Senior experts with 30+ years of experience.",

	"common.companyName": "LD Biro",
	"common.tagline":     "Accounting agency",

	"nav.services": "Services",
	"nav.about":    "About us",
	"nav.contact":  "Contact",

	"hero.title":                "Professional bookkeeping for",
	"hero.titleHighlight":       "your business",
	"hero.description":          "Over 30 years of experience in bookkeeping, tax planning and financial consulting for businesses and agricultural farms.",
	"hero.scheduleConsultation": "Schedule a consultation",
	"hero.learnMore":            "Learn more",

	"services.title":    "Our services",
	"services.subtitle": "Complete bookkeeping support for your business",

	"about.title":     "About us",
	"about.paragraph": "LD Biro is an accounting agency with more than three decades of experience. Our team of senior experts takes care of the books, taxes and finances of entrepreneurs, companies and agricultural farms.",

	"contact.title":             "Contact us",
	"contact.subtitle":          "Send us a message and we will get back to you shortly",
	"contact.form.title":        "Send a message",
	"contact.form.name":         "Full name",
	"contact.form.email":        "Email address",
	"contact.form.businessType": "Business type",
	"contact.form.message":      "Message",
	"contact.form.submit":       "Send message",
	"contact.messages.success":  "Message sent successfully!",
	"contact.messages.error":    "Error sending the message. Please try again.",

	"notFound.title":       "Page not found",
	"notFound.description": "The requested page does not exist or has been moved.",
	"notFound.backHome":    "Back to the home page",

	"footer.copyright": "All rights reserved.",
}
