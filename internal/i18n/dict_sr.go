package i18n

var dictSerbian = map[string]string{
	"meta.title":       "LD Biro - Stručno Knjigovodstvo & Finansijske Usluge | 30+ godina iskustva",
	"meta.description": "Stručne usluge knjigovodstva, poresko planiranje i finansijsko savetovanje za preduzeća i poljoprivredna gazdinstva. Senior stručnjaci sa 30+ godina iskustva.",

	"common.companyName": "LD Biro",
	"common.tagline":     "Knjigovodstvena agencija",

	"nav.services": "Usluge",
	"nav.about":    "O nama",
	"nav.contact":  "Kontakt",

	"hero.title":                "Stručno knjigovodstvo za",
	"hero.titleHighlight":       "vaš biznis",
	"hero.description":          "Preko 30 godina iskustva u knjigovodstvu, poreskom planiranju i finansijskom savetovanju za preduzeća i poljoprivredna gazdinstva.",
	"hero.scheduleConsultation": "Zakažite konsultacije",
	"hero.learnMore":            "Saznajte više",

	"services.title":    "Naše usluge",
	"services.subtitle": "Kompletna knjigovodstvena podrška za vaše poslovanje",

	"about.title":     "O nama",
	"about.paragraph": "LD Biro je knjigovodstvena agencija sa više od tri decenije iskustva. Naš tim senior stručnjaka vodi računa o knjigama, porezima i finansijama za preduzetnike, privredna društva i poljoprivredna gazdinstva.",

	"contact.title":             "Kontaktirajte nas",
	"contact.subtitle":          "Pošaljite nam poruku i javićemo se u najkraćem roku",
	"contact.form.title":        "Pošaljite poruku",
	"contact.form.name":         "Ime i prezime",
	"contact.form.email":        "Email adresa",
	"contact.form.businessType": "Tip biznisa",
	"contact.form.message":      "Poruka",
	"contact.form.submit":       "Pošalji poruku",
	"contact.messages.success":  "Poruka je uspešno poslana!",
	"contact.messages.error":    "Greška pri slanju poruke. Molimo pokušajte ponovo.",

	"notFound.title":       "Stranica nije pronađena",
	"notFound.description": "Tražena stranica ne postoji ili je premeštena.",
	"notFound.backHome":    "Nazad na početnu",

	"footer.copyright": "Sva prava zadržana.",
}
