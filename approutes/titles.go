package approutes

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

var (
	supported = []language.Tag{language.English, language.Nepali}
	matcher   = language.NewMatcher(supported)
	titles    = newTitleCatalog()
)

var nepaliTitles = map[string]string{
	"Home":                "गृहपृष्ठ",
	"Catalog":             "पुस्तक सूची",
	"Book details":        "पुस्तक विवरण",
	"Cart":                "कार्ट",
	"Wish List":           "इच्छा सूची",
	"My orders":           "मेरा अर्डरहरू",
	"Order details":       "अर्डर विवरण",
	"Checkout":            "चेकआउट",
	"Login":               "लगइन",
	"Register":            "दर्ता",
	"Activate account":    "खाता सक्रिय गर्नुहोस्",
	"Reset password":      "पासवर्ड रिसेट",
	"Profile":             "प्रोफाइल",
	"School profile":      "विद्यालय प्रोफाइल",
	"Publisher profile":   "प्रकाशक प्रोफाइल",
	"Institution profile": "संस्था प्रोफाइल",
	"My books":            "मेरा पुस्तकहरू",
	"Moderation":          "मोडरेसन",
	"Translations":        "अनुवादहरू",
	"Notifications":       "सूचनाहरू",
}

func newTitleCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, d := range definitions {
		if err := b.SetString(language.English, d.title, d.title); err != nil {
			panic(err)
		}
		if ne, ok := nepaliTitles[d.title]; ok {
			if err := b.SetString(language.Nepali, d.title, ne); err != nil {
				panic(err)
			}
		}
	}

	return b
}
