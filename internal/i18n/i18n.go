package i18n

import "fmt"

// Language is a closed enumeration of supported UI languages. Unknown codes
// are rejected, never silently mapped to a fallback.
type Language string

const LanguageArabic Language = "ar"

// Parse validates a language code.
func Parse(code string) (Language, bool) {
	switch Language(code) {
	case LanguageArabic:
		return LanguageArabic, true
	}
	return "", false
}

// Table is a flat key → string mapping for one language. Tables are immutable
// after init.
type Table map[string]string

// Strings returns the full table for a language.
func Strings(lang Language) (Table, bool) {
	t, ok := tables[lang]
	return t, ok
}

// NoGamesFound renders the empty-search message including the literal query
// text, so the grid never shows an unexplained empty state.
func NoGamesFound(lang Language, query string) string {
	t := tables[lang]
	return fmt.Sprintf("%s \"%s\"", t["noGamesFound"], query)
}

var tables = map[Language]Table{
	LanguageArabic: arabic,
}

var arabic = Table{
	"heroTitle":           "اشحن ألعابك بأفضل الأسعار",
	"heroSubtitle":        "شحن فوري وآمن لجميع الألعاب الشهيرة بالدرهم المغربي",
	"cta":                 "تصفح العروض",
	"featuredGames":       "الألعاب المميزة",
	"searchPlaceholder":   "ابحث عن لعبة...",
	"sortBy":              "ترتيب حسب",
	"sortDefault":         "الافتراضي",
	"sortNameAsc":         "الاسم (أ-ي)",
	"sortNameDesc":        "الاسم (ي-أ)",
	"sortPackages":        "عدد العروض",
	"noGamesFound":        "لا توجد نتائج لـ",
	"accountOffer":        "جميع العروض تتم عبر الدخول للحساب وليس عن طريق المعرف (ID)",
	"accountOfferBadge":   "حساب",
	"enterDetails":        "أدخل معلوماتك",
	"gameNamePlaceholder": "اسم اللعبة",
	"countryPlaceholder":  "الدولة",
	"cityPlaceholder":     "المدينة",
	"gmailPlaceholder":    "البريد الإلكتروني",
	"selectPackage":       "اختر العرض",
	"price":               "السعر",
	"placeOrder":          "إتمام الطلب",
	"chatHelper":          "GameGenie مساعدك الذكي",
	"chatPlaceholder":     "اكتب سؤالك هنا...",
	"fastSecure":          "سريع وآمن",
	"fastSecureDesc":      "يتم تنفيذ الطلبات في أقل من 30 دقيقة",
	"trusted":             "موثوق",
	"trustedDesc":         "آلاف الطلبات المنفذة بنجاح",
	"support":             "دعم متواصل",
	"supportDesc":         "فريق الدعم متاح طوال اليوم",
	"footerText":          "GameTop Hub — وجهتك الأولى لشحن الألعاب",
}
