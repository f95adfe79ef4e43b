// README: Fixed intent pattern tables; matching runs on ASCII-normalized text.
package dialogue

import "strings"

// Exact-message canned exchanges. Keys are whole normalized messages.
var greetingMessages = map[string]struct{}{
	"selam": {}, "sa": {}, "slm": {}, "mrb": {}, "merhaba": {},
	"gunaydin": {}, "iyi gunler": {}, "iyi aksamlar": {}, "selamun aleykum": {},
	"hello": {}, "hi": {},
}

var farewellMessages = map[string]struct{}{
	"gorusuruz": {}, "bb": {}, "bay bay": {}, "hoscakal": {},
	"iyi geceler": {}, "hadi eyvallah": {}, "bye": {},
}

var thanksMessages = map[string]struct{}{
	"tesekkurler": {}, "tesekkur ederim": {}, "sagol": {}, "saol": {},
	"eyvallah": {}, "tamam tesekkurler": {}, "cok sagol": {},
}

// Profanity substrings are long enough not to hide inside city names ("mal"
// would hit Malatya); the short slang forms match whole tokens only.
var profanitySubstrings = []string{
	"orospu", "siktir", "sktir", "amina", "yavsak",
	"serefsiz", "pezevenk", "gavat", "gotveren",
}

var profanityWords = []string{"amk", "aq"}

// faqGroup pairs patterns with a fixed reply. phrases are substring matched;
// words match whole tokens only ("irak" must never fire inside the verb
// "birakacagim"). Groups are evaluated in order and more specific patterns
// must come before generic ones that would shadow them: "deneme" has to run
// before the generic price words, otherwise "deneme ucretli mi" would get
// the pricing answer.
type faqGroup struct {
	name    string
	phrases []string
	words   []string
	reply   string
}

var faqGroups = []faqGroup{
	{name: "trial", phrases: []string{"deneme suresi", "deneme", "kac gun ucretsiz"}, reply: faqTrial},
	{name: "obligation", phrases: []string{"almak zorunda", "zorunlu mu", "mecbur mu", "mecburi mi"}, reply: faqNoObligation},
	{name: "notifications", phrases: []string{"bildirim"}, reply: faqNotifications},
	{name: "load_price", phrases: []string{"navlun", "yuk fiyat", "yukun fiyat"}, reply: faqLoadPrice},
	{name: "phone_question", phrases: []string{"telefon neden", "telefonu yok", "numara yok", "numarasi yok"}, reply: faqPhoneMissing},
	{name: "freshness", phrases: []string{"guncelleniyor", "guncel mi", "taze mi", "ne zaman eklendi"}, reply: faqFreshness},
	{name: "bot_identity", phrases: []string{"bot musun", "sen kimsin", "gercek misin", "robot musun", "yapay zeka misin"}, reply: faqBotIdentity},
	{name: "how_to", phrases: []string{"nasil kullanilir", "nasil calisiyor", "nasil kullaniyorum", "yardim", "ornek ver"}, reply: faqHowTo},
	{name: "international", words: []string{
		"irak", "iraka", "iran", "irana", "avrupa", "avrupaya",
		"bulgaristan", "bulgaristana", "gurcistan", "gurcistana",
		"rusya", "rusyaya", "polonya", "polonyaya", "almanya", "almanyaya",
		"suriye", "suriyeye", "yurtdisi", "yurtdisina",
	}, reply: faqInternational},
	// generic price words last, they shadow everything above
	{name: "pricing", phrases: []string{"ucretli mi", "ucretli", "kac para", "fiyati ne", "ucret", "kaca"}, reply: faqPricing},
}

func matchFAQ(norm string, tokens []string) (string, bool) {
	for _, g := range faqGroups {
		if matchAny(norm, g.phrases) || matchAnyToken(tokens, g.words) {
			return g.reply, true
		}
	}
	return "", false
}

// Single-word page requests match whole tokens so "devamli istanbuldan yuk
// lazim" stays a search; the multi-word phrasings are substring matched.
var paginationWords = []string{"devam", "devami", "dahasi", "sonraki", "more"}
var paginationPhrases = []string{"daha fazla", "baska var mi"}

func isPaginationRequest(norm string, tokens []string) bool {
	return matchAnyToken(tokens, paginationWords) || matchAny(norm, paginationPhrases)
}

var allDestinationsPatterns = []string{
	"her yere", "heryere", "her yer", "fark etmez", "farketmez",
	"nereye olursa", "tum iller", "butun iller", "neresi olursa",
}

func matchAny(norm string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(norm, p) {
			return true
		}
	}
	return false
}

func matchAnyToken(tokens, words []string) bool {
	for _, tok := range tokens {
		for _, w := range words {
			if tok == w {
				return true
			}
		}
	}
	return false
}

func isProfane(norm string, tokens []string) bool {
	return matchAny(norm, profanitySubstrings) || matchAnyToken(tokens, profanityWords)
}

// isIntraCity detects "X ici" / "X icinde" phrasing.
func isIntraCity(tokens []string) bool {
	for _, tok := range tokens {
		if tok == "ici" || tok == "icinde" || tok == "icine" {
			return true
		}
	}
	return false
}
