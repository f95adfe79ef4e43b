// README: Province, district and abbreviation dictionaries plus the logistics-term exclusion set.
package nlp

// All dictionary keys are ASCII-normalized lowercase (see Normalize).
// Values are the canonical display names used in replies and search filters.

// excludedTerms are truck/body/cargo jargon that collide with place names.
// "arac" is a real district of Kastamonu but in freight messages it always
// means "vehicle", so it must never resolve as a location. "van" is NOT here:
// as a province it vastly outweighs the minivan reading.
var excludedTerms = map[string]struct{}{
	"arac":       {},
	"tir":        {},
	"kamyon":     {},
	"kamyonet":   {},
	"dorse":      {},
	"acik":       {},
	"kapali":     {},
	"tenteli":    {},
	"damperli":   {},
	"frigorifik": {},
	"frigo":      {},
	"lowbed":     {},
	"yuk":        {},
	"nakliye":    {},
	"nakliyat":   {},
	"parsiyel":   {},
	"palet":      {},
	"paletli":    {},
	"komple":     {},
	"ton":        {},
	"tonluk":     {},
}

// abbreviations maps common short city codes drivers type to provinces.
var abbreviations = map[string]string{
	"ist": "Istanbul",
	"ank": "Ankara",
	"izm": "Izmir",
	"ant": "Antalya",
	"adn": "Adana",
	"brs": "Bursa",
	"kny": "Konya",
	"mrs": "Mersin",
	"gzt": "Gaziantep",
	"esk": "Eskisehir",
	"smn": "Samsun",
	"tkd": "Tekirdag",
}

// provinces maps every normalized province name (and common aliases) to its
// canonical display name.
var provinces = map[string]string{
	"adana": "Adana", "adiyaman": "Adiyaman", "afyonkarahisar": "Afyonkarahisar",
	"afyon": "Afyonkarahisar", "agri": "Agri", "amasya": "Amasya",
	"ankara": "Ankara", "antalya": "Antalya", "artvin": "Artvin",
	"aydin": "Aydin", "balikesir": "Balikesir", "bilecik": "Bilecik",
	"bingol": "Bingol", "bitlis": "Bitlis", "bolu": "Bolu",
	"burdur": "Burdur", "bursa": "Bursa", "canakkale": "Canakkale",
	"cankiri": "Cankiri", "corum": "Corum", "denizli": "Denizli",
	"diyarbakir": "Diyarbakir", "edirne": "Edirne", "elazig": "Elazig",
	"erzincan": "Erzincan", "erzurum": "Erzurum", "eskisehir": "Eskisehir",
	"gaziantep": "Gaziantep", "antep": "Gaziantep", "giresun": "Giresun",
	"gumushane": "Gumushane", "hakkari": "Hakkari", "hatay": "Hatay",
	"antakya": "Hatay", "isparta": "Isparta", "mersin": "Mersin",
	"icel": "Mersin", "istanbul": "Istanbul", "izmir": "Izmir",
	"kars": "Kars", "kastamonu": "Kastamonu", "kayseri": "Kayseri",
	"kirklareli": "Kirklareli", "kirsehir": "Kirsehir", "kocaeli": "Kocaeli",
	"izmit": "Kocaeli", "konya": "Konya", "kutahya": "Kutahya",
	"malatya": "Malatya", "manisa": "Manisa", "kahramanmaras": "Kahramanmaras",
	"maras": "Kahramanmaras", "mardin": "Mardin", "mugla": "Mugla",
	"mus": "Mus", "nevsehir": "Nevsehir", "nigde": "Nigde",
	"ordu": "Ordu", "rize": "Rize", "sakarya": "Sakarya",
	"adapazari": "Sakarya", "samsun": "Samsun", "siirt": "Siirt",
	"sinop": "Sinop", "sivas": "Sivas", "tekirdag": "Tekirdag",
	"tokat": "Tokat", "trabzon": "Trabzon", "tunceli": "Tunceli",
	"sanliurfa": "Sanliurfa", "urfa": "Sanliurfa", "usak": "Usak",
	"van": "Van", "yozgat": "Yozgat", "zonguldak": "Zonguldak",
	"aksaray": "Aksaray", "bayburt": "Bayburt", "karaman": "Karaman",
	"kirikkale": "Kirikkale", "batman": "Batman", "sirnak": "Sirnak",
	"bartin": "Bartin", "ardahan": "Ardahan", "igdir": "Igdir",
	"yalova": "Yalova", "karabuk": "Karabuk", "kilis": "Kilis",
	"osmaniye": "Osmaniye", "duzce": "Duzce",
}

type districtEntry struct {
	District string
	Province string
}

// districts maps well-known freight districts to their parent province.
// Deliberately a subset: only districts that actually show up in load
// messages. "arac" (Kastamonu) is listed so the exclusion set, not a missing
// entry, is what rejects it.
var districts = map[string]districtEntry{
	"tuzla":      {"Tuzla", "Istanbul"},
	"pendik":     {"Pendik", "Istanbul"},
	"hadimkoy":   {"Hadimkoy", "Istanbul"},
	"gebze":      {"Gebze", "Kocaeli"},
	"corlu":      {"Corlu", "Tekirdag"},
	"cerkezkoy":  {"Cerkezkoy", "Tekirdag"},
	"kapakli":    {"Kapakli", "Tekirdag"},
	"iskenderun": {"Iskenderun", "Hatay"},
	"dortyol":    {"Dortyol", "Hatay"},
	"payas":      {"Payas", "Hatay"},
	"aliaga":     {"Aliaga", "Izmir"},
	"torbali":    {"Torbali", "Izmir"},
	"kemalpasa":  {"Kemalpasa", "Izmir"},
	"kocasinan":  {"Kocasinan", "Kayseri"},
	"melikgazi":  {"Melikgazi", "Kayseri"},
	"konyaalti":  {"Konyaalti", "Antalya"},
	"alanya":     {"Alanya", "Antalya"},
	"manavgat":   {"Manavgat", "Antalya"},
	"inegol":     {"Inegol", "Bursa"},
	"gemlik":     {"Gemlik", "Bursa"},
	"bandirma":   {"Bandirma", "Balikesir"},
	"edremit":    {"Edremit", "Balikesir"},
	"bodrum":     {"Bodrum", "Mugla"},
	"fethiye":    {"Fethiye", "Mugla"},
	"milas":      {"Milas", "Mugla"},
	"nazilli":    {"Nazilli", "Aydin"},
	"soke":       {"Soke", "Aydin"},
	"salihli":    {"Salihli", "Manisa"},
	"akhisar":    {"Akhisar", "Manisa"},
	"turgutlu":   {"Turgutlu", "Manisa"},
	"tarsus":     {"Tarsus", "Mersin"},
	"erdemli":    {"Erdemli", "Mersin"},
	"nizip":      {"Nizip", "Gaziantep"},
	"siverek":    {"Siverek", "Sanliurfa"},
	"eregli":     {"Eregli", "Konya"},
	"akcaabat":   {"Akcaabat", "Trabzon"},
	"unye":       {"Unye", "Ordu"},
	"fatsa":      {"Fatsa", "Ordu"},
	"merzifon":   {"Merzifon", "Amasya"},
	"ercis":      {"Ercis", "Van"},
	"arac":       {"Arac", "Kastamonu"},
	"tosya":      {"Tosya", "Kastamonu"},
	"polatli":    {"Polatli", "Ankara"},
	"sincan":     {"Sincan", "Ankara"},
	"kahta":      {"Kahta", "Adiyaman"},
	"elbistan":   {"Elbistan", "Kahramanmaras"},
	"afsin":      {"Afsin", "Kahramanmaras"},
	"kiziltepe":  {"Kiziltepe", "Mardin"},
	"nusaybin":   {"Nusaybin", "Mardin"},
	"cizre":      {"Cizre", "Sirnak"},
	"silopi":     {"Silopi", "Sirnak"},
	"luleburgaz": {"Luleburgaz", "Kirklareli"},
	"cayirova":   {"Cayirova", "Kocaeli"},
	"dilovasi":   {"Dilovasi", "Kocaeli"},
}
