// Package cities holds the fixed city directory used to resolve free-text
// city names into IATA codes and back. The table intentionally covers only
// the destinations the bot is advertised for; anything else is reported to
// the user as an unknown city.
package cities

import "strings"

// cityToIATA maps lowercased city names (Russian and English, plus common
// short forms) to IATA city codes.
var cityToIATA = map[string]string{
	// Россия
	"москва":          "MOW",
	"мск":             "MOW",
	"moscow":          "MOW",
	"санкт-петербург": "LED",
	"санкт петербург": "LED",
	"спб":             "LED",
	"питер":           "LED",
	"петербург":       "LED",
	"saint petersburg": "LED",
	"st petersburg":   "LED",
	"сочи":            "AER",
	"адлер":           "AER",
	"sochi":           "AER",
	"екатеринбург":    "SVX",
	"екб":             "SVX",
	"yekaterinburg":   "SVX",
	"новосибирск":     "OVB",
	"нск":             "OVB",
	"novosibirsk":     "OVB",
	"казань":          "KZN",
	"kazan":           "KZN",
	"краснодар":       "KRR",
	"krasnodar":       "KRR",
	"уфа":             "UFA",
	"ufa":             "UFA",
	"самара":          "KUF",
	"samara":          "KUF",
	"ростов":          "ROV",
	"ростов-на-дону":  "ROV",
	"rostov":          "ROV",
	"калининград":     "KGD",
	"kaliningrad":     "KGD",
	"владивосток":     "VVO",
	"vladivostok":     "VVO",
	"иркутск":         "IKT",
	"irkutsk":         "IKT",
	"минеральные воды": "MRV",
	"красноярск":      "KJA",
	"krasnoyarsk":     "KJA",
	"челябинск":       "CEK",
	"пермь":           "PEE",
	"волгоград":       "VOG",
	"тюмень":          "TJM",
	"омск":            "OMS",
	"махачкала":       "MCX",

	// Ближнее зарубежье
	"минск":    "MSQ",
	"minsk":    "MSQ",
	"ереван":   "EVN",
	"yerevan":  "EVN",
	"тбилиси":  "TBS",
	"tbilisi":  "TBS",
	"баку":     "GYD",
	"baku":     "GYD",
	"алматы":   "ALA",
	"almaty":   "ALA",
	"астана":   "NQZ",
	"ташкент":  "TAS",
	"tashkent": "TAS",
	"бишкек":   "FRU",

	// Популярные направления
	"стамбул":   "IST",
	"istanbul":  "IST",
	"анталия":   "AYT",
	"анталья":   "AYT",
	"antalya":   "AYT",
	"дубай":     "DXB",
	"dubai":     "DXB",
	"абу-даби":  "AUH",
	"abu dhabi": "AUH",
	"доха":      "DOH",
	"doha":      "DOH",
	"бангкок":   "BKK",
	"bangkok":   "BKK",
	"пхукет":    "HKT",
	"phuket":    "HKT",
	"паттайя":   "UTP",
	"бали":      "DPS",
	"bali":      "DPS",
	"денпасар":  "DPS",
	"мальдивы":  "MLE",
	"maldives":  "MLE",
	"мале":      "MLE",
	"коломбо":   "CMB",
	"гоа":       "GOI",
	"goa":       "GOI",
	"дели":      "DEL",
	"delhi":     "DEL",
	"пекин":     "BJS",
	"beijing":   "BJS",
	"шанхай":    "SHA",
	"shanghai":  "SHA",
	"сеул":      "SEL",
	"seoul":     "SEL",
	"токио":     "TYO",
	"tokyo":     "TYO",
	"хошимин":   "SGN",
	"нячанг":    "CXR",
	"дананг":    "DAD",
	"каир":      "CAI",
	"cairo":     "CAI",
	"хургада":   "HRG",
	"hurghada":  "HRG",
	"шарм-эль-шейх": "SSH",
	"шарм":      "SSH",
	"тель-авив": "TLV",
	"tel aviv":  "TLV",
	"белград":   "BEG",
	"belgrade":  "BEG",
	"будапешт":  "BUD",
	"budapest":  "BUD",
	"прага":     "PRG",
	"prague":    "PRG",
	"берлин":    "BER",
	"berlin":    "BER",
	"париж":     "PAR",
	"paris":     "PAR",
	"лондон":    "LON",
	"london":    "LON",
	"рим":       "ROM",
	"rome":      "ROM",
	"милан":     "MIL",
	"milan":     "MIL",
	"барселона": "BCN",
	"barcelona": "BCN",
	"мадрид":    "MAD",
	"madrid":    "MAD",
	"лиссабон":  "LIS",
	"lisbon":    "LIS",
	"афины":     "ATH",
	"athens":    "ATH",
	"ларнака":   "LCA",
	"larnaca":   "LCA",
	"нью-йорк":  "NYC",
	"new york":  "NYC",
}

// iataToCity is the reverse table used for display names.
var iataToCity = map[string]string{
	"MOW": "Москва",
	"LED": "Санкт-Петербург",
	"AER": "Сочи",
	"SVX": "Екатеринбург",
	"OVB": "Новосибирск",
	"KZN": "Казань",
	"KRR": "Краснодар",
	"UFA": "Уфа",
	"KUF": "Самара",
	"ROV": "Ростов-на-Дону",
	"KGD": "Калининград",
	"VVO": "Владивосток",
	"IKT": "Иркутск",
	"MRV": "Минеральные Воды",
	"KJA": "Красноярск",
	"CEK": "Челябинск",
	"PEE": "Пермь",
	"VOG": "Волгоград",
	"TJM": "Тюмень",
	"OMS": "Омск",
	"MCX": "Махачкала",
	"MSQ": "Минск",
	"EVN": "Ереван",
	"TBS": "Тбилиси",
	"GYD": "Баку",
	"ALA": "Алматы",
	"NQZ": "Астана",
	"TAS": "Ташкент",
	"FRU": "Бишкек",
	"IST": "Стамбул",
	"AYT": "Анталия",
	"DXB": "Дубай",
	"AUH": "Абу-Даби",
	"DOH": "Доха",
	"BKK": "Бангкок",
	"HKT": "Пхукет",
	"UTP": "Паттайя",
	"DPS": "Бали",
	"MLE": "Мальдивы",
	"CMB": "Коломбо",
	"GOI": "Гоа",
	"DEL": "Дели",
	"BJS": "Пекин",
	"SHA": "Шанхай",
	"SEL": "Сеул",
	"TYO": "Токио",
	"SGN": "Хошимин",
	"CXR": "Нячанг",
	"DAD": "Дананг",
	"CAI": "Каир",
	"HRG": "Хургада",
	"SSH": "Шарм-эль-Шейх",
	"TLV": "Тель-Авив",
	"BEG": "Белград",
	"BUD": "Будапешт",
	"PRG": "Прага",
	"BER": "Берлин",
	"PAR": "Париж",
	"LON": "Лондон",
	"ROM": "Рим",
	"MIL": "Милан",
	"BCN": "Барселона",
	"MAD": "Мадрид",
	"LIS": "Лиссабон",
	"ATH": "Афины",
	"LCA": "Ларнака",
	"NYC": "Нью-Йорк",
}

// GlobalHubs is the fixed hub set the "везде" origin fans out over.
// Only the first constants.HubLimit entries are queried.
var GlobalHubs = []string{"MOW", "LED", "AER", "SVX", "OVB", "KZN", "KRR"}

// airportNames maps airport IATA codes to short Russian display names.
var airportNames = map[string]string{
	"SVO": "Шереметьево", "DME": "Домодедово", "VKO": "Внуково", "ZIA": "Жуковский",
	"LED": "Пулково", "AER": "Адлер", "KZN": "Казань", "OVB": "Толмачёво",
	"SVX": "Кольцово", "ROV": "Платов", "KUF": "Курумоч", "UFA": "Уфа",
	"CEK": "Челябинск", "TJM": "Рощино", "KJA": "Красноярск", "OMS": "Омск",
	"KRR": "Пашковский", "MCX": "Махачкала", "VOG": "Гумрак",
}

// airlineNames maps airline IATA codes to display names.
var airlineNames = map[string]string{
	"SU": "Аэрофлот", "S7": "S7 Airlines", "DP": "Победа", "U6": "Уральские авиалинии",
	"FV": "Россия", "UT": "ЮТэйр", "N4": "Нордвинд", "WZ": "Red Wings",
	"TK": "Turkish Airlines", "EK": "Emirates", "FZ": "flydubai", "QR": "Qatar Airways",
}

// TransferAirports lists tourist airports where the bot offers a transfer
// booking button.
var TransferAirports = map[string]string{
	"BKK": "Бангкок", "HKT": "Пхукет", "CNX": "Чиангмай", "USM": "Самуи",
	"DAD": "Дананг", "SGN": "Хошимин", "CXR": "Нячанг",
	"DPS": "Бали", "MLE": "Мальдивы", "DXB": "Дубай", "AUH": "Абу-Даби",
	"DOH": "Доха", "AYT": "Анталия", "ADB": "Измир", "BJV": "Бодрум", "DLM": "Даламан",
	"PMI": "Майорка", "IBZ": "Ибица", "AGP": "Малага", "RHO": "Родос", "HER": "Крит",
}

// Resolve looks up a user-entered city phrase, case-insensitively.
func Resolve(name string) (string, bool) {
	code, ok := cityToIATA[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// DisplayName returns a human-readable city name for an IATA code, falling
// back to the code itself.
func DisplayName(iata string) string {
	if name, ok := iataToCity[iata]; ok {
		return name
	}
	return iata
}

// AirportName returns a short airport name, falling back to the code.
func AirportName(iata string) string {
	if name, ok := airportNames[iata]; ok {
		return name
	}
	return iata
}

// AirlineName returns an airline display name, falling back to the code.
func AirlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return code
}
