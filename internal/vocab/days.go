// Package vocab holds the static localization tables used by the opening
// hours engine: day names and abbreviations per language, named day ranges
// ("Weekend"), named times ("Midnight"), range delimiters and closed-day
// tokens. Tables are plain data, loaded once at init and never mutated at
// runtime; treat them as read-only.
//
// Day tables map a localized spelling (title-cased, as produced by
// hours.SanitiseDay) to one of the seven canonical two-letter day codes
// ("Mo".."Su"). Several spellings may map to the same code.
package vocab

// DaysAT maps German (Austria) day names.
var DaysAT = map[string]string{
	"Mo":         "Mo",
	"Montag":     "Mo",
	"Di":         "Tu",
	"Dienstag":   "Tu",
	"Mi":         "We",
	"Mittwoch":   "We",
	"Do":         "Th",
	"Donnerstag": "Th",
	"Fr":         "Fr",
	"Freitag":    "Fr",
	"Sa":         "Sa",
	"Samstag":    "Sa",
	"So":         "Su",
	"Sonntag":    "Su",
}

// DaysEN maps English day names and common abbreviations.
var DaysEN = map[string]string{
	"Monday":     "Mo",
	"Mondays":    "Mo",
	"Mon":        "Mo",
	"Mo":         "Mo",
	"Tuesday":    "Tu",
	"Tuesdays":   "Tu",
	"Tues":       "Tu",
	"Tue":        "Tu",
	"Tu":         "Tu",
	"Wednesday":  "We",
	"Wednesdays": "We",
	"Wednes":     "We",
	"Weds":       "We",
	"Wed":        "We",
	"We":         "We",
	"Thursday":   "Th",
	"Thursdays":  "Th",
	"Thu":        "Th",
	"Thr":        "Th",
	"Thur":       "Th",
	"Thrs":       "Th",
	"Thurs":      "Th",
	"Th":         "Th",
	"Friday":     "Fr",
	"Fridays":    "Fr",
	"Fri":        "Fr",
	"Fr":         "Fr",
	"Saturday":   "Sa",
	"Saturdays":  "Sa",
	"Satur":      "Sa",
	"Sat":        "Sa",
	"Sa":         "Sa",
	"Sunday":     "Su",
	"Sundays":    "Su",
	"Sun":        "Su",
	"Su":         "Su",
}

// DaysDE maps German day names.
var DaysDE = map[string]string{
	"Montag":     "Mo",
	"Mo":         "Mo",
	"Dienstag":   "Tu",
	"Di":         "Tu",
	"Mittwoch":   "We",
	"Mi":         "We",
	"Donnerstag": "Th",
	"Do":         "Th",
	"Freitag":    "Fr",
	"Fr":         "Fr",
	"Samstag":    "Sa",
	"Sa":         "Sa",
	"Sonntag":    "Su",
	"So":         "Su",
}

// DaysBG maps Bulgarian day names.
var DaysBG = map[string]string{
	"Понеделник": "Mo",
	"Пн":         "Mo",
	"Пон":        "Mo",
	"По":         "Mo",
	"Вторник":    "Tu",
	"Вт":         "Tu",
	"Сряда":      "We",
	"Ср":         "We",
	"Четвъртък":  "Th",
	"Че":         "Th",
	"Чт":         "Th",
	"Четв":       "Th",
	"Петък":      "Fr",
	"Пет":        "Fr",
	"Пе":         "Fr",
	"Пт":         "Fr",
	"Събота":     "Sa",
	"Съб":        "Sa",
	"Съ":         "Sa",
	"Сб":         "Sa",
	"Неделя":     "Su",
	"Нед":        "Su",
	"Не":         "Su",
	"Нд":         "Su",
}

// DaysBR maps Brazilian Portuguese day names.
var DaysBR = map[string]string{
	"Segunda":  "Mo",
	"Seg":      "Mo",
	"Terça":    "Tu",
	"Ter":      "Tu",
	"Quarta":   "We",
	"Qua":      "We",
	"Quinta":   "Th",
	"Qui":      "Th",
	"Sexta":    "Fr",
	"Sex":      "Fr",
	"Sábado":   "Sa",
	"Sáb":      "Sa",
	"Domingos": "Su",
	"Dom":      "Su",
}

// DaysCH maps Swiss German day abbreviations.
var DaysCH = map[string]string{
	"Mo": "Mo",
	"Di": "Tu",
	"Mi": "We",
	"Do": "Th",
	"Fr": "Fr",
	"Sa": "Sa",
	"So": "Su",
}

// DaysCN maps Chinese day names (standard modern forms plus pinyin).
var DaysCN = map[string]string{
	"月曜日":        "Mo",
	"Yuèyàorì":   "Mo",
	"星期一":        "Mo",
	"Xīngqīyī":   "Mo",
	"週一":         "Mo",
	"Zhōuyī":     "Mo",
	"禮拜一":        "Mo",
	"Lǐbàiyī":    "Mo",
	"周一":         "Mo",
	"火曜日":        "Tu",
	"Huǒyàorì":   "Tu",
	"星期二":        "Tu",
	"Xīngqī'èr":  "Tu",
	"週二":         "Tu",
	"Zhōu'èr":    "Tu",
	"禮拜二":        "Tu",
	"Lǐbài'èr":   "Tu",
	"水曜日":        "We",
	"Shuǐyàorì":  "We",
	"星期三":        "We",
	"Xīngqīsān":  "We",
	"週三":         "We",
	"Zhōusān":    "We",
	"禮拜三":        "We",
	"Lǐbàisān":   "We",
	"木曜日":        "Th",
	"Mùyàorì":    "Th",
	"星期四":        "Th",
	"Xīngqīsì":   "Th",
	"週四":         "Th",
	"Zhōusì":     "Th",
	"禮拜四":        "Th",
	"Lǐbàisì":    "Th",
	"金曜日":        "Fr",
	"Jīnyàorì":   "Fr",
	"星期五":        "Fr",
	"Xīngqīwǔ":   "Fr",
	"週五":         "Fr",
	"Zhōuwǔ":     "Fr",
	"禮拜五":        "Fr",
	"Lǐbàiwǔ":    "Fr",
	"土曜日":        "Sa",
	"Tǔyàorì":    "Sa",
	"星期六":        "Sa",
	"Xīngqīliù":  "Sa",
	"週六":         "Sa",
	"Zhōuliù":    "Sa",
	"禮拜六":        "Sa",
	"Lǐbàiliù":   "Sa",
	"日曜日":        "Su",
	"Rìyàorì":    "Su",
	"星期日":        "Su",
	"Xīngqīrì":   "Su",
	"星期天":        "Su",
	"Xīngqītiān": "Su",
	"週日":         "Su",
	"Zhōurì":     "Su",
	"週天":         "Su",
	"Zhōutiān":   "Su",
	"禮拜天":        "Su",
	"Lǐbàitiān":  "Su",
	"禮拜日":        "Su",
	"Lǐbàirì":    "Su",
	"周日":         "Su",
}

// DaysCZ maps Czech day names.
var DaysCZ = map[string]string{
	"Pondělí": "Mo",
	"Po":      "Mo",
	"Úterý":   "Tu",
	"Út":      "Tu",
	"Středa":  "We",
	"St":      "We",
	"Čtvrtek": "Th",
	"Čt":      "Th",
	"Pátek":   "Fr",
	"Pá":      "Fr",
	"Sobota":  "Sa",
	"So":      "Sa",
	"Neděle":  "Su",
	"Ne":      "Su",
}

// DaysGR maps Greek day names.
var DaysGR = map[string]string{
	"Δε":        "Mo",
	"Δευτέρα":   "Mo",
	"Τρ":        "Tu",
	"Τρίτη":     "Tu",
	"Τε":        "We",
	"Τετάρτη":   "We",
	"Πέ":        "Th",
	"Πέμπτη":    "Th",
	"Πα":        "Fr",
	"Παρασκευή": "Fr",
	"Σά":        "Sa",
	"Σάββατο":   "Sa",
	"Κυ":        "Su",
	"Κυριακή":   "Su",
}

// DaysHR maps Croatian day names.
var DaysHR = map[string]string{
	"Ponedjeljak": "Mo",
	"Pon":         "Mo",
	"Utorak":      "Tu",
	"Srijeda":     "We",
	"Četvrtak":    "Th",
	"Čet":         "Th",
	"Petak":       "Fr",
	"Pet":         "Fr",
	"Subota":      "Sa",
	"Sub":         "Sa",
	"Nedjelja":    "Su",
	"Ned":         "Su",
}

// DaysHU maps Hungarian day names. "Sz" is ambiguous between Szerda and
// Szombat and is deliberately absent.
var DaysHU = map[string]string{
	"Hétfő":     "Mo",
	"Hé":        "Mo",
	"H":         "Mo",
	"Kedd":      "Tu",
	"Ke":        "Tu",
	"K":         "Tu",
	"Szerda":    "We",
	"Sze":       "We",
	"Csütörtök": "Th",
	"Csü":       "Th",
	"Cs":        "Th",
	"Péntek":    "Fr",
	"Pé":        "Fr",
	"P":         "Fr",
	"Szombat":   "Sa",
	"Szo":       "Sa",
	"Va":        "Sa",
	"V":         "Su",
	"Vasárnap":  "Su",
	"Vas":       "Su",
}

// DaysIL maps Hebrew day names.
var DaysIL = map[string]string{
	"יום שני":   "Mo",
	"יום שלישי": "Tu",
	"יום רביעי": "We",
	"יום חמישי": "Th",
	"יום שישי":  "Fr",
	"יום שבת":   "Sa",
	"יום ראשון": "Su",
}

// DaysKR maps Korean day names.
var DaysKR = map[string]string{
	"월요일": "Mo",
	"화요일": "Tu",
	"수요일": "We",
	"목요일": "Th",
	"금요일": "Fr",
	"토요일": "Sa",
	"일요일": "Su",
}

// DaysLT maps Lithuanian day names and Roman numeral abbreviations.
var DaysLT = map[string]string{
	"Pirmadienis":    "Mo",
	"Antradienis":    "Tu",
	"Trečiadienis":   "We",
	"Ketvirtadienis": "Th",
	"Penktadienis":   "Fr",
	"Šeštadienis":    "Sa",
	"Sekmadienis":    "Su",
	"I":              "Mo",
	"II":             "Tu",
	"III":            "We",
	"IV":             "Th",
	"V":              "Fr",
	"VI":             "Sa",
	"VII":            "Su",
	"Iv":             "Th",
	"Vi":             "Sa",
	"Vii":            "Su",
}

// DaysSE maps Swedish day names.
var DaysSE = map[string]string{
	"Måndag":  "Mo",
	"Mån":     "Mo",
	"Tisdag":  "Tu",
	"Tis":     "Tu",
	"Onsdag":  "We",
	"Ons":     "We",
	"Torsdag": "Th",
	"Tors":    "Th",
	"Fredag":  "Fr",
	"Fre":     "Fr",
	"Lördag":  "Sa",
	"Lör":     "Sa",
	"Söndag":  "Su",
	"Sön":     "Su",
}

// DaysSI maps Slovenian day names.
var DaysSI = map[string]string{
	"Po":         "Mo",
	"Pon":        "Mo",
	"Ponedeljek": "Mo",
	"To":         "Tu",
	"Tor":        "Tu",
	"Torek":      "Tu",
	"Sr":         "We",
	"Sre":        "We",
	"Sreda":      "We",
	"Če":         "Th",
	"Čet":        "Th",
	"Četrtek":    "Th",
	"Pe":         "Fr",
	"Pet":        "Fr",
	"Petek":      "Fr",
	"So":         "Sa",
	"Sob":        "Sa",
	"Sobota":     "Sa",
	"Ne":         "Su",
	"Ned":        "Su",
	"Nedelja":    "Su",
}

// DaysIT maps Italian day names.
var DaysIT = map[string]string{
	"Lunedì":     "Mo",
	"Lunedi":     "Mo",
	"Lun":        "Mo",
	"Lun.":       "Mo",
	"Lu":         "Mo",
	"Lu.":        "Mo",
	"Martedì":    "Tu",
	"Martedi":    "Tu",
	"Mar":        "Tu",
	"Mar.":       "Tu",
	"Ma":         "Tu",
	"Ma.":        "Tu",
	"Mercoledì":  "We",
	"Mercoledi":  "We",
	"Mer":        "We",
	"Mer.":       "We",
	"Me":         "We",
	"Me.":        "We",
	"Giovedì":    "Th",
	"Giovedi":    "Th",
	"Gio":        "Th",
	"Gio.":       "Th",
	"Gi":         "Th",
	"Gi.":        "Th",
	"Venerdì":    "Fr",
	"Venerdi":    "Fr",
	"Ven":        "Fr",
	"Ven.":       "Fr",
	"Ve":         "Fr",
	"Ve.":        "Fr",
	"Sabato":     "Sa",
	"Sab":        "Sa",
	"Sab.":       "Sa",
	"Sa":         "Sa",
	"Sa.":        "Sa",
	"Domenica":   "Su",
	"Domenicale": "Su",
	"Dom":        "Su",
	"Dom.":       "Su",
	"Do":         "Su",
	"Do.":        "Su",
}

// DaysFR maps French day names.
var DaysFR = map[string]string{
	"Lu":       "Mo",
	"Ma":       "Tu",
	"Me":       "We",
	"Je":       "Th",
	"Ve":       "Fr",
	"Sa":       "Sa",
	"Di":       "Su",
	"Lundi":    "Mo",
	"Mardi":    "Tu",
	"Mercredi": "We",
	"Jeudi":    "Th",
	"Vendredi": "Fr",
	"Samedi":   "Sa",
	"Dimanche": "Su",
}

// DaysNL maps Dutch day names.
var DaysNL = map[string]string{
	"Ma":        "Mo",
	"Di":        "Tu",
	"Wo":        "We",
	"Do":        "Th",
	"Vr":        "Fr",
	"Za":        "Sa",
	"Zo":        "Su",
	"Maandag":   "Mo",
	"Dinsdag":   "Tu",
	"Woensdag":  "We",
	"Donderdag": "Th",
	"Vrijdag":   "Fr",
	"Zaterdag":  "Sa",
	"Zondag":    "Su",
}

// DaysPL maps Polish day names.
var DaysPL = map[string]string{
	"Pn":           "Mo",
	"Po":           "Mo",
	"Pon":          "Mo",
	"Pn.":          "Mo",
	"Pon.":         "Mo",
	"Poniedziałek": "Mo",
	"Wt":           "Tu",
	"Wto":          "Tu",
	"Wto.":         "Tu",
	"Wtorek":       "Tu",
	"Śr":           "We",
	"Sr":           "We",
	"Sro":          "We",
	"Śro":          "We",
	"Śro.":         "We",
	"Środa":        "We",
	"Cz":           "Th",
	"Czw":          "Th",
	"Czw.":         "Th",
	"Czwartek":     "Th",
	"Pt":           "Fr",
	"Pt.":          "Fr",
	"Pi":           "Fr",
	"Pia":          "Fr",
	"Piątek":       "Fr",
	"Sb":           "Sa",
	"So":           "Sa",
	"Sob":          "Sa",
	"Sob.":         "Sa",
	"Sobota":       "Sa",
	"Nd":           "Su",
	"Ni":           "Su",
	"Nie":          "Su",
	"Ndz":          "Su",
	"Niedz":        "Su",
	"Niedzela":     "Su",
	"Niedziela":    "Su",
	"Niedziele":    "Su",
}

// DaysPT maps Portuguese day names. Two-letter forms that collide between
// days (Se, Qu) are deliberately absent.
var DaysPT = map[string]string{
	"Segunda": "Mo",
	"Te":      "Tu",
	"Terça":   "Tu",
	"Quarta":  "We",
	"Quinta":  "Th",
	"Sexta":   "Fr",
	"Sábado":  "Sa",
	"Sa":      "Sa",
	"Sá":      "Sa",
	"Sab":     "Sa",
	"Sáb":     "Sa",
	"Do":      "Su",
	"Dom":     "Su",
	"Domingo": "Su",
}

// DaysSK maps Slovak day names.
var DaysSK = map[string]string{
	"Po":       "Mo",
	"Pondelok": "Mo",
	"Ut":       "Tu",
	"Út":       "Tu",
	"Utorok":   "Tu",
	"Útorok":   "Tu",
	"St":       "We",
	"Streda":   "We",
	"Št":       "Th",
	"Štvrtok":  "Th",
	"Stvrtok":  "Th",
	"Pi":       "Fr",
	"Piatok":   "Fr",
	"So":       "Sa",
	"Sobota":   "Sa",
	"Ne":       "Su",
	"Nedeľa":   "Su",
	"Nedela":   "Su",
}

// DaysRU maps Russian day names.
var DaysRU = map[string]string{
	"Пн":          "Mo",
	"Понедельник": "Mo",
	"Вт":          "Tu",
	"Вторник":     "Tu",
	"Ср":          "We",
	"Среда":       "We",
	"Среду":       "We",
	"Чт":          "Th",
	"Четверг":     "Th",
	"Пт":          "Fr",
	"Пятница":     "Fr",
	"Пятницу":     "Fr",
	"Сб":          "Sa",
	"Суббота":     "Sa",
	"Субботу":     "Sa",
	"Вс":          "Su",
	"Воскресенье": "Su",
}

// DaysRS maps Serbian (Latin) day names.
var DaysRS = map[string]string{
	"Ponedeljak": "Mo",
	"Utorak":     "Tu",
	"Sreda":      "We",
	"Četvrtak":   "Th",
	"Petak":      "Fr",
	"Subota":     "Sa",
	"Nedelja":    "Su",
}

// DaysNO maps Norwegian (bokmål and nynorsk) day names.
var DaysNO = map[string]string{
	"Mandag":  "Mo",
	"Måndag":  "Mo",
	"Man":     "Mo",
	"Tirsdag": "Tu",
	"Tysdag":  "Tu",
	"Onsdag":  "We",
	"Torsdag": "Th",
	"Tors":    "Th",
	"Fredag":  "Fr",
	"Fre":     "Fr",
	"Lørdag":  "Sa",
	"Laurdag": "Sa",
	"Lør":     "Sa",
	"Søndag":  "Su",
	"Sundag":  "Su",
	"Søn":     "Su",
}

// DaysDK maps Danish day names.
var DaysDK = map[string]string{
	"Mandag":  "Mo",
	"Man":     "Mo",
	"Ma":      "Mo",
	"Tirsdag": "Tu",
	"Ti":      "Tu",
	"Onsdag":  "We",
	"On":      "We",
	"Torsdag": "Th",
	"Tors":    "Th",
	"To":      "Th",
	"Fredag":  "Fr",
	"Fre":     "Fr",
	"Fr":      "Fr",
	"Lørdag":  "Sa",
	"Lør":     "Sa",
	"Lø":      "Sa",
	"Søndag":  "Su",
	"Søn":     "Su",
	"So":      "Su",
}

// DaysFI maps Finnish day names.
var DaysFI = map[string]string{
	"Maanantai":   "Mo",
	"Ma":          "Mo",
	"Tiistai":     "Tu",
	"Ti":          "Tu",
	"Keskiviikko": "We",
	"Ke":          "We",
	"Torstai":     "Th",
	"To":          "Th",
	"Perjantai":   "Fr",
	"Pe":          "Fr",
	"Lauantai":    "Sa",
	"La":          "Sa",
	"Sunnuntai":   "Su",
	"Su":          "Su",
}

// DaysES maps Spanish day names.
var DaysES = map[string]string{
	"Lunes":     "Mo",
	"Lun":       "Mo",
	"Lu":        "Mo",
	"Martes":    "Tu",
	"Mar":       "Tu",
	"Ma":        "Tu",
	"Miercoles": "We",
	"Miércoles": "We",
	"Mie":       "We",
	"Mié":       "We",
	"Mi":        "We",
	"Jueves":    "Th",
	"Jue":       "Th",
	"Ju":        "Th",
	"Viernes":   "Fr",
	"Vie":       "Fr",
	"Vi":        "Fr",
	"Sabado":    "Sa",
	"Sábado":    "Sa",
	"Sábados":   "Sa",
	"Sab":       "Sa",
	"Sáb":       "Sa",
	"Sa":        "Sa",
	"Domingo":   "Su",
	"Domingos":  "Su",
	"Dom":       "Su",
	"Do":        "Su",
}

// DaysRO maps Romanian day names.
var DaysRO = map[string]string{
	"Luni":     "Mo",
	"Marți":    "Tu",
	"Miercuri": "We",
	"Joi":      "Th",
	"Vineri":   "Fr",
	"Sâmbătă":  "Sa",
	"Duminică": "Su",
}

// DaysSR maps Serbian day names in both Latin and Cyrillic scripts.
var DaysSR = map[string]string{
	"Pon":         "Mo",
	"Ponedeljak":  "Mo",
	"Ponediljak":  "Mo",
	"Ponedjeljak": "Mo",
	"Понедељак":   "Mo",
	"Понеделник":  "Mo",
	"Uto":         "Tu",
	"Utorak":      "Tu",
	"Уторак":      "Tu",
	"Sri":         "We",
	"Sreda":       "We",
	"Среда":       "We",
	"Cet":         "Th",
	"Čet":         "Th",
	"Četvrtak":    "Th",
	"Cetvrtak":    "Th",
	"Четвртак":    "Th",
	"Pet":         "Fr",
	"Petak":       "Fr",
	"Петак":       "Fr",
	"Sub":         "Sa",
	"Subota":      "Sa",
	"Субота":      "Sa",
	"Ned":         "Su",
	"Nedelja":     "Su",
	"Недеља":      "Su",
}

// DaysTR maps Turkish day names.
var DaysTR = map[string]string{
	"Pazartesi": "Mo",
	"Salı":      "Tu",
	"Çarşamba":  "We",
	"Perşembe":  "Th",
	"Cuma":      "Fr",
	"Cumartesi": "Sa",
	"Pazar":     "Su",
}

// DaysID maps Indonesian day names.
var DaysID = map[string]string{
	"Senin":  "Mo",
	"Selasa": "Tu",
	"Rabu":   "We",
	"Kamis":  "Th",
	"Jumat":  "Fr",
	"Sabtu":  "Sa",
	"Minggu": "Su",
	"Ahad":   "Su",
}

// DaysTH maps Thai day names.
var DaysTH = map[string]string{
	"วันจันทร์":   "Mo",
	"จันทร์":      "Mo",
	"วันอังคาร":   "Tu",
	"วันพุธ":      "We",
	"วันพฤหัสบดี": "Th",
	"วันศุกร์":    "Fr",
	"วันเสาร์":    "Sa",
	"เสาร์":       "Sa",
	"วันอาทิตย์":  "Su",
}

// DaysByFrequency lists day tables ordered by languages most frequently used
// for web content (share of websites, January 2024). Used for best-effort
// matching of untagged multilingual input: the first table that resolves a
// token wins.
var DaysByFrequency = []map[string]string{
	DaysEN,
	DaysES,
	DaysDE,
	DaysRU,
	// Japanese missing
	DaysFR,
	DaysPT,
	DaysIT,
	DaysTR,
	DaysDK,
	DaysPL,
	// Persian missing
	DaysCZ,
	// And everything else
	DaysAT,
	DaysBG,
	DaysCH,
	DaysFI,
	DaysGR,
	DaysHR,
	DaysHU,
	DaysIL,
	DaysNL,
	DaysNO,
	DaysRO,
	DaysRS,
	DaysSE,
	DaysSI,
	DaysSK,
	DaysSR,
}
