package vocab

// Delimiter lists are the tokens accepted between the two ends of a day or
// time range ("Mon-Fri", "9am to 5pm"). Dash variants cover the unicode
// dashes seen in scraped source text.

// DelimitersEN lists English range delimiters.
var DelimitersEN = []string{
	"-",
	"–",
	"—",
	"―",
	"‒",
	"to",
	"and",
	"from",
	"thru",
	"through",
	"until",
}

// DelimitersIT lists Italian range delimiters.
var DelimitersIT = []string{
	",",
	"-",
	"–",
	"—",
	"―",
	"‒",
	"/",
	"e",
	"dal",
	"al",
	"il",
	"fino al",
	"alle",
	"alla",
	"fino alle",
	"dalle",
	"dalle ore",
	"da",
	"a",
	"dall'",
	"all'",
	"aperti",
	"aperto",
	"apre",
	"apriamo",
}

// DelimitersDE lists German range delimiters.
var DelimitersDE = []string{"-", "–", "—", "―", "‒", "bis"}

// DelimitersES lists Spanish range delimiters.
var DelimitersES = []string{
	"-",
	"a",
	"y",
	"de",
}

// DelimitersFR lists French range delimiters.
var DelimitersFR = []string{"-", "–", "—", "―", "‒", "au", "à", "de"}

// DelimitersPT lists Portuguese range delimiters.
var DelimitersPT = []string{
	"-",
	"–",
	"—",
	"―",
	"‒",
	"a",
	"das",
	"às",
	"de",
}

// DelimitersPL lists Polish range delimiters.
var DelimitersPL = []string{
	"-",
	"–",
	"—",
	"―",
	"‒",
	"od",
	"do",
}

// DelimitersRU lists Russian range delimiters.
var DelimitersRU = append(append([]string{}, DelimitersEN...), "с", "по", "до", "в", "во")

// DelimitersKR lists Korean range delimiters.
var DelimitersKR = append(append([]string{}, DelimitersEN...), "~")
