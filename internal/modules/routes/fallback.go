// README: Static distance table used when live and cached data are unavailable.
package routes

type cityPair struct {
	origin, destination string
}

// fallbackDistances holds curated road distances in km. Lookups are
// symmetric; only one direction is stored per pair.
var fallbackDistances = map[cityPair]float64{
	// From Islamabad
	{"islamabad", "rawalpindi"}: 15,
	{"islamabad", "lahore"}:     375,
	{"islamabad", "karachi"}:    1410,
	{"islamabad", "peshawar"}:   165,
	{"islamabad", "quetta"}:     800,
	{"islamabad", "multan"}:     550,
	{"islamabad", "faisalabad"}: 390,
	{"islamabad", "sialkot"}:    260,
	{"islamabad", "gujranwala"}: 300,
	{"islamabad", "murree"}:      65,
	{"islamabad", "nathia gali"}: 85,
	{"islamabad", "ayubia"}:      80,
	{"islamabad", "abbottabad"}:  120,
	{"islamabad", "naran"}:       275,
	{"islamabad", "kaghan"}:      250,
	{"islamabad", "shogran"}:     230,
	{"islamabad", "swat"}:        270,
	{"islamabad", "kalam"}:       310,
	{"islamabad", "malam jabba"}: 300,
	{"islamabad", "mingora"}:     270,
	{"islamabad", "gilgit"}:      600,
	{"islamabad", "hunza"}:       670,
	{"islamabad", "skardu"}:      620,
	{"islamabad", "chitral"}:     470,
	{"islamabad", "muzaffarabad"}: 140,
	{"islamabad", "neelum"}:       200,
	{"islamabad", "rawalakot"}:    180,

	// From Rawalpindi
	{"rawalpindi", "lahore"}:       380,
	{"rawalpindi", "peshawar"}:     170,
	{"rawalpindi", "murree"}:       60,
	{"rawalpindi", "nathia gali"}:  80,
	{"rawalpindi", "abbottabad"}:   115,
	{"rawalpindi", "naran"}:        270,
	{"rawalpindi", "kaghan"}:       245,
	{"rawalpindi", "swat"}:         275,
	{"rawalpindi", "gilgit"}:       605,
	{"rawalpindi", "hunza"}:        675,
	{"rawalpindi", "skardu"}:       625,
	{"rawalpindi", "muzaffarabad"}: 135,
	{"rawalpindi", "chitral"}:      475,
	{"rawalpindi", "kalam"}:        315,

	// From Lahore
	{"lahore", "karachi"}:      1220,
	{"lahore", "peshawar"}:     540,
	{"lahore", "quetta"}:       870,
	{"lahore", "multan"}:       340,
	{"lahore", "faisalabad"}:   185,
	{"lahore", "sialkot"}:      130,
	{"lahore", "gujranwala"}:   70,
	{"lahore", "murree"}:       440,
	{"lahore", "nathia gali"}:  460,
	{"lahore", "abbottabad"}:   495,
	{"lahore", "naran"}:        550,
	{"lahore", "kaghan"}:       525,
	{"lahore", "swat"}:         620,
	{"lahore", "kalam"}:        680,
	{"lahore", "gilgit"}:       975,
	{"lahore", "hunza"}:        1045,
	{"lahore", "skardu"}:       995,
	{"lahore", "muzaffarabad"}: 515,
	{"lahore", "chitral"}:      845,

	// From Peshawar
	{"peshawar", "karachi"}:      1575,
	{"peshawar", "quetta"}:       750,
	{"peshawar", "swat"}:         175,
	{"peshawar", "mingora"}:      175,
	{"peshawar", "kalam"}:        250,
	{"peshawar", "malam jabba"}:  200,
	{"peshawar", "bahrain"}:      220,
	{"peshawar", "chitral"}:      340,
	{"peshawar", "kalash"}:       380,
	{"peshawar", "abbottabad"}:   150,
	{"peshawar", "naran"}:        310,
	{"peshawar", "kaghan"}:       285,
	{"peshawar", "gilgit"}:       560,
	{"peshawar", "hunza"}:        630,
	{"peshawar", "murree"}:       230,
	{"peshawar", "skardu"}:       785,
	{"peshawar", "muzaffarabad"}: 305,

	// From Karachi
	{"karachi", "quetta"}:       690,
	{"karachi", "multan"}:       900,
	{"karachi", "hyderabad"}:    165,
	{"karachi", "sukkur"}:       470,
	{"karachi", "faisalabad"}:   1100,
	{"karachi", "murree"}:       1475,
	{"karachi", "swat"}:         1680,
	{"karachi", "hunza"}:        2080,
	{"karachi", "skardu"}:       2030,
	{"karachi", "gilgit"}:       2010,
	{"karachi", "naran"}:        1560,
	{"karachi", "chitral"}:      1885,
	{"karachi", "kalam"}:        1720,
	{"karachi", "muzaffarabad"}: 1550,

	// From Quetta
	{"quetta", "multan"}:       530,
	{"quetta", "ziarat"}:       130,
	{"quetta", "murree"}:       865,
	{"quetta", "swat"}:         920,
	{"quetta", "gilgit"}:       1400,
	{"quetta", "hunza"}:        1470,
	{"quetta", "naran"}:        1075,
	{"quetta", "skardu"}:       1420,
	{"quetta", "chitral"}:      1090,
	{"quetta", "kalam"}:        970,
	{"quetta", "muzaffarabad"}: 940,

	// From Multan
	{"multan", "peshawar"}:     715,
	{"multan", "faisalabad"}:   210,
	{"multan", "bahawalpur"}:   100,
	{"multan", "murree"}:       615,
	{"multan", "swat"}:         820,
	{"multan", "naran"}:        700,
	{"multan", "gilgit"}:       1150,
	{"multan", "hunza"}:        1220,
	{"multan", "skardu"}:       1170,
	{"multan", "chitral"}:      1020,
	{"multan", "kalam"}:        870,
	{"multan", "muzaffarabad"}: 690,

	// From Faisalabad
	{"faisalabad", "peshawar"}:     555,
	{"faisalabad", "murree"}:       455,
	{"faisalabad", "naran"}:        530,
	{"faisalabad", "swat"}:         635,
	{"faisalabad", "gilgit"}:       990,
	{"faisalabad", "hunza"}:        1060,
	{"faisalabad", "skardu"}:       1010,
	{"faisalabad", "chitral"}:      860,
	{"faisalabad", "kalam"}:        710,
	{"faisalabad", "muzaffarabad"}: 530,

	// From Sialkot
	{"sialkot", "murree"}:       325,
	{"sialkot", "naran"}:        415,
	{"sialkot", "swat"}:         520,
	{"sialkot", "hunza"}:        930,
	{"sialkot", "gilgit"}:       860,
	{"sialkot", "skardu"}:       880,
	{"sialkot", "chitral"}:      730,
	{"sialkot", "kalam"}:        580,
	{"sialkot", "muzaffarabad"}: 400,

	// Gilgit-Baltistan internal links
	{"gilgit", "hunza"}:        100,
	{"gilgit", "skardu"}:       170,
	{"gilgit", "chitral"}:      340,
	{"gilgit", "khunjerab"}:    220,
	{"hunza", "khunjerab"}:     120,
	{"hunza", "passu"}:         45,
	{"hunza", "attabad lake"}:  25,
	{"hunza", "karimabad"}:     5,
	{"skardu", "deosai"}:       80,
	{"skardu", "shigar"}:       35,

	// Kaghan Valley
	{"naran", "kaghan"}:        25,
	{"naran", "babusar"}:       70,
	{"naran", "shogran"}:       35,
	{"kaghan", "shogran"}:      20,
	{"abbottabad", "naran"}:    160,
	{"abbottabad", "kaghan"}:   140,
	{"abbottabad", "shogran"}:  120,

	// Swat Valley
	{"swat", "kalam"}:           95,
	{"swat", "malam jabba"}:     40,
	{"swat", "bahrain"}:         50,
	{"swat", "mingora"}:         5,
	{"mingora", "kalam"}:        100,
	{"mingora", "malam jabba"}:  45,
	{"kalam", "mahodand"}:       35,

	// Murree & Galiyat
	{"murree", "nathia gali"}:      25,
	{"murree", "ayubia"}:           30,
	{"abbottabad", "murree"}:       55,
	{"abbottabad", "nathia gali"}:  35,

	// Chitral & Kalash
	{"chitral", "kalash"}:   40,
	{"chitral", "bumburet"}: 40,

	// Azad Kashmir
	{"muzaffarabad", "neelum"}:    90,
	{"muzaffarabad", "rawalakot"}: 120,
	{"muzaffarabad", "bagh"}:      50,
	{"rawalakot", "bagh"}:         70,
	{"neelum", "kel"}:             50,
	{"neelum", "sharda"}:          80,
}

// lookupFallback returns the static distance for a pair, trying both
// directions.
func lookupFallback(origin, destination string) (float64, bool) {
	if d, ok := fallbackDistances[cityPair{origin, destination}]; ok {
		return d, true
	}
	if d, ok := fallbackDistances[cityPair{destination, origin}]; ok {
		return d, true
	}
	return 0, false
}
