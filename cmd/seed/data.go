// README: Seed rows for Pakistan intercity routes, transport options and sample alerts.
package main

type routeRow struct {
	origin      string
	destination string
	distanceKM  float64
	timeHours   float64
	safetyScore int
	riskLevel   string
}

type transportRow struct {
	mode             string
	origin           string
	destination      string
	fare             float64
	fareMin          float64
	fareMax          float64
	timeHours        float64
	availability     string
	safetyNotes      string
	overcrowdingRisk string
	nightSafe        bool
}

type alertRow struct {
	alertType   string
	region      string
	severity    string
	description string
}

var seedRoutes = []routeRow{
	// Major intercity routes
	{"Islamabad", "Lahore", 375, 4.5, 85, "recommended"},
	{"Islamabad", "Karachi", 1410, 16, 70, "caution"},
	{"Islamabad", "Peshawar", 165, 2, 75, "recommended"},
	{"Islamabad", "Murree", 65, 1.5, 80, "recommended"},
	{"Islamabad", "Swat", 270, 5, 70, "caution"},
	{"Islamabad", "Gilgit", 600, 14, 60, "caution"},
	{"Islamabad", "Hunza", 670, 15, 65, "caution"},
	{"Islamabad", "Skardu", 620, 18, 55, "caution"},
	{"Islamabad", "Multan", 540, 6.5, 80, "recommended"},
	{"Islamabad", "Faisalabad", 390, 4.5, 82, "recommended"},
	{"Islamabad", "Rawalpindi", 15, 0.5, 90, "recommended"},
	{"Islamabad", "Quetta", 820, 12, 50, "caution"},
	{"Islamabad", "Chitral", 450, 11, 55, "caution"},

	// Lahore routes
	{"Lahore", "Karachi", 1220, 14, 75, "recommended"},
	{"Lahore", "Multan", 340, 4, 85, "recommended"},
	{"Lahore", "Faisalabad", 185, 2.5, 88, "recommended"},
	{"Lahore", "Peshawar", 490, 6, 75, "recommended"},
	{"Lahore", "Murree", 330, 5, 80, "recommended"},
	{"Lahore", "Sialkot", 130, 2, 85, "recommended"},

	// Karachi routes
	{"Karachi", "Hyderabad", 165, 2.5, 80, "recommended"},
	{"Karachi", "Quetta", 690, 10, 55, "caution"},
	{"Karachi", "Multan", 880, 11, 70, "caution"},
	{"Karachi", "Sukkur", 470, 6, 75, "recommended"},

	// Peshawar routes
	{"Peshawar", "Swat", 175, 3.5, 65, "caution"},
	{"Peshawar", "Chitral", 350, 10, 50, "caution"},
	{"Peshawar", "Abbottabad", 115, 2.5, 80, "recommended"},

	// Northern areas
	{"Gilgit", "Hunza", 100, 2, 75, "recommended"},
	{"Gilgit", "Skardu", 170, 5, 60, "caution"},
	{"Hunza", "Khunjerab", 120, 3, 50, "caution"},
	{"Swat", "Kalam", 80, 2.5, 70, "caution"},

	// Southern Punjab
	{"Multan", "Bahawalpur", 100, 1.5, 85, "recommended"},
	{"Multan", "Dera Ghazi Khan", 200, 3, 70, "caution"},

	// Reverse directions for key pairs
	{"Lahore", "Islamabad", 375, 4.5, 85, "recommended"},
	{"Karachi", "Lahore", 1220, 14, 75, "recommended"},
	{"Peshawar", "Islamabad", 165, 2, 75, "recommended"},
	{"Murree", "Islamabad", 65, 1.5, 80, "recommended"},
	{"Rawalpindi", "Islamabad", 15, 0.5, 90, "recommended"},
	{"Hunza", "Gilgit", 100, 2, 75, "recommended"},
}

var seedTransport = []transportRow{
	// Bus services
	{"bus", "Islamabad", "Lahore", 1500, 1200, 2500, 5, "always", "AC buses recommended, Daewoo/Faisal Movers safest", "low", true},
	{"bus", "Islamabad", "Karachi", 4500, 3500, 6000, 18, "always", "Take daytime bus for safety", "medium", false},
	{"bus", "Lahore", "Karachi", 4000, 3000, 5500, 16, "always", "Multiple stops, prefer direct buses", "medium", false},
	{"bus", "Islamabad", "Peshawar", 800, 600, 1200, 2.5, "always", "Motorway buses are safest", "low", true},
	{"bus", "Islamabad", "Multan", 2000, 1500, 3000, 7, "always", "Take morning buses", "medium", false},
	{"bus", "Islamabad", "Swat", 1200, 900, 1800, 6, "daytime_only", "Only travel in daylight, mountain roads", "high", false},
	{"bus", "Islamabad", "Gilgit", 3000, 2500, 4000, 16, "daytime_only", "Dangerous mountain road, only experienced drivers", "medium", false},

	// Ride hailing
	{"careem", "Islamabad", "Lahore", 8000, 7000, 12000, 4.5, "always", "Trackable, safest option", "low", true},
	{"careem", "Islamabad", "Murree", 3500, 3000, 5000, 1.5, "always", "Trackable ride", "low", true},
	{"indriver", "Islamabad", "Lahore", 6500, 5500, 9000, 4.5, "always", "Negotiate fare, share trip details", "low", true},

	// Daewoo Express
	{"daewoo", "Islamabad", "Lahore", 2200, 2000, 2800, 4.5, "always", "Premium service, fully AC, safest bus option", "low", true},
	{"daewoo", "Islamabad", "Karachi", 5500, 5000, 6500, 17, "always", "Sleeper option available", "low", true},
	{"daewoo", "Lahore", "Multan", 1500, 1200, 1800, 4, "always", "Best option for this route", "low", true},

	// Train
	{"train", "Islamabad", "Lahore", 800, 400, 2500, 5, "limited", "Book business class for comfort", "high", false},
	{"train", "Islamabad", "Karachi", 2500, 1200, 5000, 22, "limited", "Long journey, sleeper recommended", "high", false},
	{"train", "Lahore", "Karachi", 2200, 1000, 4500, 18, "limited", "Multiple classes available", "high", false},

	// Flights
	{"flight", "Islamabad", "Karachi", 12000, 8000, 25000, 1.5, "always", "PIA/Airblue/Serene, book early for deals", "low", true},
	{"flight", "Islamabad", "Lahore", 8000, 5000, 15000, 0.75, "always", "Short flight, often delayed", "low", true},
	{"flight", "Islamabad", "Gilgit", 10000, 7000, 18000, 1, "limited", "Weather dependent, frequent cancellations", "low", true},
	{"flight", "Islamabad", "Skardu", 12000, 8000, 20000, 1, "limited", "Very weather dependent", "low", true},

	// Local transport
	{"wagon", "Islamabad", "Rawalpindi", 50, 40, 80, 0.5, "always", "Crowded, keep valuables safe", "high", false},
	{"rickshaw", "Islamabad", "Rawalpindi", 300, 200, 500, 0.75, "always", "Negotiate fare before boarding", "low", false},
}

var seedAlerts = []alertRow{
	{"fog", "Lahore", "medium", "Dense fog expected on M2 motorway during winter mornings"},
	{"landslide", "Karakoram Highway", "high", "Landslide risk on KKH near Chilas, proceed with caution"},
	{"road_closure", "Khunjerab Pass", "critical", "Pass closed during winter months (Nov-Apr)"},
	{"flood", "Swat Valley", "medium", "Monsoon flooding possible July-September"},
	{"protest", "Islamabad", "low", "Occasional road blocks near Red Zone"},
}
