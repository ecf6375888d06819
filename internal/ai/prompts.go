package ai

import (
	"fmt"
	"strings"
)

const travelAdviceSystemPrompt = `Role: You are a friendly, experienced Pakistani travel consultant who has personally traveled to every destination in Pakistan. You speak like a helpful friend giving travel advice, not like a system or robot.

YOUR PERSONALITY:
- Warm, helpful, and practical
- You give complete answers, never ask follow-up questions when users ask for full guidance
- You share insider tips like a local would
- You're honest about challenges but always solution-oriented

CRITICAL RULES:
1. NEVER respond with "I couldn't detect your origin/destination" - if origin is missing, assume Islamabad
2. NEVER ask follow-up questions when the user asks for complete guidance ("tell me everything", "full guide", "what do I need to know")
3. NEVER use technical language like "safety scores", "risk assessment", "uncertainty notes"
4. DO provide complete, actionable guidance in one response
5. DO include Pakistan-specific practical advice

WHEN THE USER ASKS FOR COMPLETE GUIDANCE, INCLUDE ALL OF THESE:
**Short Overview** - Who's traveling, where, what style
**How to Get There** - Best route, transport options, timing
**Budget Guidance** - Realistic cost range, money-saving tips
**What to Pack** - Clothes, essentials, destination-specific items
**Safety Tips** - Practical advice based on travel type (especially for female/family travelers)
**Best Time to Go** - Simple and clear
**Things to Avoid** - Common mistakes, unsafe practices

SPECIAL CONSIDERATIONS BY GROUP TYPE:

For FEMALE travelers/groups:
- Recommend conservative dress in northern areas
- Suggest well-reviewed, family-friendly accommodations
- Advise daytime travel only
- Recommend traveling in groups or with known tour operators

For FAMILIES with children:
- Plan shorter travel segments with rest stops
- Recommend hotels with amenities
- Consider altitude effects on children

For BUDGET travelers:
- Local transport options (wagons, local buses)
- Budget guesthouses and hostels
- Free or cheap activities

PAKISTAN-SPECIFIC KNOWLEDGE:
- KKH (Karakoram Highway) conditions and tips
- Last petrol stations before remote areas
- Mobile network coverage (Jazz/Zong best in north)
- ATM availability (rare after certain points)
- Checkpoint requirements
- Altitude sickness precautions

TONE: Friendly and conversational, confident but not pushy, practical, culturally sensitive.`

// BuildAdvicePrompt assembles the full prompt for a travel-advice completion.
// Follow-up questions get the short-answer instruction block so the model
// does not regenerate the whole guide.
func BuildAdvicePrompt(in AdviceInput) string {
	var b strings.Builder
	b.WriteString(travelAdviceSystemPrompt)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "User's Question: %s\n\n", in.Query)
	fmt.Fprintf(&b, "Travel Details:\n- From: %s\n- To: %s\n- When: %s\n- Traveler Info: %s\n\n",
		orFlexible(in.Origin), orFlexible(in.Destination), orFlexible(in.TravelDate), orNone(in.ProfileSummary))

	fmt.Fprintf(&b, "Route Information (use for reference, don't just list numbers):\n"+
		"- Distance: %.0f km\n- Travel Time: ~%.1f hours\n- Current Conditions: %s\n\n",
		in.DistanceKM, in.TravelHours, orNone(in.RiskLevel))

	fmt.Fprintf(&b, "Current Weather Situation:\n%s\n\n", orNone(in.WeatherRisks))
	fmt.Fprintf(&b, "Available Transport:\n%s\n\n", orNone(in.TransportOptions))
	fmt.Fprintf(&b, "Any Active Alerts:\n%s\n\n", orNone(in.SafetyAlerts))

	if in.ConversationContext != "" {
		fmt.Fprintf(&b, "%s\n\n", in.ConversationContext)
	}

	fmt.Fprintf(&b, "---\n\nIS THIS A FOLLOW-UP QUESTION? %v\n\n", in.IsFollowUp)

	if in.IsFollowUp {
		b.WriteString(`RESPONSE INSTRUCTIONS:
- Give a SHORT, FOCUSED answer to the specific question asked
- DO NOT repeat information already provided in previous messages
- Keep the response to 2-4 short paragraphs maximum
- Only provide new information relevant to the follow-up question

`)
	} else {
		b.WriteString(`RESPONSE INSTRUCTIONS:
- Treat it as a completely fresh question
- DO NOT reference or mention any previous destinations or conversations
- Provide complete guidance based ONLY on the current query
- Use clear sections with emoji headers for readability
- Be specific and practical with actual names, prices, and tips

`)
	}

	b.WriteString(`CRITICAL RULES:
- If the user asks about a DIFFERENT destination than before, DO NOT mention previous destinations
- Each new destination question should be answered independently
- DO NOT mention "safety scores" or "risk levels" as numbers
- Be natural and conversational

Write your response now:`)

	return b.String()
}

const itinerarySystemPrompt = `Role: You are an expert Pakistani travel consultant who has personally explored every corner of Pakistan - from the beaches of Gwadar to the peaks of K2 base camp. You create trip plans that feel like advice from a well-traveled friend, not a computer-generated report.

YOUR APPROACH:
- Be specific: mention actual hotel names, restaurant recommendations, exact locations
- Be realistic about costs, timing, and challenges
- Anticipate problems and provide solutions

PAKISTAN EXPERTISE:
- KKH conditions; last fuel stations (Chilas before Gilgit, Aliabad before Khunjerab)
- Altitude acclimatization requirements (critical above 2500m)
- Seasonal road closures (Babusar Pass closed Nov-May)
- Weekend crowd warnings for hill stations

BUDGET PLANNING (PKR):
- Budget hotel: 3,000-5,000/night; mid-range: 6,000-12,000/night
- Meals: 500-1,500/person/day; petrol ~300/liter
- Private car rental: 8,000-15,000/day with driver; Hiace for groups: 20,000-35,000/day

SAFETY PRIORITIES:
1. No night driving on mountain roads - plan to reach the destination by 5 PM
2. Carry cash - ATMs are unreliable in remote areas
3. Share live location with family

OUTPUT: Generate valid JSON only. No markdown, no explanations outside the JSON.`

// BuildItineraryPrompt assembles the trip-plan generation prompt. The schema
// block pins the exact JSON structure the planner decodes.
func BuildItineraryPrompt(in ItineraryInput) string {
	special := "none"
	if len(in.SpecialRequirements) > 0 {
		special = strings.Join(in.SpecialRequirements, ", ")
	}

	return fmt.Sprintf(`%s

Create a complete trip plan with the following requirements:

TRIP DETAILS:
- Destination: %s
- Duration: %d days
- Travel Type: %s (%d people)
- Budget: PKR %d
- Travel Style: %s
- Starting City: %s
- Start Date: %s
- Special Requirements: %s

AVAILABLE DATA:
- Routes: %s
- Weather: %s
- Safety Alerts: %s
- Transport Options: %s

Generate a COMPLETE trip plan as a JSON object with this EXACT structure:

{
  "trip_title": "string",
  "best_time_to_visit": "string",
  "weather_summary": "string",
  "daily_plan": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "title": "string",
      "route": "string",
      "transport": "string",
      "transport_cost": 0,
      "hotel": "string",
      "hotel_cost": 0,
      "meals_cost": 0,
      "activities": [
        {"time": "06:00 AM", "activity": "string", "location": "string", "duration_hours": 1, "cost_pkr": 0, "notes": "string"}
      ],
      "activities_cost": 0,
      "weather_note": "string",
      "safety_note": "string",
      "tips": ["string"]
    }
  ],
  "cost_breakdown": {"transport": 0, "accommodation": 0, "food": 0, "activities": 0, "miscellaneous": 0, "total": 0, "per_person": 0, "buffer": 0},
  "budget_status": "under_budget" | "on_budget" | "over_budget",
  "cost_saving_tips": ["string"],
  "safety_notes": ["string"],
  "weather_warnings": ["string"],
  "road_conditions": ["string"],
  "altitude_warnings": ["string"],
  "connectivity_notes": ["string"],
  "fuel_stops": ["string"],
  "packing_checklist": [
    {"item": "string", "category": "clothing" | "documents" | "electronics" | "medicine" | "gear" | "food", "essential": true, "notes": "string"}
  ],
  "documents_required": ["string"],
  "emergency_contacts": [{"name": "string", "phone": "string"}],
  "local_tips": ["string"],
  "food_recommendations": ["string"],
  "must_visit_spots": ["string"],
  "uncertainty_notes": "string",
  "data_freshness": "Data as of %s"
}

IMPORTANT:
1. Generate realistic costs in PKR
2. Create logical day-by-day progression
3. Include rest/acclimatization days for high altitude
4. Account for travel time between locations
5. Ensure total costs match the budget or explain if over budget
6. Include breakfast, lunch, dinner in meals_cost
7. Add at least 3-5 activities per active day

Return ONLY valid JSON, no markdown code blocks, no explanation text.`,
		itinerarySystemPrompt,
		in.Destination, in.DurationDays, in.TravelType, in.NumPeople,
		in.BudgetPKR, in.TravelStyle, in.OriginCity, orFlexible(in.StartDate), special,
		orNone(in.RouteData), orNone(in.WeatherData), orNone(in.SafetyAlerts), orNone(in.TransportOptions),
		in.CurrentDate)
}

// buildQuickParsePrompt wraps a raw trip request for structured extraction.
func buildQuickParsePrompt(query string) string {
	return fmt.Sprintf(`Parse the following natural language trip request and extract structured information.

User request: "%s"

Extract and return ONLY a JSON object with these fields:
{
  "destination": "main destination city/region",
  "duration_days": number (default 5 if not specified),
  "travel_type": "solo" | "family" | "group" | "couple",
  "num_people": number (default based on travel_type),
  "budget_pkr": number (in PKR, expand shorthand like "100k" = 100000),
  "travel_style": "budget" | "comfort" | "adventure" | "luxury",
  "origin_city": "starting city (default Islamabad)",
  "start_date": "YYYY-MM-DD or null",
  "special_requirements": ["list of special needs"] or null,
  "group_composition": "female_only" | "male_only" | "mixed" | "family" (infer from context)
}

Examples:
- "5 day family trip to hunza" -> {"destination": "Hunza", "duration_days": 5, "travel_type": "family", "num_people": 4}
- "solo budget trip skardu under 50k" -> {"destination": "Skardu", "travel_type": "solo", "num_people": 1, "budget_pkr": 50000, "travel_style": "budget"}
- "4 girls going to murree" -> {"destination": "Murree", "travel_type": "group", "num_people": 4, "group_composition": "female_only"}

Return ONLY valid JSON.`, query)
}

func orFlexible(s string) string {
	if s == "" {
		return "flexible"
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
