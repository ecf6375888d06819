package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// TravelAdvice generates a free-form, consultant-style answer for a
	// resolved travel query enriched with route/weather/safety data.
	TravelAdvice(ctx context.Context, input AdviceInput) (string, error)

	// ParseTripRequest extracts a structured trip request from a natural
	// language query ("5 day family trip to hunza under 150k").
	ParseTripRequest(ctx context.Context, query string) (*TripRequest, error)

	// GenerateItinerary produces a complete day-by-day trip plan as a raw
	// JSON document. The caller owns decoding and fallback handling.
	GenerateItinerary(ctx context.Context, input ItineraryInput) (string, error)
}
