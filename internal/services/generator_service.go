package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/utils"
)

type GeneratorServiceInterface interface {
	GeneratePlan(ctx context.Context, destination string, days int) *response_models.PlanPayload
}

type GeneratorService struct {
	aiClient utils.TextClientInterface
}

func NewGeneratorService(aiClient utils.TextClientInterface) GeneratorServiceInterface {
	return &GeneratorService{aiClient: aiClient}
}

const generationTimeout = 20 * time.Second

// GeneratePlan produces a structured itinerary for the destination. The AI
// path is best-effort: transport errors, malformed JSON and shape violations
// all degrade to the deterministic fallback plan, so the pipeline never fails
// here.
func (g *GeneratorService) GeneratePlan(ctx context.Context, destination string, days int) *response_models.PlanPayload {
	payload, err := g.generateWithAI(ctx, destination, days)
	if err != nil {
		log.Printf("AI plan generation failed for %q, using fallback plan: %v", destination, err)
		return FallbackPlan(destination, days)
	}
	return payload
}

func (g *GeneratorService) generateWithAI(ctx context.Context, destination string, days int) (*response_models.PlanPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	text, err := g.aiClient.GenerateText(ctx, buildPlanPrompt(destination, days))
	if err != nil {
		return nil, err
	}

	var payload response_models.PlanPayload
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(text)), &payload); err != nil {
		return nil, fmt.Errorf("malformed plan response: %w", err)
	}

	// A JSON-valid but shape-invalid response is treated like a transport
	// failure rather than persisted as-is.
	if err := validatePlanPayload(&payload, days); err != nil {
		return nil, fmt.Errorf("plan response failed validation: %w", err)
	}

	return &payload, nil
}

func validatePlanPayload(p *response_models.PlanPayload, days int) error {
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("empty description")
	}
	if len(p.Highlights) != 3 {
		return fmt.Errorf("expected 3 highlights, got %d", len(p.Highlights))
	}
	if p.Budget.Min > p.Budget.Max {
		return fmt.Errorf("budget min %.0f exceeds max %.0f", p.Budget.Min, p.Budget.Max)
	}
	if len(p.Itinerary) != days {
		return fmt.Errorf("expected %d itinerary days, got %d", days, len(p.Itinerary))
	}
	for i, day := range p.Itinerary {
		if day.Day != i+1 {
			return fmt.Errorf("day %d has number %d", i+1, day.Day)
		}
		if len(day.Activities) == 0 {
			return fmt.Errorf("day %d has no activities", day.Day)
		}
	}
	return nil
}

// FallbackPlan synthesizes a generic but well-formed plan so the user always
// sees a result even when the AI backend is degraded or rate-limited.
func FallbackPlan(destination string, days int) *response_models.PlanPayload {
	itinerary := make([]response_models.ItineraryDay, 0, days)
	for i := 1; i <= days; i++ {
		itinerary = append(itinerary, response_models.ItineraryDay{
			Day:        i,
			Title:      fmt.Sprintf("Exploring the Best of %s - Day %d", destination, i),
			ImageQuery: fmt.Sprintf("%s landmark", destination),
			Activities: []response_models.Activity{
				{Time: "09:00 AM", Task: fmt.Sprintf("%s City Tour", destination), Description: "Start your day exploring the main landmarks."},
				{Time: "01:00 PM", Task: "Local Lunch", Description: fmt.Sprintf("Try the famous local dishes of %s at a nearby restaurant.", destination)},
				{Time: "06:00 PM", Task: "Sunset Walk", Description: "Enjoy a relaxing walk and soak in the atmosphere."},
			},
		})
	}

	return &response_models.PlanPayload{
		Description: fmt.Sprintf("Experience the magic of %s. Although our AI travel agent is currently busy, we've outlined a standard itinerary for you to enjoy the best of this location.", destination),
		Highlights: []response_models.Highlight{
			{Title: "City Center", Rating: "4.8 ★"},
			{Title: "Local Cuisine", Rating: "4.7 ★"},
			{Title: "Historic Landmarks", Rating: "4.9 ★"},
		},
		Gastronomy:  fmt.Sprintf("Try the famous local dishes of %s at a nearby restaurant in the heart of the city.", destination),
		SmartTravel: fmt.Sprintf("Start your day exploring the main landmarks of %s and use local transport for an authentic experience.", destination),
		Budget: response_models.Budget{
			Min: float64(days * 100),
			Max: float64(days * 200),
		},
		Itinerary: itinerary,
	}
}

func buildPlanPrompt(destination string, days int) string {
	return fmt.Sprintf(`
Create a highly detailed, professional, and non-generic %d-day travel itinerary for %[2]s.

STRICT RULES:
- Do NOT use generic phrases like "City Center", "Local Cuisine", "Explore the Area", or "Visit Popular Attractions".
- Every highlight and activity MUST include specific real landmark names.
- Include a mix of iconic landmarks and lesser-known hidden gems.
- Mention specific neighborhoods, temples, streets, or districts.
- Include a real hotel recommendation with its star rating.
- Include practical travel tips (transport pass, best time to visit, reservation advice).
- Each day must feel unique and distinct.
- Tailor everything specifically to %[2]s.

Return ONLY valid JSON in this exact format:

{
  "description": "A deep, enticing 2-sentence introduction about the destination and the trip.",
  "highlights": [
    { "title": "Specific Landmark Name", "rating": "4.8 ★" },
    { "title": "Unique Activity Name", "rating": "4.9 ★" },
    { "title": "Hidden Gem Name", "rating": "4.7 ★" }
  ],
  "gastronomy": "Specific must-try dishes and famous food districts in %[2]s.",
  "smartTravel": "Specific local tips, transport hacks, and cultural etiquette for %[2]s.",
  "budget": {
    "min": 500,
    "max": 800
  },
  "itinerary": [
    {
      "day": 1,
      "title": "Specific and unique title (e.g., 'Sunset at the Rialto Bridge')",
      "imageQuery": "Highly specific image search query (e.g., 'Rialto Bridge Venice')",
      "hotel": {
        "name": "Real hotel name",
        "starRating": "4-star"
      },
      "activities": [
        {
          "time": "09:00 AM",
          "task": "Specific landmark or activity",
          "description": "Unique detail about this activity."
        },
        {
          "time": "01:00 PM",
          "task": "Specific dining area or activity",
          "description": "Helpful tip or detail."
        },
        {
          "time": "07:00 PM",
          "task": "Evening experience",
          "description": "Specific recommendation."
        }
      ],
      "travelTips": [
        "Specific transportation advice",
        "Booking or timing tip",
        "Local cultural etiquette tip"
      ]
    }
  ]
}

CRITICAL RULES:
1. All landmark and hotel names MUST be real and specific to %[2]s.
2. The 'imageQuery' MUST include %[2]s and a specific landmark for better image matching.
3. Return EXACTLY 3 highlights.
4. The itinerary MUST contain exactly %[1]d day entries numbered 1..%[1]d.
5. No markdown. No explanation outside JSON.
`, days, destination)
}
