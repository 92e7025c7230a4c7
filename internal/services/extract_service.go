package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/utils"
)

type ExtractServiceInterface interface {
	ExtractTravelDetails(ctx context.Context, prompt string) *response_models.TravelDetails
}

type ExtractService struct {
	aiClient utils.TextClientInterface
}

func NewExtractService(aiClient utils.TextClientInterface) ExtractServiceInterface {
	return &ExtractService{aiClient: aiClient}
}

const (
	defaultTripDays = 3
	maxTripDays     = 30

	extractionTimeout = 10 * time.Second
)

const extractionPromptTemplate = `
Extract ONLY the destination and number of days from:

"%s"

Check if this is a travel-related request.

Return absolutely valid JSON:

{
  "destination": "City or Country",
  "days": Number,
  "isTravelRelated": Boolean
}

If it is NOT travel related, set isTravelRelated to false and destination to null.
Do NOT include any extra text or markdown.
`

var (
	dayCountPattern    = regexp.MustCompile(`(?i)(\d+)\s*day`)
	destinationPattern = regexp.MustCompile(`(?i)(?:in|to)\s+([A-Za-z\s]+?)(?:\s+for|\s+\d|[.,!?]|$)`)
	dayPrefixPattern   = regexp.MustCompile(`(?i)^\d+\s*days?\s*`)
)

// ExtractTravelDetails asks the AI backend for destination/day-count and falls
// back to pattern matching when the backend is down or returns garbage. It
// never fails: a prompt with nothing recognizable comes back with
// IsTravelRelated=false.
func (e *ExtractService) ExtractTravelDetails(ctx context.Context, prompt string) *response_models.TravelDetails {
	details, err := e.extractWithAI(ctx, prompt)
	if err != nil {
		log.Printf("AI extraction failed, using pattern fallback: %v", err)
		return extractWithPatterns(prompt)
	}
	return details
}

func (e *ExtractService) extractWithAI(ctx context.Context, prompt string) (*response_models.TravelDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, extractionTimeout)
	defer cancel()

	text, err := e.aiClient.GenerateText(ctx, fmt.Sprintf(extractionPromptTemplate, prompt))
	if err != nil {
		return nil, err
	}

	var details response_models.TravelDetails
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(text)), &details); err != nil {
		return nil, fmt.Errorf("malformed extraction response: %w", err)
	}

	if !details.IsTravelRelated {
		return &response_models.TravelDetails{IsTravelRelated: false}, nil
	}

	details.Destination = strings.TrimSpace(details.Destination)
	if details.Destination == "" {
		return nil, fmt.Errorf("no destination in extraction response")
	}
	details.Days = clampDays(details.Days)

	return &details, nil
}

// extractWithPatterns is the network-free fallback. Travel-relatedness here is
// just "a destination string was found", a deliberately weak heuristic.
func extractWithPatterns(prompt string) *response_models.TravelDetails {
	days := defaultTripDays
	if m := dayCountPattern.FindStringSubmatch(prompt); m != nil {
		if parsed, err := strconv.Atoi(m[1]); err == nil && parsed > 0 {
			days = clampDays(parsed)
		}
	}

	var destination string
	if m := destinationPattern.FindStringSubmatch(prompt); m != nil {
		destination = strings.TrimSpace(m[1])
	} else {
		// No "in/to <place>" anywhere: treat the prompt itself as the
		// destination, minus a leading day-count prefix, but only if what is
		// left looks like a place name.
		remainder := strings.TrimSpace(dayPrefixPattern.ReplaceAllString(prompt, ""))
		if looksLikePlaceName(remainder) {
			destination = remainder
		}
	}

	return &response_models.TravelDetails{
		Destination:     destination,
		Days:            days,
		IsTravelRelated: destination != "",
	}
}

func looksLikePlaceName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func clampDays(days int) int {
	if days < 1 {
		return defaultTripDays
	}
	if days > maxTripDays {
		return maxTripDays
	}
	return days
}
