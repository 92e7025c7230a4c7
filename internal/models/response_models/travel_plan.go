package response_models

// TravelDetails is what the extractor pulls out of a free-text prompt.
// When IsTravelRelated is false the other fields carry no meaning.
type TravelDetails struct {
	Destination     string `json:"destination"`
	Days            int    `json:"days"`
	IsTravelRelated bool   `json:"isTravelRelated"`
}

type Highlight struct {
	Title  string `json:"title"`
	Rating string `json:"rating"`
}

type Budget struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Hotel struct {
	Name       string `json:"name"`
	StarRating string `json:"starRating"`
}

type Activity struct {
	Time        string `json:"time"`
	Task        string `json:"task"`
	Description string `json:"description"`
}

type ItineraryDay struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	ImageQuery string     `json:"imageQuery,omitempty"`
	Hotel      *Hotel     `json:"hotel,omitempty"`
	Activities []Activity `json:"activities"`
	TravelTips []string   `json:"travelTips,omitempty"`
	Image      string     `json:"image,omitempty"`
}

// PlanPayload is the generated plan before it gets a slug and timestamps.
type PlanPayload struct {
	Description string         `json:"description"`
	Highlights  []Highlight    `json:"highlights"`
	Gastronomy  string         `json:"gastronomy"`
	SmartTravel string         `json:"smartTravel"`
	Budget      Budget         `json:"budget"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Image       string         `json:"image,omitempty"`
}

type TravelPlanResponse struct {
	Slug        string         `json:"slug"`
	Destination string         `json:"destination"`
	Days        int            `json:"days"`
	Description string         `json:"description"`
	Highlights  []Highlight    `json:"highlights"`
	Gastronomy  string         `json:"gastronomy"`
	SmartTravel string         `json:"smartTravel"`
	Budget      Budget         `json:"budget"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Image       string         `json:"image,omitempty"`
	CreatedAt   int64          `json:"createdAt"`
}

type PlanCreatedResponse struct {
	Slug string `json:"slug"`
}
