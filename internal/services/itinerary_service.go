package services

import (
	"context"
	"fmt"
	"strings"

	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/models/response_models"
	"konkanbliss/pkg/utils"
)

type ItineraryServiceInterface interface {
	Assemble(ctx context.Context, prefs request_models.GenerateItineraryRequest) (*response_models.GeneratedItinerary, error)
}

type ItineraryService struct{}

func NewItineraryService() ItineraryServiceInterface {
	return &ItineraryService{}
}

type templatePlace struct {
	Name       string
	Type       string
	Activities []string
}

type templateRestaurant struct {
	Name    string
	Cuisine string
	Contact string
}

// Fixed generation catalogs. Trips longer than the catalogs repeat content
// via modulo windows; that repetition is part of the published behavior.
var konkanPlaces = []templatePlace{
	{Name: "Tarkarli Beach", Type: "beach", Activities: []string{"water sports", "scuba diving", "beach relaxation"}},
	{Name: "Sindhudurg Fort", Type: "heritage", Activities: []string{"fort exploration", "history tour", "photography"}},
	{Name: "Malvan", Type: "food", Activities: []string{"Malvani cuisine", "seafood", "local markets"}},
	{Name: "Amboli Waterfalls", Type: "nature", Activities: []string{"trekking", "waterfall viewing", "nature photography"}},
	{Name: "Vengurla Beach", Type: "beach", Activities: []string{"sunset viewing", "coconut groves", "peaceful walks"}},
	{Name: "Devbagh Beach", Type: "beach", Activities: []string{"secluded beach", "turtle watching", "peaceful getaway"}},
}

var konkanRestaurants = []templateRestaurant{
	{Name: "Athithi Bamboo", Cuisine: "Malvani", Contact: "+91 98765 43210"},
	{Name: "Chaitanya Restaurant", Cuisine: "Seafood", Contact: "+91 98765 43211"},
	{Name: "Malvan Kinara", Cuisine: "Local", Contact: "+91 98765 43212"},
	{Name: "Kokan Darbar", Cuisine: "Traditional", Contact: "+91 98765 43213"},
}

// Two independent cost tables: the flat per-activity estimate shown on each
// day and the flat per-day rate behind the trip total. They deliberately do
// not reconcile with each other.
var activityCostByBudget = map[string]int{
	"budget":   500,
	"moderate": 1000,
	"premium":  2000,
	"luxury":   2000,
}

var dayRateByBudget = map[string]int{
	"budget":   2000,
	"moderate": 5000,
	"premium":  10000,
	"luxury":   10000,
}

var allowedDayCounts = map[int]bool{
	1: true, 2: true, 3: true, 4: true, 5: true, 7: true, 10: true,
}

var allowedGroupTypes = map[string]bool{
	"solo": true, "couple": true, "friends": true, "family": true, "large-group": true,
}

var allowedExploreTypes = map[string]bool{
	"adventure": true, "nature": true, "heritage": true, "beaches": true,
	"food": true, "hidden-gems": true, "photography": true, "spiritual": true,
}

const bestTimeToVisit = "October to March"

// Assemble builds a day-by-day itinerary from the fixed catalogs. The
// function is deterministic: identical preferences always produce an
// identical itinerary. Unrecognized enum values fail fast rather than
// defaulting, so a nonsensical plan is never presented.
func (s *ItineraryService) Assemble(ctx context.Context, prefs request_models.GenerateItineraryRequest) (*response_models.GeneratedItinerary, error) {
	if err := validatePreferences(prefs); err != nil {
		return nil, err
	}

	activityCost := activityCostByBudget[prefs.BudgetRange]
	days := make([]response_models.ItineraryDay, 0, prefs.Days)

	for i := 0; i < prefs.Days; i++ {
		dayPlaces := placesWindow(i)
		dayRestaurants := restaurantsWindow(i)

		timeSlot := "10:00 AM - 1:00 PM"
		if i == 0 {
			timeSlot = "9:00 AM - 12:00 PM"
		}

		activities := make([]response_models.ItineraryActivity, 0, len(dayPlaces))
		for _, place := range dayPlaces {
			activities = append(activities, response_models.ItineraryActivity{
				Name:        place.Name,
				Description: fmt.Sprintf("Visit %s and enjoy %s", place.Name, strings.Join(place.Activities, ", ")),
				Time:        timeSlot,
				Cost:        activityCost,
			})
		}

		restaurants := make([]response_models.ItineraryRestaurant, 0, len(dayRestaurants))
		for _, rest := range dayRestaurants {
			restaurants = append(restaurants, response_models.ItineraryRestaurant{
				Name:    rest.Name,
				Cuisine: rest.Cuisine,
				Contact: rest.Contact,
			})
		}

		title := "Exploring Konkan Coast"
		if len(dayPlaces) > 0 {
			title = "Exploring " + dayPlaces[0].Name
		}

		days = append(days, response_models.ItineraryDay{
			Title:       title,
			Activities:  activities,
			Restaurants: restaurants,
			Tips:        dayTip(prefs.SpecialRequests),
		})
	}

	return &response_models.GeneratedItinerary{
		Days:               days,
		TotalEstimatedCost: prefs.Days * dayRateByBudget[prefs.BudgetRange],
		BestTimeToVisit:    bestTimeToVisit,
		Summary: fmt.Sprintf("A %d-day %s focused trip perfect for %s travelers within %s budget.",
			prefs.Days, strings.Join(prefs.ExploreType, ", "), prefs.GroupType, prefs.BudgetRange),
	}, nil
}

func validatePreferences(prefs request_models.GenerateItineraryRequest) error {
	if !allowedDayCounts[prefs.Days] {
		return utils.ErrInvalidDayCount
	}
	if !allowedGroupTypes[prefs.GroupType] {
		return utils.ErrInvalidGroupType
	}
	if len(prefs.ExploreType) == 0 {
		return utils.ErrInvalidExploreType
	}
	for _, e := range prefs.ExploreType {
		if !allowedExploreTypes[e] {
			return utils.ErrInvalidExploreType
		}
	}
	if _, ok := dayRateByBudget[prefs.BudgetRange]; !ok {
		return utils.ErrInvalidBudget
	}
	return nil
}

func placesWindow(day int) []templatePlace {
	start := day % len(konkanPlaces)
	return []templatePlace{
		konkanPlaces[start],
		konkanPlaces[(start+1)%len(konkanPlaces)],
	}
}

func restaurantsWindow(day int) []templateRestaurant {
	start := day % len(konkanRestaurants)
	return []templateRestaurant{
		konkanRestaurants[start],
		konkanRestaurants[(start+1)%len(konkanRestaurants)],
	}
}

func dayTip(specialRequests string) string {
	if specialRequests != "" {
		return "Best time to visit is early morning. Note: " + specialRequests
	}
	return "Best time to visit is early morning. Don't forget to try the local Solkadhi drink!"
}
