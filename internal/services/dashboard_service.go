package services

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/models/response_models"
	"konkanbliss/pkg/localstore"
	"konkanbliss/pkg/utils"
)

const (
	itinerariesNamespace = "konkanbliss-itineraries"
	experiencesNamespace = "konkanbliss-experiences"
)

type DashboardServiceInterface interface {
	ListItineraries(accountID string) ([]response_models.SavedItinerary, error)
	AddItinerary(accountID string, req request_models.SaveItineraryRequest) (response_models.SavedItinerary, error)
	RemoveItinerary(accountID, id string) error

	ListExperiences(accountID string) ([]response_models.Experience, error)
	AddExperience(accountID string, req request_models.AddExperienceRequest) (response_models.Experience, error)
	RemoveExperience(accountID, id string) error
}

// DashboardService owns the two account-local collections. Every mutation
// re-serializes the whole collection back to the store; there is no delta
// write and no transaction log. A missing or unreadable value is treated as
// "never written" and replaced by the demo seed on first read.
type DashboardService struct {
	store localstore.Store
}

func NewDashboardService(store localstore.Store) DashboardServiceInterface {
	return &DashboardService{store: store}
}

func scopedKey(namespace, accountID string) string {
	if accountID == "" {
		return namespace
	}
	return namespace + ":" + accountID
}

// newLocalID mirrors the Date.now() identifiers of the original store.
func newLocalID(taken map[string]bool) string {
	id := utils.NowUnixMillis()
	for taken[strconv.FormatInt(id, 10)] {
		id++
	}
	return strconv.FormatInt(id, 10)
}

func (s *DashboardService) loadItineraries(key string) []response_models.SavedItinerary {
	raw, ok := s.store.Get(key)
	if !ok {
		return seedItineraries()
	}
	var items []response_models.SavedItinerary
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("Unreadable saved-itinerary collection at %s, resetting: %v", key, err)
		return seedItineraries()
	}
	return items
}

func (s *DashboardService) saveItineraries(key string, items []response_models.SavedItinerary) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return utils.ErrInvalidInput
	}
	s.store.Set(key, string(raw))
	return nil
}

func (s *DashboardService) ListItineraries(accountID string) ([]response_models.SavedItinerary, error) {
	key := scopedKey(itinerariesNamespace, accountID)
	items := s.loadItineraries(key)
	if _, ok := s.store.Get(key); !ok {
		if err := s.saveItineraries(key, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (s *DashboardService) AddItinerary(accountID string, req request_models.SaveItineraryRequest) (response_models.SavedItinerary, error) {
	if req.Title == "" {
		return response_models.SavedItinerary{}, utils.ErrInvalidInput
	}

	status := req.Status
	if status == "" {
		status = "draft"
	}
	switch status {
	case "draft", "active", "completed":
	default:
		return response_models.SavedItinerary{}, utils.ErrInvalidInput
	}

	key := scopedKey(itinerariesNamespace, accountID)
	items := s.loadItineraries(key)

	taken := make(map[string]bool, len(items))
	for _, it := range items {
		taken[it.ID] = true
	}

	now := utils.FormatRFC3339IST(time.Now())
	item := response_models.SavedItinerary{
		ID:           newLocalID(taken),
		Title:        req.Title,
		Duration:     req.Duration,
		Destinations: req.Destinations,
		Budget:       req.Budget,
		GroupType:    req.GroupType,
		CreatedAt:    now,
		LastModified: now,
		Status:       status,
	}

	items = append(items, item)
	if err := s.saveItineraries(key, items); err != nil {
		return response_models.SavedItinerary{}, err
	}
	return item, nil
}

// RemoveItinerary filters the collection; removing an unknown id is a no-op.
func (s *DashboardService) RemoveItinerary(accountID, id string) error {
	key := scopedKey(itinerariesNamespace, accountID)
	items := s.loadItineraries(key)

	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return s.saveItineraries(key, kept)
}

func (s *DashboardService) loadExperiences(key string) []response_models.Experience {
	raw, ok := s.store.Get(key)
	if !ok {
		return seedExperiences()
	}
	var items []response_models.Experience
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("Unreadable experience collection at %s, resetting: %v", key, err)
		return seedExperiences()
	}
	return items
}

func (s *DashboardService) saveExperiences(key string, items []response_models.Experience) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return utils.ErrInvalidInput
	}
	s.store.Set(key, string(raw))
	return nil
}

func (s *DashboardService) ListExperiences(accountID string) ([]response_models.Experience, error) {
	key := scopedKey(experiencesNamespace, accountID)
	items := s.loadExperiences(key)
	if _, ok := s.store.Get(key); !ok {
		if err := s.saveExperiences(key, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (s *DashboardService) AddExperience(accountID string, req request_models.AddExperienceRequest) (response_models.Experience, error) {
	if req.Title == "" || req.Location == "" {
		return response_models.Experience{}, utils.ErrInvalidInput
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}
	if rating < 1 || rating > 5 {
		return response_models.Experience{}, utils.ErrInvalidInput
	}

	key := scopedKey(experiencesNamespace, accountID)
	items := s.loadExperiences(key)

	taken := make(map[string]bool, len(items))
	for _, e := range items {
		taken[e.ID] = true
	}

	item := response_models.Experience{
		ID:          newLocalID(taken),
		Title:       req.Title,
		Location:    req.Location,
		Date:        utils.FormatRFC3339IST(time.Now()),
		Rating:      rating,
		Photos:      req.Photos,
		Description: req.Description,
		Tags:        req.Tags,
	}

	items = append(items, item)
	if err := s.saveExperiences(key, items); err != nil {
		return response_models.Experience{}, err
	}
	return item, nil
}

func (s *DashboardService) RemoveExperience(accountID, id string) error {
	key := scopedKey(experiencesNamespace, accountID)
	items := s.loadExperiences(key)

	kept := items[:0]
	for _, e := range items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return s.saveExperiences(key, kept)
}

// Demo content shown before the account writes anything of its own.
func seedItineraries() []response_models.SavedItinerary {
	return []response_models.SavedItinerary{
		{
			ID:           "1",
			Title:        "Konkan Beach Hopping",
			Duration:     "5 days",
			Destinations: []string{"Tarkarli", "Malvan", "Vengurla"},
			Budget:       "Moderate (₹5,000 - ₹10,000)",
			GroupType:    "Friends",
			CreatedAt:    "2024-01-15T00:00:00+05:30",
			LastModified: "2024-01-20T00:00:00+05:30",
			Status:       "completed",
		},
		{
			ID:           "2",
			Title:        "Heritage & Culture Tour",
			Duration:     "3 days",
			Destinations: []string{"Sindhudurg Fort", "Sawantwadi", "Amboli"},
			Budget:       "Budget (₹2,000 - ₹5,000)",
			GroupType:    "Family",
			CreatedAt:    "2024-02-01T00:00:00+05:30",
			LastModified: "2024-02-01T00:00:00+05:30",
			Status:       "draft",
		},
		{
			ID:           "3",
			Title:        "Adventure Weekend",
			Duration:     "2 days",
			Destinations: []string{"Tarkarli", "Devbagh"},
			Budget:       "Premium (₹10,000 - ₹20,000)",
			GroupType:    "Couple",
			CreatedAt:    "2024-02-10T00:00:00+05:30",
			LastModified: "2024-02-12T00:00:00+05:30",
			Status:       "active",
		},
	}
}

func seedExperiences() []response_models.Experience {
	return []response_models.Experience{
		{
			ID:          "1",
			Title:       "Amazing Scuba Diving at Tarkarli",
			Location:    "Tarkarli Beach",
			Date:        "2024-01-20T00:00:00+05:30",
			Rating:      5,
			Photos:      []string{"https://images.unsplash.com/photo-1500673922987-e212871fec22?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80"},
			Description: "Had an incredible scuba diving experience! The water was crystal clear and we saw amazing marine life.",
			Tags:        []string{"scuba diving", "water sports", "adventure"},
		},
		{
			ID:          "2",
			Title:       "Sunset at Sindhudurg Fort",
			Location:    "Sindhudurg Fort",
			Date:        "2024-01-18T00:00:00+05:30",
			Rating:      4,
			Photos:      []string{"https://images.unsplash.com/photo-1466442929976-97f336a657be?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80"},
			Description: "The fort looks magnificent during sunset. Rich history and beautiful architecture.",
			Tags:        []string{"heritage", "photography", "sunset"},
		},
	}
}
