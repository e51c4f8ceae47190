package services

import (
	"konkanbliss/internal/models/response_models"
	"konkanbliss/pkg/utils"
)

type MapsServiceInterface interface {
	ListPlaces() []response_models.MappedPlace
	Directions(lat, lng float64) (response_models.DirectionsResponse, error)
}

type MapsService struct{}

func NewMapsService() MapsServiceInterface {
	return &MapsService{}
}

// Fixed gazetteer of mapped Konkan places.
var mappedPlaces = []response_models.MappedPlace{
	{Name: "Tarkarli Beach", Latitude: 16.0167, Longitude: 73.4667, Type: "beach"},
	{Name: "Sindhudurg Fort", Latitude: 16.0333, Longitude: 73.5, Type: "heritage"},
	{Name: "Malvan Beach", Latitude: 16.0667, Longitude: 73.4667, Type: "beach"},
	{Name: "Amboli Waterfalls", Latitude: 15.95, Longitude: 74.0, Type: "nature"},
	{Name: "Vengurla Beach", Latitude: 15.8667, Longitude: 73.6333, Type: "beach"},
	{Name: "Devbagh Beach", Latitude: 16.0, Longitude: 73.45, Type: "beach"},
	{Name: "Sawantwadi Palace", Latitude: 15.9, Longitude: 73.8167, Type: "heritage"},
	{Name: "Redi Beach", Latitude: 15.75, Longitude: 73.5833, Type: "beach"},
}

func (s *MapsService) ListPlaces() []response_models.MappedPlace {
	out := make([]response_models.MappedPlace, len(mappedPlaces))
	copy(out, mappedPlaces)
	return out
}

func (s *MapsService) Directions(lat, lng float64) (response_models.DirectionsResponse, error) {
	url, err := utils.DirectionsURL(lat, lng)
	if err != nil {
		return response_models.DirectionsResponse{}, utils.ErrInvalidInput
	}
	return response_models.DirectionsResponse{URL: url}, nil
}
