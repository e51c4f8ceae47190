package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"konkanbliss/internal/models/db_models"
	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/models/response_models"
	"konkanbliss/internal/repositories"
	"konkanbliss/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, packageID, accountID string, req request_models.CreateBookingRequest) (response_models.BookingResponse, error)
	ListByAccount(ctx context.Context, accountID string) ([]response_models.BookingResponse, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	packageRepo repositories.PackageRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository, packageRepo repositories.PackageRepository) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, packageID, accountID string, req request_models.CreateBookingRequest) (response_models.BookingResponse, error) {
	pkgID, err := uuid.Parse(packageID)
	if err != nil {
		return response_models.BookingResponse{}, utils.ErrInvalidInput
	}
	acctID, err := uuid.Parse(accountID)
	if err != nil {
		return response_models.BookingResponse{}, utils.ErrInvalidInput
	}

	pkg, err := s.packageRepo.GetByIDWithDestinations(ctx, packageID)
	if err != nil {
		return response_models.BookingResponse{}, utils.ErrDatabaseError
	}
	if pkg == nil {
		return response_models.BookingResponse{}, utils.ErrPackageNotFound
	}

	amount := req.TotalAmount
	if amount == 0 {
		amount = pkg.Price * float64(req.NumberOfPeople)
	}

	booking := &db_models.PackageBooking{
		PackageID:       pkgID,
		AccountID:       acctID,
		BookingDate:     req.BookingDate,
		NumberOfPeople:  req.NumberOfPeople,
		TotalAmount:     amount,
		SpecialRequests: req.SpecialRequests,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		Status:          db_models.BookingPending,
	}

	if _, err := s.bookingRepo.Create(ctx, booking); err != nil {
		log.Printf("Error creating booking: %v", err)
		return response_models.BookingResponse{}, utils.ErrDatabaseError
	}

	resp := buildBookingResponse(booking)
	resp.PackageTitle = pkg.Title
	return resp, nil
}

func (s *BookingService) ListByAccount(ctx context.Context, accountID string) ([]response_models.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListByAccount(ctx, accountID)
	if err != nil {
		log.Printf("Error listing bookings: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp := buildBookingResponse(&b)
		resp.PackageTitle = b.Package.Title
		out = append(out, resp)
	}
	return out, nil
}

func buildBookingResponse(b *db_models.PackageBooking) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:              b.ID.String(),
		PackageID:       b.PackageID.String(),
		BookingDate:     b.BookingDate,
		NumberOfPeople:  b.NumberOfPeople,
		TotalAmount:     b.TotalAmount,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		CreatedAt:       utils.FormatRFC3339IST(utils.FromUnixSecondsIST(b.CreatedAt)),
	}
}
