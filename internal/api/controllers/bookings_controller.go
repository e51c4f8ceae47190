package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/services"
	"konkanbliss/pkg/utils"
)

type BookingsController struct {
	bookingService services.BookingServiceInterface
	reviewService  services.ReviewServiceInterface
}

func NewBookingsController(
	bookingService services.BookingServiceInterface,
	reviewService services.ReviewServiceInterface,
) *BookingsController {
	return &BookingsController{
		bookingService: bookingService,
		reviewService:  reviewService,
	}
}

func (b *BookingsController) CreateBooking(c *gin.Context) {
	packageID := c.Param("id")
	if packageID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Package ID is required")
		return
	}

	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Booking date and number of people are required")
		return
	}

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), packageID, accountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking created successfully")
}

func (b *BookingsController) ListMyBookings(c *gin.Context) {
	bookings, err := b.bookingService.ListByAccount(c.Request.Context(), accountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

func (b *BookingsController) AddReview(c *gin.Context) {
	packageID := c.Param("id")
	if packageID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Package ID is required")
		return
	}

	var req request_models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Rating between 1 and 5 is required")
		return
	}

	if err := b.reviewService.AddReview(c.Request.Context(), packageID, accountID(c), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review added successfully")
}

func (b *BookingsController) ListReviews(c *gin.Context) {
	packageID := c.Param("id")
	if packageID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Package ID is required")
		return
	}

	reviews, err := b.reviewService.ListByPackage(c.Request.Context(), packageID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}
