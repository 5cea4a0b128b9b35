package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ellarises/studygroup/internal/app/models/dto"
	"github.com/ellarises/studygroup/internal/app/services"
	"github.com/ellarises/studygroup/internal/middleware"
)

// DonationController handles contribution records
type DonationController struct {
	donationService *services.DonationService
}

// NewDonationController creates a new DonationController
func NewDonationController(donationService *services.DonationService) *DonationController {
	return &DonationController{donationService: donationService}
}

// RecordDonation stores a contribution
// @Summary Record a donation
// @Description Records a contribution under a generated reference
// @Tags donations
// @Accept json
// @Produce json
// @Param request body dto.RecordDonationRequest true "Donation information"
// @Success 201 {object} dto.APIResponse{data=models.Donation} "Donation recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /donations [post]
func (c *DonationController) RecordDonation(ctx *gin.Context) {
	var req dto.RecordDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	donation, err := c.donationService.RecordDonation(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      donation,
		Timestamp: time.Now(),
	})
}

// ListDonations lists recorded contributions
// @Summary List donations
// @Description Retrieves all recorded contributions, newest first; managers and admins only
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Donation} "Donations retrieved successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /donations [get]
func (c *DonationController) ListDonations(ctx *gin.Context) {
	donations, err := c.donationService.ListDonations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      donations,
		Timestamp: time.Now(),
	})
}
