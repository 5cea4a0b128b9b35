package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ellarises/studygroup/internal/app/models/dto"
	"github.com/ellarises/studygroup/internal/app/services"
	"github.com/ellarises/studygroup/internal/middleware"
)

// DirectoryController handles the member directory
type DirectoryController struct {
	directoryService *services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService *services.DirectoryService) *DirectoryController {
	return &DirectoryController{directoryService: directoryService}
}

// Search lists members with their enrollments
// @Summary Search the member directory
// @Description Lists every other member grouped with their enrollments; an optional course query narrows the listing
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param search query string false "Course search, e.g. 'comp sci 1'"
// @Success 200 {object} dto.APIResponse{data=dto.DirectoryResponse} "Directory retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /directory [get]
func (c *DirectoryController) Search(ctx *gin.Context) {
	studentID, ok := middleware.GetStudentID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.directoryService.Search(ctx, studentID, ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
