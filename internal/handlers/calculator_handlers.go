package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/epeers/gradecalc/internal/calc"
	"github.com/epeers/gradecalc/internal/models"
	"github.com/epeers/gradecalc/internal/services"
	"github.com/gin-gonic/gin"
)

// CalculatorHandler handles the calculator endpoints
type CalculatorHandler struct {
	calculatorSvc *services.CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler
func NewCalculatorHandler(calculatorSvc *services.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorSvc: calculatorSvc,
	}
}

// List handles GET /calculators
// @Summary List calculators
// @Description List the available calculators with their fields and record limits
// @Tags calculators
// @Produce json
// @Success 200 {array} models.CalculatorSummary
// @Router /calculators [get]
func (h *CalculatorHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.calculatorSvc.Calculators())
}

// Percentage handles POST /calculators/percentage
// @Summary Calculate overall percentage
// @Description Validate marks obtained and maximum marks per subject and return the overall percentage
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body models.PercentageRequest true "Subjects"
// @Success 200 {object} models.PercentageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 422 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /calculators/percentage [post]
func (h *CalculatorHandler) Percentage(c *gin.Context) {
	var req models.PercentageRequest
	limitBody(c, h.calculatorSvc.MaxSubjects())
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp, err := h.calculatorSvc.CalculatePercentage(ctx, &req)
	if err != nil {
		writeCalculationError(c, err)
		return
	}
	resp.Warnings = wc.Warnings()

	c.JSON(http.StatusOK, resp)
}

// CGPA handles POST /calculators/cgpa
// @Summary Calculate CGPA
// @Description Validate grade point and credits per semester and return the credit-weighted CGPA
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body models.CGPARequest true "Semesters"
// @Success 200 {object} models.CGPAResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 422 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /calculators/cgpa [post]
func (h *CalculatorHandler) CGPA(c *gin.Context) {
	var req models.CGPARequest
	limitBody(c, h.calculatorSvc.MaxSemesters())
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp, err := h.calculatorSvc.CalculateCGPA(ctx, &req)
	if err != nil {
		writeCalculationError(c, err)
		return
	}
	resp.Warnings = wc.Warnings()

	c.JSON(http.StatusOK, resp)
}

// Request bodies are capped before decoding so an oversized record list is
// refused without being read into memory.
const (
	bodyBaseBytes   = 4 << 10
	bodyRecordBytes = 1 << 10
)

func limitBody(c *gin.Context, maxRecords int) {
	limit := int64(bodyBaseBytes + maxRecords*bodyRecordBytes)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
}

func writeBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Error:   "request_too_large",
			Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		})
		return
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	})
}

// writeCalculationError reports input problems as 422 and hides broken
// invariants behind a generic 500.
func writeCalculationError(c *gin.Context, err error) {
	var verr *calc.ValidationError
	if !errors.As(err, &verr) || verr.Internal() {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "calculation failed",
		})
		return
	}

	body := models.ValidationErrorResponse{
		OK:      false,
		Error:   string(verr.Kind),
		Message: verr.Message(),
		Index:   verr.Index,
		Field:   verr.Field,
		Limit:   verr.Limit,
	}
	if verr.Kind == calc.KindExceedsMaximum {
		obtained, maximum := verr.Obtained, verr.Maximum
		body.Obtained = &obtained
		body.Maximum = &maximum
	}
	c.JSON(http.StatusUnprocessableEntity, body)
}
