package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Pricing

func (h *Handler) CalculatePrice(c *ginext.Context) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	courtIDs := req.CourtIDs
	if req.CourtID != "" {
		courtIDs = append([]string{req.CourtID}, courtIDs...)
	}
	if len(courtIDs) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "court_id is required"})
		return
	}

	start, err := parseTime("start_time", req.StartTime)
	if err != nil {
		h.handleError(c, err)
		return
	}
	end, err := parseTime("end_time", req.EndTime)
	if err != nil {
		h.handleError(c, err)
		return
	}

	quote, err := h.pricingService.Calculate(c.Request.Context(), courtIDs, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// Rate rules

func rateRuleInput(req dto.RateRuleRequest) domain.RateRuleInput {
	days := make([]time.Weekday, 0, len(req.Weekdays))
	for _, d := range req.Weekdays {
		days = append(days, time.Weekday(d))
	}
	return domain.RateRuleInput{
		CourtID:         req.CourtID,
		HourlyRateCents: req.HourlyRateCents,
		Weekdays:        days,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	}
}

func (h *Handler) ListRateRules(c *ginext.Context) {
	reports, err := h.rateRuleService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RateRuleResponse, 0, len(reports))
	for _, r := range reports {
		resp = append(resp, dto.ToRateRuleResponse(r.RateRule, r.OverlapsWith))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateRateRule(c *ginext.Context) {
	var req dto.RateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rule, err := h.rateRuleService.Create(c.Request.Context(), rateRuleInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRateRuleResponse(rule, nil))
}

func (h *Handler) UpdateRateRule(c *ginext.Context) {
	var req dto.RateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rule, err := h.rateRuleService.Update(c.Request.Context(), c.Param("id"), rateRuleInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRateRuleResponse(rule, nil))
}

func (h *Handler) DeleteRateRule(c *ginext.Context) {
	if err := h.rateRuleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Courts

func (h *Handler) ListCourts(c *ginext.Context) {
	courts, err := h.courtService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CourtResponse, 0, len(courts))
	for _, court := range courts {
		resp = append(resp, dto.ToCourtResponse(court))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateCourt(c *ginext.Context) {
	var req dto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	court, err := h.courtService.Create(c.Request.Context(), domain.CreateCourtInput{Name: req.Name})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCourtResponse(court))
}

func (h *Handler) DeactivateCourt(c *ginext.Context) {
	if err := h.courtService.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
