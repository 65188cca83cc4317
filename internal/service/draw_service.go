package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/repository"
)

// DrawService handles draw schedule business logic operations.
type DrawService struct {
	drawRepo    *repository.DrawRepository
	projectRepo *repository.ProjectRepository
}

// NewDrawService creates a new DrawService with the provided repository dependencies.
func NewDrawService(drawRepo *repository.DrawRepository, projectRepo *repository.ProjectRepository) *DrawService {
	return &DrawService{
		drawRepo:    drawRepo,
		projectRepo: projectRepo,
	}
}

// GetDraws retrieves a project's draw schedule ordered by draw number.
func (s *DrawService) GetDraws(projectID string) ([]model.Draw, error) {
	if _, err := s.projectRepo.GetProjectOnID(projectID); err != nil {
		return nil, err
	}
	return s.drawRepo.GetDrawsOnProjectID(projectID)
}

// GetDraw retrieves a single draw by ID.
func (s *DrawService) GetDraw(drawID string) (model.Draw, error) {
	return s.drawRepo.GetDrawOnID(drawID)
}

// GetDrawTotals returns the scheduled, paid and remaining totals for a
// project's draw schedule, rounded to two decimal places.
func (s *DrawService) GetDrawTotals(projectID string) (model.DrawTotals, error) {
	if _, err := s.projectRepo.GetProjectOnID(projectID); err != nil {
		return model.DrawTotals{}, err
	}

	totals, err := s.drawRepo.GetTotalsOnProjectID(projectID)
	if err != nil {
		return model.DrawTotals{}, err
	}

	totals.Scheduled = round(totals.Scheduled)
	totals.Paid = round(totals.Paid)
	totals.Remaining = round(totals.Remaining)

	return totals, nil
}

// CreateDraw schedules a new draw on a project. An empty status defaults to
// scheduled; creating a draw directly in paid status stamps today as the
// paid date.
func (s *DrawService) CreateDraw(projectID string, req request.CreateDrawRequest) (model.Draw, error) {
	if _, err := s.projectRepo.GetProjectOnID(projectID); err != nil {
		return model.Draw{}, err
	}

	dueDate, err := repository.ParseTime(req.DueDate)
	if err != nil {
		return model.Draw{}, err
	}

	status := req.Status
	if status == "" {
		status = model.DrawScheduled
	}

	draw := model.Draw{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		VendorID:    req.VendorID,
		Number:      req.Number,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      status,
		DueDate:     dueDate,
	}

	if status == model.DrawPaid {
		now := time.Now().UTC()
		draw.PaidDate = &now
	}

	if err := s.drawRepo.CreateDraw(draw); err != nil {
		return model.Draw{}, err
	}

	draw.CreatedAt = time.Now().UTC()

	return draw, nil
}

// UpdateDraw applies a partial update to a draw. Paid draws only accept
// cancellation; moving a draw into paid status without an explicit paid
// date stamps today.
func (s *DrawService) UpdateDraw(drawID string, req request.UpdateDrawRequest) (model.Draw, error) {
	draw, err := s.drawRepo.GetDrawOnID(drawID)
	if err != nil {
		return model.Draw{}, err
	}

	if draw.Status == model.DrawPaid && !isCancellation(req) {
		return model.Draw{}, apperrors.ErrDrawAlreadyPaid
	}

	if req.VendorID != nil {
		draw.VendorID = req.VendorID
	}
	if req.Number != nil {
		draw.Number = *req.Number
	}
	if req.Description != nil {
		draw.Description = *req.Description
	}
	if req.Amount != nil {
		draw.Amount = *req.Amount
	}
	if req.DueDate != nil {
		dueDate, err := repository.ParseTime(*req.DueDate)
		if err != nil {
			return model.Draw{}, err
		}
		draw.DueDate = dueDate
	}
	if req.PaidDate != nil {
		paidDate, err := repository.ParseTime(*req.PaidDate)
		if err != nil {
			return model.Draw{}, err
		}
		draw.PaidDate = &paidDate
	}
	if req.Status != nil {
		draw.Status = *req.Status
		switch draw.Status {
		case model.DrawPaid:
			if draw.PaidDate == nil {
				now := time.Now().UTC()
				draw.PaidDate = &now
			}
		case model.DrawCancelled:
			draw.PaidDate = nil
		}
	}

	if err := s.drawRepo.UpdateDraw(draw); err != nil {
		return model.Draw{}, err
	}

	return draw, nil
}

// DeleteDraw removes a draw from the schedule.
func (s *DrawService) DeleteDraw(drawID string) error {
	return s.drawRepo.DeleteDraw(drawID)
}

// isCancellation reports whether the update does nothing beyond moving the
// draw to cancelled status.
func isCancellation(req request.UpdateDrawRequest) bool {
	if req.Status == nil || *req.Status != model.DrawCancelled {
		return false
	}
	return req.VendorID == nil && req.Number == nil && req.Description == nil &&
		req.Amount == nil && req.DueDate == nil && req.PaidDate == nil
}
