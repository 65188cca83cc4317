package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/dealcalc"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/repository"
)

// BudgetLine is a budget line item with its derived variances attached.
// Variances are recomputed on every read and never persisted; the stored
// amounts remain the only source of truth.
type BudgetLine struct {
	model.BudgetLineItem
	Variances dealcalc.Variances `json:"variances"`
}

// BudgetService handles budget-table business logic operations.
type BudgetService struct {
	budgetRepo  *repository.BudgetRepository
	projectRepo *repository.ProjectRepository
}

// NewBudgetService creates a new BudgetService with the provided repository dependencies.
func NewBudgetService(budgetRepo *repository.BudgetRepository, projectRepo *repository.ProjectRepository) *BudgetService {
	return &BudgetService{
		budgetRepo:  budgetRepo,
		projectRepo: projectRepo,
	}
}

// GetBudget retrieves a project's budget lines with variances computed.
func (s *BudgetService) GetBudget(projectID string) ([]BudgetLine, error) {
	if _, err := s.projectRepo.GetProjectOnID(projectID); err != nil {
		return nil, err
	}

	items, err := s.budgetRepo.GetLineItemsOnProjectID(projectID)
	if err != nil {
		return nil, err
	}

	lines := make([]BudgetLine, len(items))
	for i, item := range items {
		lines[i] = withVariances(item)
	}

	return lines, nil
}

// GetLine retrieves a single budget line with variances computed.
func (s *BudgetService) GetLine(lineID string) (BudgetLine, error) {
	item, err := s.budgetRepo.GetLineItemOnID(lineID)
	if err != nil {
		return BudgetLine{}, err
	}
	return withVariances(item), nil
}

// CreateLine adds a budget line to a project.
func (s *BudgetService) CreateLine(projectID string, req request.CreateBudgetLineRequest) (BudgetLine, error) {
	if _, err := s.projectRepo.GetProjectOnID(projectID); err != nil {
		return BudgetLine{}, err
	}

	item := model.BudgetLineItem{
		ID:                 uuid.New().String(),
		ProjectID:          projectID,
		Category:           req.Category,
		Item:               req.Item,
		Qty:                req.Qty,
		Unit:               req.Unit,
		Rate:               req.Rate,
		UnderwritingAmount: req.UnderwritingAmount,
		ForecastAmount:     req.ForecastAmount,
		ActualAmount:       req.ActualAmount,
	}

	if err := s.budgetRepo.CreateLineItem(item); err != nil {
		return BudgetLine{}, err
	}

	item.CreatedAt = time.Now().UTC()

	return withVariances(item), nil
}

// UpdateLine applies a partial update to a budget line.
func (s *BudgetService) UpdateLine(lineID string, req request.UpdateBudgetLineRequest) (BudgetLine, error) {
	item, err := s.budgetRepo.GetLineItemOnID(lineID)
	if err != nil {
		return BudgetLine{}, err
	}

	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Item != nil {
		item.Item = *req.Item
	}
	if req.Qty != nil {
		item.Qty = *req.Qty
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Rate != nil {
		item.Rate = *req.Rate
	}
	if req.UnderwritingAmount != nil {
		item.UnderwritingAmount = *req.UnderwritingAmount
	}
	if req.ForecastAmount != nil {
		item.ForecastAmount = *req.ForecastAmount
	}
	if req.ClearActual {
		item.ActualAmount = nil
	} else if req.ActualAmount != nil {
		item.ActualAmount = req.ActualAmount
	}

	if err := s.budgetRepo.UpdateLineItem(item); err != nil {
		return BudgetLine{}, err
	}

	return withVariances(item), nil
}

// DeleteLine removes a budget line.
func (s *BudgetService) DeleteLine(lineID string) error {
	return s.budgetRepo.DeleteLineItem(lineID)
}

// GetCategoryRollup aggregates a project's budget per category with
// variances computed on the category totals. Categories appear in
// alphabetical order; categories without lines are omitted.
func (s *BudgetService) GetCategoryRollup(projectID string) ([]model.CategoryRollup, error) {
	lines, err := s.GetBudget(projectID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]*model.CategoryRollup)

	for _, line := range lines {
		rollup, ok := byCategory[line.Category]
		if !ok {
			rollup = &model.CategoryRollup{Category: line.Category}
			byCategory[line.Category] = rollup
		}

		rollup.LineCount++
		rollup.Underwriting += line.UnderwritingAmount
		rollup.Forecast += line.ForecastAmount
		if line.ActualAmount != nil {
			rollup.Actual += *line.ActualAmount
		}
	}

	rollups := make([]model.CategoryRollup, 0, len(byCategory))
	for _, rollup := range byCategory {
		actual := rollup.Actual
		v := dealcalc.ComputeVariances(rollup.Underwriting, rollup.Forecast, &actual)
		rollup.ForecastVariance = round(v.Forecast)
		rollup.ActualVariance = round(v.Actual)
		rollup.TotalVariance = round(v.Total)
		rollup.Underwriting = round(rollup.Underwriting)
		rollup.Forecast = round(rollup.Forecast)
		rollup.Actual = round(actual)
		rollups = append(rollups, *rollup)
	}

	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].Category < rollups[j].Category
	})

	return rollups, nil
}

// GetCategorySubtotals returns per-category underwriting subtotals, used by
// the category_weighted contingency method.
func (s *BudgetService) GetCategorySubtotals(projectID string) (map[string]float64, error) {
	return s.budgetRepo.GetCategorySubtotalsOnProjectID(projectID)
}

func withVariances(item model.BudgetLineItem) BudgetLine {
	return BudgetLine{
		BudgetLineItem: item,
		Variances: dealcalc.ComputeVariances(
			item.UnderwritingAmount,
			item.ForecastAmount,
			item.ActualAmount,
		),
	}
}
