package service

import (
	"github.com/mdejong/Flip-Budget-Backend/internal/dealcalc"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/repository"
	"github.com/mdejong/Flip-Budget-Backend/internal/validation"
)

// DealService assembles calculation inputs from stored data and runs the
// deal engine. Reports are ephemeral: recomputed on every request, never
// persisted.
type DealService struct {
	projectRepo *repository.ProjectRepository
	budgetRepo  *repository.BudgetRepository
	settingsSvc *SettingsService
}

// NewDealService creates a new DealService with the provided dependencies.
func NewDealService(projectRepo *repository.ProjectRepository, budgetRepo *repository.BudgetRepository, settingsSvc *SettingsService) *DealService {
	return &DealService{
		projectRepo: projectRepo,
		budgetRepo:  budgetRepo,
		settingsSvc: settingsSvc,
	}
}

// GetDealReport computes the full metric set for a stored project using the
// user's calculation profile. Per-category budget subtotals are supplied so
// the category_weighted contingency method has real weights to work with.
func (s *DealService) GetDealReport(projectID, userID string) (dealcalc.Report, error) {
	project, err := s.projectRepo.GetProjectOnID(projectID)
	if err != nil {
		return dealcalc.Report{}, err
	}

	record, err := s.settingsSvc.GetSettings(userID)
	if err != nil {
		return dealcalc.Report{}, err
	}

	subtotals, err := s.budgetRepo.GetCategorySubtotalsOnProjectID(projectID)
	if err != nil {
		return dealcalc.Report{}, err
	}

	report := dealcalc.ComputeDealReportWithCategories(projectInputs(project), record.Profile, subtotals)

	return roundReport(report), nil
}

// Preview computes a report from ad-hoc inputs without touching stored
// projects. When no profile is supplied the inputs' own percentages drive a
// default profile, which is the quick-calculator path.
func (s *DealService) Preview(inputs dealcalc.Inputs, profile *dealcalc.Settings) (dealcalc.Report, error) {
	var settings dealcalc.Settings
	if profile != nil {
		if err := validation.ValidateSettings(*profile); err != nil {
			return dealcalc.Report{}, err
		}
		settings = *profile
	} else {
		settings = dealcalc.SettingsFromInputs(inputs)
	}

	return roundReport(dealcalc.ComputeDealReport(inputs, settings)), nil
}

// projectInputs maps a stored project onto the engine's input struct.
func projectInputs(p model.Project) dealcalc.Inputs {
	return dealcalc.Inputs{
		ARV:                p.ARV,
		PurchasePrice:      p.PurchasePrice,
		RehabBudget:        p.RehabBudget,
		ClosingCosts:       p.ClosingCosts,
		HoldingMonthly:     p.HoldingCostsMonthly,
		HoldMonths:         p.HoldMonths,
		SellingCostPercent: p.SellingCostPercent,
		ContingencyPercent: p.ContingencyPercent,
	}
}

// roundReport rounds every monetary and percentage output to two decimal
// places for the API surface. The engine itself stays unrounded.
func roundReport(r dealcalc.Report) dealcalc.Report {
	r.Contingency = round(r.Contingency)
	r.RehabWithContingency = round(r.RehabWithContingency)
	r.HoldingCosts = round(r.HoldingCosts)
	r.SellingCosts = round(r.SellingCosts)
	r.TotalInvestment = round(r.TotalInvestment)
	r.GrossProfit = round(r.GrossProfit)
	r.ROIPercent = round(r.ROIPercent)
	r.MAO = round(r.MAO)

	if r.Spread != nil {
		spread := round(*r.Spread)
		r.Spread = &spread
	}

	if r.Sensitivity != nil {
		sens := *r.Sensitivity
		sens.ARVDown5Profit = round(sens.ARVDown5Profit)
		sens.ARVDown10Profit = round(sens.ARVDown10Profit)
		sens.RehabUp10Profit = round(sens.RehabUp10Profit)
		sens.RehabUp20Profit = round(sens.RehabUp20Profit)
		sens.BreakEvenARV = round(sens.BreakEvenARV)
		sens.MaxPurchaseFor20ROI = round(sens.MaxPurchaseFor20ROI)
		r.Sensitivity = &sens
	}

	return r
}
