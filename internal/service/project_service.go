package service

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/repository"
)

// ProjectService handles project-related business logic operations.
type ProjectService struct {
	projectRepo *repository.ProjectRepository
	budgetRepo  *repository.BudgetRepository
	drawRepo    *repository.DrawRepository
	noteRepo    *repository.NoteRepository
	photoRepo   *repository.PhotoRepository
}

// NewProjectService creates a new ProjectService with the provided repository dependencies.
func NewProjectService(
	projectRepo *repository.ProjectRepository,
	budgetRepo *repository.BudgetRepository,
	drawRepo *repository.DrawRepository,
	noteRepo *repository.NoteRepository,
	photoRepo *repository.PhotoRepository,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		budgetRepo:  budgetRepo,
		drawRepo:    drawRepo,
		noteRepo:    noteRepo,
		photoRepo:   photoRepo,
	}
}

// GetProjects retrieves projects matching the filter.
func (s *ProjectService) GetProjects(filter model.ProjectFilter) ([]model.Project, error) {
	return s.projectRepo.GetProjects(filter)
}

// GetProject retrieves a single project by ID.
func (s *ProjectService) GetProject(projectID string) (model.Project, error) {
	return s.projectRepo.GetProjectOnID(projectID)
}

// CreateProject creates a new project from the request. An empty status
// defaults to lead.
func (s *ProjectService) CreateProject(req request.CreateProjectRequest) (model.Project, error) {
	status := req.Status
	if status == "" {
		status = model.StatusLead
	}

	project := model.Project{
		ID:                  uuid.New().String(),
		Name:                req.Name,
		Address:             req.Address,
		City:                req.City,
		State:               req.State,
		Zip:                 req.Zip,
		Status:              status,
		ARV:                 req.ARV,
		PurchasePrice:       req.PurchasePrice,
		RehabBudget:         req.RehabBudget,
		ClosingCosts:        req.ClosingCosts,
		HoldingCostsMonthly: req.HoldingCostsMonthly,
		HoldMonths:          req.HoldMonths,
		SellingCostPercent:  req.SellingCostPercent,
		ContingencyPercent:  req.ContingencyPercent,
	}

	if err := s.projectRepo.CreateProject(project); err != nil {
		return model.Project{}, err
	}

	project.CreatedAt = time.Now().UTC()
	project.UpdatedAt = project.CreatedAt

	return project, nil
}

// UpdateProject applies a partial update to an existing project and returns
// the updated record.
func (s *ProjectService) UpdateProject(projectID string, req request.UpdateProjectRequest) (model.Project, error) {
	project, err := s.projectRepo.GetProjectOnID(projectID)
	if err != nil {
		return model.Project{}, err
	}

	applyProjectUpdate(&project, req)

	if err := s.projectRepo.UpdateProject(project); err != nil {
		return model.Project{}, err
	}

	return s.projectRepo.GetProjectOnID(projectID)
}

// DeleteProject removes a project and its dependent rows.
func (s *ProjectService) DeleteProject(projectID string) error {
	return s.projectRepo.DeleteProject(projectID)
}

// GetProjectSummary aggregates a project's budget totals, draw totals and
// media counts. The four repository reads are independent and fan out
// concurrently. All monetary values are rounded to two decimal places.
func (s *ProjectService) GetProjectSummary(projectID string) (model.ProjectSummary, error) {
	project, err := s.projectRepo.GetProjectOnID(projectID)
	if err != nil {
		return model.ProjectSummary{}, err
	}

	summary := model.ProjectSummary{Project: project}

	var g errgroup.Group

	g.Go(func() error {
		underwriting, forecast, actual, lineCount, err := s.budgetRepo.GetTotalsOnProjectID(projectID)
		if err != nil {
			return err
		}
		summary.BudgetUnderwriting = round(underwriting)
		summary.BudgetForecast = round(forecast)
		summary.BudgetActual = round(actual)
		summary.BudgetLineCount = lineCount
		return nil
	})

	g.Go(func() error {
		totals, err := s.drawRepo.GetTotalsOnProjectID(projectID)
		if err != nil {
			return err
		}
		summary.DrawsScheduled = round(totals.Scheduled)
		summary.DrawsPaid = round(totals.Paid)
		summary.DrawsRemaining = round(totals.Remaining)
		return nil
	})

	g.Go(func() error {
		count, err := s.photoRepo.CountOnProjectID(projectID)
		if err != nil {
			return err
		}
		summary.PhotoCount = count
		return nil
	})

	g.Go(func() error {
		count, err := s.noteRepo.CountOnProjectID(projectID)
		if err != nil {
			return err
		}
		summary.NoteCount = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.ProjectSummary{}, err
	}

	return summary, nil
}

func applyProjectUpdate(project *model.Project, req request.UpdateProjectRequest) {
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Address != nil {
		project.Address = *req.Address
	}
	if req.City != nil {
		project.City = *req.City
	}
	if req.State != nil {
		project.State = *req.State
	}
	if req.Zip != nil {
		project.Zip = *req.Zip
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.ARV != nil {
		project.ARV = req.ARV
	}
	if req.PurchasePrice != nil {
		project.PurchasePrice = req.PurchasePrice
	}
	if req.RehabBudget != nil {
		project.RehabBudget = *req.RehabBudget
	}
	if req.ClosingCosts != nil {
		project.ClosingCosts = *req.ClosingCosts
	}
	if req.HoldingCostsMonthly != nil {
		project.HoldingCostsMonthly = *req.HoldingCostsMonthly
	}
	if req.HoldMonths != nil {
		project.HoldMonths = *req.HoldMonths
	}
	if req.SellingCostPercent != nil {
		project.SellingCostPercent = *req.SellingCostPercent
	}
	if req.ContingencyPercent != nil {
		project.ContingencyPercent = *req.ContingencyPercent
	}
}
