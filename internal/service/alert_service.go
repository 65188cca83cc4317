package service

import (
	"fmt"
	"math"
	"net/smtp"
	"strings"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/mdejong/Flip-Budget-Backend/internal/config"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/repository"
)

// Alert kinds.
const (
	AlertDrawDue       = "draw_due"
	AlertBudgetOverrun = "budget_overrun"
)

// Alert is one finding from the nightly sweep.
type Alert struct {
	Kind      string  `json:"kind"`
	ProjectID string  `json:"projectId"`
	Message   string  `json:"message"`
	Amount    float64 `json:"amount"`
}

// AlertService runs the nightly sweep: draws coming due and budget lines
// whose variance breaches the configured threshold. Findings are logged and,
// when SMTP is configured, mailed as a single digest.
type AlertService struct {
	projectRepo *repository.ProjectRepository
	budgetRepo  *repository.BudgetRepository
	drawRepo    *repository.DrawRepository
	settingsSvc *SettingsService
	smtp        config.SMTPConfig
	log         *logrus.Logger
}

// NewAlertService creates a new AlertService with the provided dependencies.
func NewAlertService(
	projectRepo *repository.ProjectRepository,
	budgetRepo *repository.BudgetRepository,
	drawRepo *repository.DrawRepository,
	settingsSvc *SettingsService,
	smtpCfg config.SMTPConfig,
	log *logrus.Logger,
) *AlertService {
	return &AlertService{
		projectRepo: projectRepo,
		budgetRepo:  budgetRepo,
		drawRepo:    drawRepo,
		settingsSvc: settingsSvc,
		smtp:        smtpCfg,
		log:         log,
	}
}

// Run executes one sweep and returns the findings. Scheduler and tests both
// call this directly.
func (s *AlertService) Run() ([]Alert, error) {
	record, err := s.settingsSvc.GetSettings(DefaultUserID)
	if err != nil {
		return nil, err
	}
	thresholds := record.Profile.Alerts

	alerts := []Alert{}

	dueAlerts, err := s.sweepDraws(thresholds.DrawDueSoonDays)
	if err != nil {
		return nil, err
	}
	alerts = append(alerts, dueAlerts...)

	overrunAlerts, err := s.sweepBudgets(thresholds.VariancePercent)
	if err != nil {
		return nil, err
	}
	alerts = append(alerts, overrunAlerts...)

	for _, a := range alerts {
		s.log.WithFields(logrus.Fields{
			"kind":       a.Kind,
			"project_id": a.ProjectID,
			"amount":     a.Amount,
		}).Warn(a.Message)
	}

	if len(alerts) > 0 && s.smtp.Host != "" {
		if err := s.sendDigest(alerts); err != nil {
			s.log.WithError(err).Error("failed to send alert digest")
		}
	}

	return alerts, nil
}

// sweepDraws flags scheduled or requested draws due within the window.
func (s *AlertService) sweepDraws(dueSoonDays int) ([]Alert, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, dueSoonDays)

	draws, err := s.drawRepo.GetDrawsDueBefore(cutoff)
	if err != nil {
		return nil, err
	}

	alerts := make([]Alert, 0, len(draws))
	for _, d := range draws {
		alerts = append(alerts, Alert{
			Kind:      AlertDrawDue,
			ProjectID: d.ProjectID,
			Message:   fmt.Sprintf("draw #%d (%s) due %s", d.Number, d.Description, d.DueDate.Format("2006-01-02")),
			Amount:    round(d.Amount),
		})
	}

	return alerts, nil
}

// sweepBudgets flags lines on active projects whose total variance exceeds
// the threshold percentage of the underwriting amount.
func (s *AlertService) sweepBudgets(variancePercent float64) ([]Alert, error) {
	projects, err := s.projectRepo.GetProjects(model.ProjectFilter{})
	if err != nil {
		return nil, err
	}

	alerts := []Alert{}

	for _, project := range projects {
		lines, err := s.budgetRepo.GetLineItemsOnProjectID(project.ID)
		if err != nil {
			return nil, err
		}

		for _, line := range lines {
			if line.UnderwritingAmount <= 0 || line.ActualAmount == nil {
				continue
			}

			overrun := *line.ActualAmount - line.UnderwritingAmount
			if overrun <= 0 {
				continue
			}

			overrunPercent := overrun / line.UnderwritingAmount * 100
			if overrunPercent < variancePercent {
				continue
			}

			alerts = append(alerts, Alert{
				Kind:      AlertBudgetOverrun,
				ProjectID: project.ID,
				Message: fmt.Sprintf("%s / %s is %.1f%% over underwriting",
					line.Category, line.Item, math.Round(overrunPercent*10)/10),
				Amount: round(overrun),
			})
		}
	}

	return alerts, nil
}

func (s *AlertService) sendDigest(alerts []Alert) error {
	var body strings.Builder
	fmt.Fprintf(&body, "%d alert(s) from the nightly sweep:\n\n", len(alerts))
	for _, a := range alerts {
		fmt.Fprintf(&body, "[%s] project %s: %s ($%.2f)\n", a.Kind, a.ProjectID, a.Message, a.Amount)
	}

	e := email.NewEmail()
	e.From = s.smtp.From
	e.To = []string{s.smtp.To}
	e.Subject = fmt.Sprintf("Flip Budget: %d alert(s)", len(alerts))
	e.Text = []byte(body.String())

	addr := fmt.Sprintf("%s:%s", s.smtp.Host, s.smtp.Port)
	var auth smtp.Auth
	if s.smtp.Username != "" {
		auth = smtp.PlainAuth("", s.smtp.Username, s.smtp.Password, s.smtp.Host)
	}

	return e.Send(addr, auth)
}
