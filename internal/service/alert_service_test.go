package service_test

import (
	"testing"
	"time"

	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/service"
	"github.com/mdejong/Flip-Budget-Backend/internal/testutil"
)

func countKind(alerts []service.Alert, kind string) int {
	n := 0
	for _, a := range alerts {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// TestAlertService_Run tests the nightly sweep.
//
// WHY: Alerts are the only part of the system that acts without a request.
// The sweep must flag exactly the draws inside the due window and the budget
// lines past the variance threshold, and nothing else.
func TestAlertService_Run(t *testing.T) {
	t.Run("flags draws due within the window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAlertService(t, db)

		project := testutil.CreateProject(t, db, "Oak St")

		// Default window is 7 days
		testutil.NewDraw(project.ID).WithAmount(10000).
			WithDueDate(time.Now().UTC().AddDate(0, 0, 3)).Build(t, db)
		testutil.NewDraw(project.ID).WithNumber(2).WithAmount(5000).
			WithDueDate(time.Now().UTC().AddDate(0, 0, 30)).Build(t, db)

		alerts, err := svc.Run()
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if got := countKind(alerts, service.AlertDrawDue); got != 1 {
			t.Fatalf("Expected 1 draw-due alert, got %d", got)
		}
		if alerts[0].Amount != 10000 {
			t.Errorf("Expected alert amount 10000, got %v", alerts[0].Amount)
		}
	})

	t.Run("ignores paid and cancelled draws", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAlertService(t, db)

		project := testutil.CreateProject(t, db, "Oak St")

		due := time.Now().UTC().AddDate(0, 0, 1)
		testutil.NewDraw(project.ID).WithDueDate(due).Paid(time.Now()).Build(t, db)
		testutil.NewDraw(project.ID).WithNumber(2).WithDueDate(due).
			WithStatus(model.DrawCancelled).Build(t, db)

		alerts, err := svc.Run()
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if got := countKind(alerts, service.AlertDrawDue); got != 0 {
			t.Errorf("Expected no draw-due alerts, got %d", got)
		}
	})

	t.Run("flags budget lines past the variance threshold", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAlertService(t, db)

		project := testutil.CreateProject(t, db, "Oak St")

		// 20% over underwriting, past the default 10% threshold
		testutil.NewBudgetLine(project.ID).WithAmounts(5000, 5000).WithActual(6000).Build(t, db)
		// 5% over, inside the threshold
		testutil.NewBudgetLine(project.ID).WithItem("Appliances").
			WithAmounts(4000, 4000).WithActual(4200).Build(t, db)
		// Under budget
		testutil.NewBudgetLine(project.ID).WithItem("Backsplash").
			WithAmounts(1000, 1000).WithActual(800).Build(t, db)

		alerts, err := svc.Run()
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if got := countKind(alerts, service.AlertBudgetOverrun); got != 1 {
			t.Fatalf("Expected 1 overrun alert, got %d", got)
		}

		var overrun service.Alert
		for _, a := range alerts {
			if a.Kind == service.AlertBudgetOverrun {
				overrun = a
			}
		}
		if overrun.Amount != 1000 {
			t.Errorf("Expected overrun amount 1000, got %v", overrun.Amount)
		}
		if overrun.ProjectID != project.ID {
			t.Errorf("Expected project ID %s, got %s", project.ID, overrun.ProjectID)
		}
	})

	t.Run("skips lines with no recorded spend", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAlertService(t, db)

		project := testutil.CreateProject(t, db, "Oak St")
		testutil.NewBudgetLine(project.ID).WithAmounts(5000, 9000).Build(t, db)

		alerts, err := svc.Run()
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if got := countKind(alerts, service.AlertBudgetOverrun); got != 0 {
			t.Errorf("Expected no overrun alerts without actuals, got %d", got)
		}
	})

	t.Run("returns an empty slice on a quiet night", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAlertService(t, db)

		testutil.CreateProject(t, db, "Oak St")

		alerts, err := svc.Run()
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if len(alerts) != 0 {
			t.Errorf("Expected no alerts, got %d", len(alerts))
		}
	})
}
