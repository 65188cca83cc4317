package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/handlers"
	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/dealcalc"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/testutil"
)

func newSettingsHandler(t *testing.T) *handlers.SettingsHandler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return handlers.NewSettingsHandler(
		testutil.NewTestSettingsService(t, db),
		testutil.NewTestDealService(t, db),
	)
}

func TestSettingsHandler_Settings(t *testing.T) {
	t.Run("GET settings materializes the default profile on first read", func(t *testing.T) {
		handler := newSettingsHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
		w := httptest.NewRecorder()

		handler.Settings(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.SettingsRecord
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.ID == "" {
			t.Error("Expected a generated settings ID")
		}
		if response.Profile.MAO.Method != dealcalc.MAOSeventyRule {
			t.Errorf("Expected default MAO method 'seventy_rule', got '%s'", response.Profile.MAO.Method)
		}
		if response.Profile.Contingency.DefaultPercent != 10 {
			t.Errorf("Expected default contingency 10, got %v", response.Profile.Contingency.DefaultPercent)
		}
		if response.Profile.Selling.DefaultPercent != 8 {
			t.Errorf("Expected default selling percent 8, got %v", response.Profile.Selling.DefaultPercent)
		}
	})
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	t.Run("PUT settings replaces the profile", func(t *testing.T) {
		handler := newSettingsHandler(t)

		profile := dealcalc.DefaultSettings()
		profile.MAO.Method = dealcalc.MAOCustomPercentage
		profile.MAO.ARVMultiplier = 0.75
		profile.Contingency.DefaultPercent = 15

		body := request.UpdateSettingsRequest{Profile: profile}
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/settings", body, nil)
		w := httptest.NewRecorder()

		handler.UpdateSettings(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.SettingsRecord
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.Profile.MAO.Method != dealcalc.MAOCustomPercentage {
			t.Errorf("Expected MAO method 'custom_percentage', got '%s'", response.Profile.MAO.Method)
		}
		if response.Profile.MAO.ARVMultiplier != 0.75 {
			t.Errorf("Expected ARV multiplier 0.75, got %v", response.Profile.MAO.ARVMultiplier)
		}
		if response.Profile.Contingency.DefaultPercent != 15 {
			t.Errorf("Expected contingency 15, got %v", response.Profile.Contingency.DefaultPercent)
		}
	})

	t.Run("PUT settings rejects an unknown method selector", func(t *testing.T) {
		handler := newSettingsHandler(t)

		profile := dealcalc.DefaultSettings()
		profile.ROI.Method = "compounded_daily"

		body := request.UpdateSettingsRequest{Profile: profile}
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/settings", body, nil)
		w := httptest.NewRecorder()

		handler.UpdateSettings(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("PUT settings rejects an out-of-range rate", func(t *testing.T) {
		handler := newSettingsHandler(t)

		profile := dealcalc.DefaultSettings()
		profile.Selling.DefaultPercent = 120

		body := request.UpdateSettingsRequest{Profile: profile}
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/settings", body, nil)
		w := httptest.NewRecorder()

		handler.UpdateSettings(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

// TestSettingsHandler_Preview tests the POST /api/settings/preview endpoint.
//
// WHY: Preview is the quick-calculator surface. With no profile supplied the
// inputs' own percentages must drive the calculation, so the numbers here
// pin down the documented worked example end to end.
func TestSettingsHandler_Preview(t *testing.T) {
	workedInputs := func() dealcalc.Inputs {
		arv := 250000.0
		price := 150000.0
		return dealcalc.Inputs{
			ARV:                &arv,
			PurchasePrice:      &price,
			RehabBudget:        50000,
			ClosingCosts:       3000,
			HoldingMonthly:     1500,
			HoldMonths:         4,
			SellingCostPercent: 8,
			ContingencyPercent: 10,
		}
	}

	t.Run("POST preview without profile uses the inputs' percentages", func(t *testing.T) {
		handler := newSettingsHandler(t)

		body := request.PreviewRequest{Inputs: workedInputs()}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/settings/preview", body, nil)
		w := httptest.NewRecorder()

		handler.Preview(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var report dealcalc.Report
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if report.Contingency != 5000 {
			t.Errorf("Expected contingency 5000, got %v", report.Contingency)
		}
		if report.HoldingCosts != 6000 {
			t.Errorf("Expected holding costs 6000, got %v", report.HoldingCosts)
		}
		if report.SellingCosts != 20000 {
			t.Errorf("Expected selling costs 20000, got %v", report.SellingCosts)
		}
		if report.TotalInvestment != 214000 {
			t.Errorf("Expected total investment 214000, got %v", report.TotalInvestment)
		}
		if report.GrossProfit != 16000 {
			t.Errorf("Expected gross profit 16000, got %v", report.GrossProfit)
		}
		if report.ROIPercent != 7.48 {
			t.Errorf("Expected ROI 7.48, got %v", report.ROIPercent)
		}
		if report.MAO != 111000 {
			t.Errorf("Expected MAO 111000, got %v", report.MAO)
		}
		if report.Spread == nil || *report.Spread != -39000 {
			t.Errorf("Expected spread -39000, got %v", report.Spread)
		}
		if report.Quality != dealcalc.QualityMarginal {
			t.Errorf("Expected quality 'marginal', got '%s'", report.Quality)
		}
		if report.Sensitivity == nil {
			t.Error("Expected sensitivity table when ARV and price are both known")
		}
	})

	t.Run("POST preview with a profile override uses the override", func(t *testing.T) {
		handler := newSettingsHandler(t)

		profile := dealcalc.DefaultSettings()
		profile.Contingency.DefaultPercent = 20

		body := request.PreviewRequest{Inputs: workedInputs(), Profile: &profile}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/settings/preview", body, nil)
		w := httptest.NewRecorder()

		handler.Preview(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var report dealcalc.Report
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if report.Contingency != 10000 {
			t.Errorf("Expected contingency 10000 at 20 percent, got %v", report.Contingency)
		}
	})

	t.Run("POST preview rejects an invalid profile override", func(t *testing.T) {
		handler := newSettingsHandler(t)

		profile := dealcalc.DefaultSettings()
		profile.Holding.Method = "prepaid"

		body := request.PreviewRequest{Inputs: workedInputs(), Profile: &profile}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/settings/preview", body, nil)
		w := httptest.NewRecorder()

		handler.Preview(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
