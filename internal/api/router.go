package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/handlers"
	custommiddleware "github.com/mdejong/Flip-Budget-Backend/internal/api/middleware"
	"github.com/mdejong/Flip-Budget-Backend/internal/config"
	"github.com/mdejong/Flip-Budget-Backend/internal/service"
)

// Services bundles the service dependencies the router hands to handlers.
type Services struct {
	System   *service.SystemService
	Project  *service.ProjectService
	Budget   *service.BudgetService
	Vendor   *service.VendorService
	Draw     *service.DrawService
	Note     *service.NoteService
	Photo    *service.PhotoService
	Settings *service.SettingsService
	Deal     *service.DealService
	Export   *service.ExportService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svcs Services, cfg *config.Config, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.NewLogger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/project", func(r chi.Router) {
			projectHandler := handlers.NewProjectHandler(svcs.Project)
			budgetHandler := handlers.NewBudgetHandler(svcs.Budget)
			drawHandler := handlers.NewDrawHandler(svcs.Draw)
			noteHandler := handlers.NewNoteHandler(svcs.Note)
			photoHandler := handlers.NewPhotoHandler(svcs.Photo)
			dealHandler := handlers.NewDealHandler(svcs.Deal)
			exportHandler := handlers.NewExportHandler(svcs.Export)

			r.Get("/", projectHandler.Projects)
			r.Post("/", projectHandler.CreateProject)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)

				r.Get("/", projectHandler.GetProject)
				r.Put("/", projectHandler.UpdateProject)
				r.Delete("/", projectHandler.DeleteProject)
				r.Get("/summary", projectHandler.ProjectSummary)
				r.Get("/deal-report", dealHandler.DealReport)

				r.Get("/budget", budgetHandler.Budget)
				r.Post("/budget", budgetHandler.CreateBudgetLine)
				r.Get("/budget/rollup", budgetHandler.BudgetRollup)

				r.Get("/draw", drawHandler.Draws)
				r.Post("/draw", drawHandler.CreateDraw)
				r.Get("/draw/totals", drawHandler.DrawTotals)

				r.Get("/note", noteHandler.Notes)
				r.Post("/note", noteHandler.CreateNote)

				r.Get("/photo", photoHandler.Photos)
				r.Post("/photo", photoHandler.UploadPhoto)

				r.Get("/export/excel", exportHandler.ExportExcel)
				r.Get("/export/pdf", exportHandler.ExportPDF)
			})
		})

		r.Route("/budget-line/{uuid}", func(r chi.Router) {
			budgetHandler := handlers.NewBudgetHandler(svcs.Budget)
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Put("/", budgetHandler.UpdateBudgetLine)
			r.Delete("/", budgetHandler.DeleteBudgetLine)
		})

		r.Route("/draw/{uuid}", func(r chi.Router) {
			drawHandler := handlers.NewDrawHandler(svcs.Draw)
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Put("/", drawHandler.UpdateDraw)
			r.Delete("/", drawHandler.DeleteDraw)
		})

		r.Route("/note/{uuid}", func(r chi.Router) {
			noteHandler := handlers.NewNoteHandler(svcs.Note)
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Put("/", noteHandler.UpdateNote)
			r.Delete("/", noteHandler.DeleteNote)
		})

		r.Route("/photo/{uuid}", func(r chi.Router) {
			photoHandler := handlers.NewPhotoHandler(svcs.Photo)
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Get("/file", photoHandler.DownloadPhoto)
			r.Delete("/", photoHandler.DeletePhoto)
		})

		r.Route("/vendor", func(r chi.Router) {
			vendorHandler := handlers.NewVendorHandler(svcs.Vendor)

			r.Get("/", vendorHandler.Vendors)
			r.Post("/", vendorHandler.CreateVendor)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", vendorHandler.GetVendor)
				r.Put("/", vendorHandler.UpdateVendor)
				r.Delete("/", vendorHandler.DeleteVendor)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(svcs.Settings, svcs.Deal)
			r.Get("/", settingsHandler.Settings)
			r.Put("/", settingsHandler.UpdateSettings)
			r.Post("/preview", settingsHandler.Preview)
		})
	})

	return r
}
