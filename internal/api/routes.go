package api

import (
	"net/http"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/config"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/handler"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/middleware"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter(cfg *config.Config) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	// Toutes les routes /api résolvent l'utilisateur via ?user=
	apiRoutes := r.PathPrefix("/api").Subrouter()
	apiRoutes.Use(middleware.UserResolver(cfg.DefaultUserID))

	// Jobs
	apiRoutes.HandleFunc("/jobs", handler.GetJobs).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/jobs/refresh", handler.RefreshJobs).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/jobs/seed", handler.SeedJobs).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/jobs/{id}", handler.GetJobByID).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/jobs/{id}/apply", handler.ApplyToJob).Methods(http.MethodPost)

	// Applications
	apiRoutes.HandleFunc("/applications", handler.GetApplications).Methods(http.MethodGet)

	// Savings
	apiRoutes.HandleFunc("/savings", handler.GetSavings).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/savings/update", handler.UpdateSavings).Methods(http.MethodPost)

	// Tasks
	apiRoutes.HandleFunc("/tasks", handler.GetTasks).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/tasks", handler.CreateTask).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/tasks/import", handler.ImportTasks).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/tasks/export", handler.ExportTasks).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/tasks/{id}/complete", handler.CompleteTask).Methods(http.MethodPost)

	// Achievements & notifications
	apiRoutes.HandleFunc("/achievements", handler.GetAchievements).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/achievements/{kind}/unlock", handler.UnlockAchievement).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/notifications", handler.GetNotifications).Methods(http.MethodGet)

	// Terminal & pong
	apiRoutes.HandleFunc("/terminal/command", handler.ExecuteTerminalCommand).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/pong/score", handler.SubmitPongScore).Methods(http.MethodPost)

	// Dashboard
	apiRoutes.HandleFunc("/dashboard/stats", handler.GetDashboardStats).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/users/profile", handler.GetUserProfile).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/productivity/log", handler.GetProductivityLog).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
