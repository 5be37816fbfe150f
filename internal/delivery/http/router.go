package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"mergingtonactivities/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// staticDir is the directory served under /static/; the root path redirects
// there for the browser UI.
func NewRouter(activityController *controllers.ActivityController, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// API routes. Email is passed as a query parameter for compatibility
	// with existing clients.
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{activityName}/signup", activityController.Signup)
	mux.HandleFunc("DELETE /activities/{activityName}/unregister", activityController.Unregister)

	// Browser UI
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
