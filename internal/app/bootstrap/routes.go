// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	contactfeature "github.com/dalemusser/folio/internal/app/features/contact"
	healthfeature "github.com/dalemusser/folio/internal/app/features/health"
	projectsfeature "github.com/dalemusser/folio/internal/app/features/projects"
	resumefeature "github.com/dalemusser/folio/internal/app/features/resume"
	servicesfeature "github.com/dalemusser/folio/internal/app/features/services"
	"github.com/dalemusser/folio/internal/app/system/requestlog"
	"github.com/dalemusser/folio/internal/app/system/respond"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The router carries the request-id and
// request-logging middleware, CORS restricted to the configured frontend
// origin, and JSON catch-alls so unmatched paths and wrong verbs still
// answer in the API's envelope.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// The error detail field is only exposed outside production.
	rsp := respond.New(logger, coreCfg.Env != "prod")

	r := chi.NewRouter()
	r.Use(requestlog.RequestID)
	r.Use(requestlog.Logger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{appCfg.ClientURL},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", requestlog.Header},
		ExposedHeaders: []string{requestlog.Header},
		MaxAge:         300,
	}))

	r.NotFound(rsp.NotFoundHandler)
	r.MethodNotAllowed(rsp.MethodNotAllowedHandler)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.FolioMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	db := deps.FolioMongoDatabase
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/projects", projectsfeature.Routes(projectsfeature.NewHandler(db, rsp, logger)))
		r.Mount("/services", servicesfeature.Routes(servicesfeature.NewHandler(db, rsp, logger)))
		r.Mount("/contact", contactfeature.Routes(contactfeature.NewHandler(db, rsp, logger)))
		r.Mount("/resume", resumefeature.Routes(resumefeature.NewHandler(db, rsp, logger)))
	})

	return r, nil
}
