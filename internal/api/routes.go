package api

import (
	"net/http"

	"github.com/prompthub/prompthub/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(mux, domain.Prompts.Handler().Routes())
	routes.Register(mux, domain.Groups.Handler().Routes())
	routes.Register(mux, domain.Workflows.Handler().Routes())
	routes.Register(mux, domain.Contact.Handler().Routes())
}
