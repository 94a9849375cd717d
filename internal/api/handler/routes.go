package handler

import (
	"net/http"

	"github.com/vfg2006/printsmith-digest/internal/api/handler/router"
	"github.com/vfg2006/printsmith-digest/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Export(services ExportServices) []router.Route {
	operatorOnly := []func(http.Handler) http.Handler{middleware.OperatorOnly()}

	return []router.Route{
		{
			Path:        "/v1/export/status",
			Method:      http.MethodGet,
			Handler:     GetExportStatus(services),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/v1/export/run",
			Method:      http.MethodPost,
			Handler:     RunExport(services),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/v1/export/preview",
			Method:      http.MethodGet,
			Handler:     PreviewExport(services),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/v1/export/recent",
			Method:      http.MethodGet,
			Handler:     GetRecentExports(services),
			Middlewares: operatorOnly,
		},
	}
}
