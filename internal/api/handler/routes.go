package handler

import (
	"net/http"

	"github.com/vfg2006/magnus-console/internal/api/handler/router"
	"github.com/vfg2006/magnus-console/internal/usecases/dashboarding"
	"github.com/vfg2006/magnus-console/internal/usecases/ingesting"
	"github.com/vfg2006/magnus-console/internal/usecases/sectioning"
	"github.com/vfg2006/magnus-console/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(checker ConnectionChecker, dashboard dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/readiness",
			Method:  http.MethodGet,
			Handler: ReadinessHandler(checker, dashboard.Viewers),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, settings sectioning.SettingsInfo) []router.Route {
	viewer := ViewerMiddleware(service)

	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: middlewares{middleware.AllRoles(), viewer},
		},
		{
			Path:        "/v1/dashboard/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDashboard(service),
			Middlewares: middlewares{middleware.AllRoles(), viewer},
		},
		{
			Path:        "/v1/dashboard/events",
			Method:      http.MethodGet,
			Handler:     DashboardEvents(),
			Middlewares: middlewares{middleware.AllRoles(), viewer},
		},
		{
			Path:        "/v1/dashboard/menu",
			Method:      http.MethodGet,
			Handler:     GetMenu(),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/sections/:section",
			Method:      http.MethodGet,
			Handler:     GetSection(service, settings),
			Middlewares: middlewares{middleware.AllRoles(), viewer},
		},
	}
}

func Ingest(service ingesting.IngestService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ingest/csv",
			Method:      http.MethodPost,
			Handler:     IngestCSV(service),
			Middlewares: middlewares{middleware.OperatorOnly()},
		},
		{
			Path:        "/v1/ingest/live-api",
			Method:      http.MethodPost,
			Handler:     IngestLiveAPI(service),
			Middlewares: middlewares{middleware.OperatorOnly()},
		},
		{
			Path:        "/v1/ingest/banks",
			Method:      http.MethodGet,
			Handler:     ListBanks(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.OperatorOnly()},
		},
		{
			Path:        "/v1/cron",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.OperatorOnly()},
		},
	}
}
