package handler

import (
	"net/http"

	"github.com/vfg2006/panel-billing-api/internal/api/handler/router"
	"github.com/vfg2006/panel-billing-api/internal/usecases/billing"
	"github.com/vfg2006/panel-billing-api/internal/usecases/paneling"
	"github.com/vfg2006/panel-billing-api/internal/usecases/reporting"
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

func Panels(service paneling.PanelService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/panels",
			Method:  http.MethodGet,
			Handler: ListPanels(service),
		},
		{
			Path:    "/v1/panels/:id",
			Method:  http.MethodGet,
			Handler: GetPanel(service),
		},
	}
}

func Billing(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/panels/:id/billing/:period/recalculate",
			Method:  http.MethodPost,
			Handler: RecalculatePanelBilling(service),
		},
		{
			Path:    "/v1/billing/:period/regenerate",
			Method:  http.MethodPost,
			Handler: RegenerateMonthBilling(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/billing/report",
			Method:  http.MethodGet,
			Handler: GetMonthlyBillingReport(service),
		},
		{
			Path:    "/v1/billing/report/export",
			Method:  http.MethodGet,
			Handler: ExportMonthlyBillingReport(service),
		},
		{
			Path:    "/v1/billing/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
