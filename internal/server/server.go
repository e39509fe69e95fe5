package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Fuad-Aliyev/employee-api/internal/metrics"
	"github.com/Fuad-Aliyev/employee-api/internal/services/employees"
)

// NewRouter assembles the echo instance with the REST routes, health
// check and metrics endpoint.
func NewRouter(
	log *slog.Logger,
	reg *prometheus.Registry,
	dtb DBPinger,
	mtr *metrics.Metrics,
	svc employees.EmployeeServiceIface,
) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.Use(middleware.Recover())
	router.Use(middleware.CORS())
	router.Use(requestMetrics(mtr))

	handler := NewEmployeeHandler(log, svc)
	api := router.Group("/api")
	api.POST("/employees", handler.CreateEmployee)
	api.GET("/employees", handler.GetAllEmployees)
	api.GET("/employees/:id", handler.GetEmployeeByID)
	api.PUT("/employees/:id", handler.UpdateEmployee)
	api.DELETE("/employees/:id", handler.DeleteEmployee)

	router.GET("/healthz", echo.WrapHandler(NewHealthChecker(dtb, log)))
	router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	return router
}

// StartServer runs the HTTP server until the context is cancelled, then
// shuts it down gracefully.
func StartServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	dtb DBPinger,
	mtr *metrics.Metrics,
	svc employees.EmployeeServiceIface,
	port int,
) {
	var (
		headerTimeout   = 5 * time.Second
		shutdownTimeout = 10 * time.Second
	)

	router := NewRouter(log, reg, dtb, mtr, svc)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: headerTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(shutdownCtx, "Failed to shutdown HTTP server", "error", err)
		}
	}()

	log.InfoContext(ctx, "HTTP server listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "HTTP server failed", "error", err)
	}
}

// requestMetrics observes request duration and counts responses by status.
func requestMetrics(mtr *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			startTime := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			method := c.Request().Method
			path := c.Path()
			mtr.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(startTime).Seconds())
			mtr.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()

			return nil
		}
	}
}
