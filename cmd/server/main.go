package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"

	"owbridge/internal/clock"
	"owbridge/internal/config"
	"owbridge/internal/controller"
	"owbridge/internal/forwarder"
	"owbridge/internal/middleware"
	"owbridge/internal/repository"
	"owbridge/internal/routes"
	"owbridge/internal/service"
)

func main() {
	cfg := config.LoadConfig()

	// Wire the report pipeline: clock + sensor repository into the
	// service, one service per sensor repository variant.
	clk := clock.NewSystemClock()
	liveService := service.NewReportService(clk,
		repository.NewOneWireRepository(cfg.DeviceListPath, cfg.SlavePathTemplate))
	testService := service.NewReportService(clk, repository.NewStaticRepository())
	ctrl := controller.NewReportController(liveService, testService)

	router := routes.NewRouter(ctrl)

	// CORS setup
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Content-Type"},
	})
	handler := handlers.LoggingHandler(os.Stdout, middleware.RequestID(c.Handler(router)))

	if cfg.PushURL != "" {
		fwd := forwarder.NewForwarder(liveService, cfg.PushURL, cfg.PushInterval)
		go fwd.Run(context.Background())
		log.Printf("Report push enabled: %s every %s", cfg.PushURL, cfg.PushInterval)
	}

	log.Printf("Server is running on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal("Error starting server:", err)
	}
}
