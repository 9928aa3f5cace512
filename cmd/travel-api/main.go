// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wanderwise/internal/ai"
	"wanderwise/internal/config"
	httptransport "wanderwise/internal/http"
	"wanderwise/internal/modules/planner"
	"wanderwise/internal/modules/traffic"
	"wanderwise/internal/modules/weather"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	llm, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer llm.Close()

	weatherSvc := weather.NewService(cfg.Weather.GeocodeBaseURL, cfg.Weather.ForecastBaseURL)
	plannerSvc := planner.NewService(llm, weatherSvc)

	var trafficSvc *traffic.Service
	if cfg.Maps.APIKey != "" {
		trafficSvc, err = traffic.NewService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	} else {
		log.Print("GOOGLE_MAPS_API_KEY not set; traffic estimation disabled")
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Planner:   plannerSvc,
		Traffic:   trafficSvc,
		ImagesDir: cfg.Images.Dir,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("travel-api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
