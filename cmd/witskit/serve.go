package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/Critlist/witskit/internal/api"
	"github.com/Critlist/witskit/internal/config"
	"github.com/Critlist/witskit/internal/db"
	"github.com/Critlist/witskit/internal/streammux"
	"github.com/Critlist/witskit/internal/wits"
)

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to JSON configuration file")
	listen := fs.String("listen", "", "HTTP listen address (overrides config)")
	source := fs.String("source", "", "WITS source address (overrides config)")
	dbFlag := fs.String("db", "", "SQLite database path (overrides config)")
	units := fs.String("units", "", "Unit system for decoded values: fps or metric (overrides config)")
	requestInterval := fs.Duration("request-interval", 0, "Poll the source at this interval (overrides config)")
	mock := fs.Bool("mock", false, "Serve a built-in mock feed instead of a real source")
	fs.Parse(args)

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	listenAddr := cfg.GetListenAddr()
	if *listen != "" {
		listenAddr = *listen
	}
	sourceAddr := cfg.GetSource()
	if *source != "" {
		sourceAddr = *source
	}
	databasePath := cfg.GetDBPath()
	if *dbFlag != "" {
		databasePath = *dbFlag
	}
	unitSystem := cfg.GetUnits()
	if *units != "" {
		unitSystem = strings.ToLower(*units)
	}
	switch unitSystem {
	case "fps", "field", "metric", "si":
	default:
		log.Fatalf("Invalid units %q: expected fps or metric", unitSystem)
	}
	interval := cfg.GetRequestInterval()
	if *requestInterval > 0 {
		interval = *requestInterval
	}

	var m streammux.FrameMux
	switch {
	case *mock:
		sourceAddr = "mock"
		m = streammux.NewMockMux([]byte(mockFrame))
	case sourceAddr == "":
		log.Printf("No source configured; serving stored data only")
		m = streammux.NewDisabledMux()
	default:
		var muxOpts []streammux.MuxOption
		if interval > 0 {
			muxOpts = append(muxOpts, streammux.WithRequestInterval(interval))
		}
		ports := streammux.PortOptions{
			BaudRate: cfg.GetBaudRate(),
			DataBits: cfg.GetDataBits(),
			StopBits: cfg.GetStopBits(),
			Parity:   cfg.GetParity(),
		}
		var err error
		m, err = streammux.NewFromAddress(sourceAddr, ports, muxOpts...)
		if err != nil {
			log.Fatalf("Failed to open source %s: %v", sourceAddr, err)
		}
	}
	defer m.Close()

	database, err := db.NewDB(databasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	decodeOpts := []wits.Option{wits.WithSource(sourceAddr)}
	if unitSystem == "metric" || unitSystem == "si" {
		decodeOpts = append(decodeOpts, wits.WithMetricUnits())
	}
	dec := wits.NewDecoder(decodeOpts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := m.Monitor(ctx); err != nil && err != context.Canceled {
			log.Printf("failed to monitor frame source: %v", err)
		}
		log.Println("monitor routine terminated")
	}()

	// subscribe to the frame stream and pass frames to the store handler
	wg.Add(1)
	go func() {
		defer wg.Done()
		id, frames := m.Subscribe()
		defer m.Unsubscribe(id)
		for {
			select {
			case text, ok := <-frames:
				if !ok {
					log.Println("store routine terminated")
					return
				}
				if err := streammux.HandleFrame(database, dec, text); err != nil {
					log.Printf("error handling frame: %v", err)
				}
			case <-ctx.Done():
				log.Println("store routine terminated")
				return
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		mux := api.NewServer(m, database, unitSystem, sourceAddr).ServeMux()
		m.AttachAdminRoutes(mux)
		database.AttachAdminRoutes(mux)

		server := &http.Server{
			Addr:    listenAddr,
			Handler: api.LoggingMiddleware(mux),
		}
		go func() {
			log.Printf("HTTP API listening on %s", listenAddr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("HTTP server error: %v", err)
			}
		}()

		<-ctx.Done()
		log.Println("shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
			server.Close()
		}
		log.Println("HTTP server routine stopped")
	}()

	wg.Wait()
	log.Println("Graceful shutdown complete")
}
