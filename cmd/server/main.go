package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"fleetshare/internal/api"
	"fleetshare/internal/fleet"
	"fleetshare/internal/repository"
	"fleetshare/internal/service"
	"fleetshare/internal/store"
	"fleetshare/internal/validator"
)

func main() {
	godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logrus.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		logrus.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		logrus.Fatalf("Failed to connect to DB: %v", err)
	}

	stateRepo := repository.NewStateRepository(db)
	if err := stateRepo.Init(); err != nil {
		logrus.Fatalf("Failed to init state storage: %v", err)
	}

	bookingStore := store.NewBookingStore(stateRepo)
	if err := bookingStore.Load(); err != nil {
		// A corrupt blob is fatal on purpose: reseeding here would
		// overwrite potentially recoverable booking data.
		logrus.Fatalf("Failed to load booking state: %v", err)
	}

	roster := fleet.Roster()
	notifier := service.NewNotifyService()
	bookingSvc := service.NewBookingService(bookingStore, validator.NewBookingValidator(), notifier, roster)
	calendarSvc := service.NewCalendarService(bookingStore, roster)
	assistantSvc := service.NewAssistantService(os.Getenv("GEMINI_API_KEY"))
	jobSvc := service.NewJobService(bookingStore, notifier, roster)

	fleetHandler := api.NewFleetHandler(bookingSvc, calendarSvc)
	assistantHandler := api.NewAssistantHandler(assistantSvc, bookingSvc)

	c := cron.New()
	if _, err := c.AddFunc("0 7 * * *", func() {
		if err := jobSvc.SendDailyDigest(); err != nil {
			logrus.Errorf("%v", err)
		}
	}); err != nil {
		logrus.Fatalf("Failed to schedule daily digest: %v", err)
	}
	c.Start()

	r := mux.NewRouter()
	r.HandleFunc("/health", fleetHandler.Health).Methods("GET")
	r.HandleFunc("/api/vehicles", fleetHandler.ListVehicles).Methods("GET")
	r.HandleFunc("/api/bookings", fleetHandler.ListBookings).Methods("GET")
	r.HandleFunc("/api/bookings", fleetHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/calendar/{year:[0-9]+}/{month:[0-9]+}", fleetHandler.MonthView).Methods("GET")
	r.HandleFunc("/api/days/{date}", fleetHandler.DayDetail).Methods("GET")
	r.HandleFunc("/api/days/{date}/free", fleetHandler.FreeVehicles).Methods("GET")
	r.HandleFunc("/api/days/{date}/carpools", fleetHandler.Carpools).Methods("GET")
	r.HandleFunc("/api/assistant", assistantHandler.Ask).Methods("POST")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("Server running on port %s", port)
	logrus.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
