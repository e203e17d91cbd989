package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/nyayconnect/nyayconnect-api/api"
	"github.com/nyayconnect/nyayconnect-api/config"
	"github.com/nyayconnect/nyayconnect-api/databases"
	"github.com/nyayconnect/nyayconnect-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router *mux.Router
	DB     *sqlx.DB
	Config config.Config
	Hub    *ChatHub
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	if a.Hub == nil {
		a.Hub = NewChatHub()
	}

	secret := a.Config.SecretKey

	u := User{DB: databases.NewUserDatabase(a.DB), Secret: secret}
	l := Lawyer{DB: databases.NewLawyerDatabase(a.DB)}
	appt := Appointment{DB: databases.NewAppointmentDatabase(a.DB)}
	d := Dashboard{DB: databases.NewAppointmentDatabase(a.DB)}
	rev := Review{DB: databases.NewReviewDatabase(a.DB)}
	chat := Chat{DB: databases.NewChatDatabase(a.DB), Hub: a.Hub, Secret: secret}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api").Subrouter()

	apiCreate.Handle("/register", http.HandlerFunc(u.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/login", http.HandlerFunc(u.LoginHandler)).Methods("POST")

	apiCreate.Handle("/user/profile", api.Middleware(secret, http.HandlerFunc(u.ProfileHandler))).Methods("GET")
	apiCreate.Handle("/user/profile", api.Middleware(secret, http.HandlerFunc(u.UpdateProfileHandler))).Methods("PUT")

	apiCreate.Handle("/lawyers", http.HandlerFunc(l.LawyersHandler)).Methods("GET")
	apiCreate.Handle("/lawyers/{lawyer_id}", http.HandlerFunc(l.LawyerByIDHandler)).Methods("GET")
	apiCreate.Handle("/lawyers/{lawyer_id}/reviews", http.HandlerFunc(rev.LawyerReviewsHandler)).Methods("GET")

	apiCreate.Handle("/my-lawyer-profile", api.Middleware(secret, api.RequireRole(models.RoleLawyer, http.HandlerFunc(l.MyLawyerProfileHandler)))).Methods("GET")
	apiCreate.Handle("/my-lawyer-profile", api.Middleware(secret, api.RequireRole(models.RoleLawyer, http.HandlerFunc(l.UpsertMyLawyerProfileHandler)))).Methods("POST")
	apiCreate.Handle("/lawyer-profile", api.Middleware(secret, api.RequireRole(models.RoleLawyer, http.HandlerFunc(l.UpdateLawyerProfileHandler)))).Methods("POST", "PUT")
	apiCreate.Handle("/lawyer/appointments", api.Middleware(secret, api.RequireRole(models.RoleLawyer, http.HandlerFunc(appt.LawyerAppointmentsHandler)))).Methods("GET")

	apiCreate.Handle("/appointments", api.Middleware(secret, api.RequireRole(models.RoleClient, http.HandlerFunc(appt.BookAppointmentHandler)))).Methods("POST")
	apiCreate.Handle("/appointments/{appointment_id}", api.Middleware(secret, api.RequireRole(models.RoleLawyer, http.HandlerFunc(appt.UpdateAppointmentStatusHandler)))).Methods("PUT")
	apiCreate.Handle("/my-appointments", api.Middleware(secret, http.HandlerFunc(appt.MyAppointmentsHandler))).Methods("GET")
	apiCreate.Handle("/appointment-history", api.Middleware(secret, http.HandlerFunc(appt.AppointmentHistoryHandler))).Methods("GET")

	apiCreate.Handle("/dashboard/stats", api.Middleware(secret, http.HandlerFunc(d.StatsHandler))).Methods("GET")

	apiCreate.Handle("/reviews", api.Middleware(secret, api.RequireRole(models.RoleClient, http.HandlerFunc(rev.CreateReviewHandler)))).Methods("POST")

	apiCreate.Handle("/chat/get_or_create_room", api.Middleware(secret, http.HandlerFunc(chat.GetOrCreateRoomHandler))).Methods("POST")
	apiCreate.Handle("/chat/rooms", api.Middleware(secret, http.HandlerFunc(chat.RoomsHandler))).Methods("GET")
	apiCreate.Handle("/chat/messages/{room_id}", api.Middleware(secret, http.HandlerFunc(chat.MessagesHandler))).Methods("GET")
	apiCreate.Handle("/chat/send", api.Middleware(secret, http.HandlerFunc(chat.SendMessageHandler))).Methods("POST")

	// the websocket channel authenticates via query token inside the handler
	r.HandleFunc("/ws/chat", chat.WebSocketHandler)

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	db, err := databases.NewPostgres(&a.Config)
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	a.DB = db
	zap.S().Info("nyayconnect-api has connected to the database")

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
