package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"salabelleza/internal/api"
	"salabelleza/internal/auth"
	"salabelleza/internal/booking"
	"salabelleza/internal/repository"
	"salabelleza/internal/service"
)

const draftMaxAge = 30 * time.Minute

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	empleadaRepo := repository.NewEmpleadaRepository(db)
	turnoRepo := repository.NewTurnoRepository(db)
	jobRepo := repository.NewJobRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	drafts := booking.NewStore()

	sender := service.NewSenderService()
	authSvc := service.NewAuthService(usuarioRepo)
	turnoSvc := service.NewTurnoService(turnoRepo, clienteRepo, sender)
	disponibilidadSvc := service.NewDisponibilidadService(empleadaRepo, servicioRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo)
	jobSvc := service.NewJobService(jobRepo, drafts)

	authHandler := api.NewAuthHandler(authSvc)
	catalogoHandler := api.NewCatalogoHandler(catalogoRepo, servicioRepo, empleadaRepo)
	adminHandler := api.NewAdminHandler(catalogoRepo, servicioRepo)
	empleadaHandler := api.NewEmpleadaHandler(empleadaRepo)
	turnoHandler := api.NewTurnoHandler(turnoSvc, disponibilidadSvc)
	clienteHandler := api.NewClienteHandler(clienteRepo)
	reservaHandler := api.NewReservaHandler(drafts, catalogoRepo, servicioRepo, empleadaRepo, turnoSvc)
	dashboardHandler := api.NewDashboardHandler(dashboardSvc)

	r := mux.NewRouter()

	// Auth
	r.HandleFunc("/api/Usuario/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/Usuario/Registrar", authHandler.Registrar).Methods("POST")

	// Lecturas públicas del catálogo
	r.HandleFunc("/api/Sucursal", catalogoHandler.ListSucursales).Methods("GET")
	r.HandleFunc("/api/Servicio", catalogoHandler.ListServicios).Methods("GET")
	r.HandleFunc("/api/Sector", catalogoHandler.ListSectores).Methods("GET")
	r.HandleFunc("/api/Habilidad", catalogoHandler.ListHabilidades).Methods("GET")
	r.HandleFunc("/api/Empleado", catalogoHandler.ListEmpleadas).Methods("GET")

	// Disponibilidad y turnos
	r.HandleFunc("/api/Turnos/horarios-disponibles-empleada", turnoHandler.HorariosDisponibles).Methods("POST")
	r.HandleFunc("/api/Turnos", turnoHandler.CreateTurno).Methods("POST")

	// Clientes sin cuenta
	r.HandleFunc("/api/Cliente/telefono/{telefono}", clienteHandler.GetByTelefono).Methods("GET")
	r.HandleFunc("/api/Cliente/registrar-sin-cuenta", clienteHandler.RegistrarSinCuenta).Methods("POST")

	// Asistente de reserva (borrador en memoria por sesión)
	r.HandleFunc("/api/Reserva", reservaHandler.CreateReserva).Methods("POST")
	r.HandleFunc("/api/Reserva/{id}", reservaHandler.GetReserva).Methods("GET")
	r.HandleFunc("/api/Reserva/{id}/reset", reservaHandler.ResetReserva).Methods("POST")
	r.HandleFunc("/api/Reserva/{id}/sucursal", reservaHandler.SetSucursal).Methods("PUT")
	r.HandleFunc("/api/Reserva/{id}/servicios", reservaHandler.AddServicios).Methods("PUT")
	r.HandleFunc("/api/Reserva/{id}/servicios/{servicioId}", reservaHandler.RemoveServicio).Methods("DELETE")
	r.HandleFunc("/api/Reserva/{id}/horario", reservaHandler.SetHorario).Methods("PUT")
	r.HandleFunc("/api/Reserva/{id}/empleada", reservaHandler.SetEmpleada).Methods("PUT")
	r.HandleFunc("/api/Reserva/{id}/cliente", reservaHandler.SetCliente).Methods("PUT")
	r.HandleFunc("/api/Reserva/{id}/confirmar", reservaHandler.ConfirmarReserva).Methods("POST")

	// Back office (protegido, solo Administrador)
	admin := r.PathPrefix("/api").Subrouter()
	admin.Use(auth.Middleware)
	admin.Use(auth.RequireRol(service.RolAdministrador))

	admin.HandleFunc("/Sucursal", adminHandler.CreateSucursal).Methods("POST")
	admin.HandleFunc("/Sucursal/{id}", adminHandler.UpdateSucursal).Methods("PUT")
	admin.HandleFunc("/Sucursal/{id}", adminHandler.DeleteSucursal).Methods("DELETE")
	admin.HandleFunc("/Sucursal/{id}/sectores/{sectorId}", adminHandler.AsignarSectorASucursal).Methods("POST")
	admin.HandleFunc("/Sucursal/{id}/sectores/{sectorId}", adminHandler.DesasignarSectorDeSucursal).Methods("DELETE")

	admin.HandleFunc("/Sector", adminHandler.CreateSector).Methods("POST")
	admin.HandleFunc("/Sector/{id}", adminHandler.UpdateSector).Methods("PUT")
	admin.HandleFunc("/Sector/{id}", adminHandler.DeleteSector).Methods("DELETE")

	admin.HandleFunc("/Habilidad", adminHandler.CreateHabilidad).Methods("POST")
	admin.HandleFunc("/Habilidad/{id}", adminHandler.UpdateHabilidad).Methods("PUT")
	admin.HandleFunc("/Habilidad/{id}", adminHandler.DeleteHabilidad).Methods("DELETE")

	admin.HandleFunc("/Servicio", adminHandler.CreateServicio).Methods("POST")
	admin.HandleFunc("/Servicio/{id}", adminHandler.UpdateServicio).Methods("PUT")
	admin.HandleFunc("/Servicio/{id}", adminHandler.DeleteServicio).Methods("DELETE")
	admin.HandleFunc("/Servicio/{id}/extras", adminHandler.CreateExtra).Methods("POST")
	admin.HandleFunc("/Servicio/{id}/extras/{extraId}", adminHandler.DeleteExtra).Methods("DELETE")
	admin.HandleFunc("/Servicio/{id}/habilidades/{habilidadId}", adminHandler.AsignarHabilidadAServicio).Methods("POST")
	admin.HandleFunc("/Servicio/{id}/habilidades/{habilidadId}", adminHandler.DesasignarHabilidadDeServicio).Methods("DELETE")

	admin.HandleFunc("/Empleado", empleadaHandler.CreateEmpleada).Methods("POST")
	admin.HandleFunc("/Empleado/{id}", empleadaHandler.UpdateEmpleada).Methods("PUT")
	admin.HandleFunc("/Empleado/{id}", empleadaHandler.DeleteEmpleada).Methods("DELETE")
	admin.HandleFunc("/Empleado/{id}/habilidades/{habilidadId}", empleadaHandler.AsignarHabilidad).Methods("POST")
	admin.HandleFunc("/Empleado/{id}/habilidades/{habilidadId}", empleadaHandler.DesasignarHabilidad).Methods("DELETE")
	admin.HandleFunc("/Empleado/{id}/sectores/{sectorId}", empleadaHandler.AsignarSector).Methods("POST")
	admin.HandleFunc("/Empleado/{id}/sectores/{sectorId}", empleadaHandler.DesasignarSector).Methods("DELETE")
	admin.HandleFunc("/Empleado/{id}/periodos", empleadaHandler.ListPeriodos).Methods("GET")
	admin.HandleFunc("/Empleado/{id}/periodos", empleadaHandler.CreatePeriodo).Methods("POST")
	admin.HandleFunc("/Empleado/{id}/periodos/{periodoId}", empleadaHandler.DeletePeriodo).Methods("DELETE")
	admin.HandleFunc("/Empleado/{id}/licencias", empleadaHandler.ListLicencias).Methods("GET")
	admin.HandleFunc("/Empleado/{id}/licencias", empleadaHandler.CreateLicencia).Methods("POST")
	admin.HandleFunc("/Empleado/{id}/licencias/{licenciaId}", empleadaHandler.DeleteLicencia).Methods("DELETE")

	admin.HandleFunc("/Turnos", turnoHandler.ListTurnos).Methods("GET")
	admin.HandleFunc("/Turnos/{id}", turnoHandler.GetTurno).Methods("GET")
	admin.HandleFunc("/Turnos/{id}/estado", turnoHandler.CambiarEstado).Methods("PUT")
	admin.HandleFunc("/Turnos/{id}", turnoHandler.DeleteTurno).Methods("DELETE")

	admin.HandleFunc("/Dashboard/metricas", dashboardHandler.Metricas).Methods("GET")

	c := cron.New()
	c.AddFunc("@every 5m", func() {
		if err := jobSvc.UpdateFinishedTurnos(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
		jobSvc.SweepDrafts(draftMaxAge)
	})
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler(r))))
}
