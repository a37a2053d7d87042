package http

import (
	"net/http"

	"mediscript-server/internal/delivery/http/handler"
	"mediscript-server/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	medicineHandler      *handler.MedicineHandler
	cartHandler          *handler.RefillCartHandler
	requestHandler       *handler.RefillRequestHandler
	prescriptionHandler  *handler.PrescriptionHandler
	applicationHandler   *handler.ApplicationHandler
	patientHandler       *handler.PatientHandler
	doctorHandler        *handler.DoctorHandler
	adminHandler         *handler.AdminHandler
	sessionMiddleware    *middleware.SessionMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	medicineHandler *handler.MedicineHandler,
	cartHandler *handler.RefillCartHandler,
	requestHandler *handler.RefillRequestHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	applicationHandler *handler.ApplicationHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	adminHandler *handler.AdminHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		medicineHandler:     medicineHandler,
		cartHandler:         cartHandler,
		requestHandler:      requestHandler,
		prescriptionHandler: prescriptionHandler,
		applicationHandler:  applicationHandler,
		patientHandler:      patientHandler,
		doctorHandler:       doctorHandler,
		adminHandler:        adminHandler,
		sessionMiddleware:   sessionMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := r.router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/verify-otp", r.authHandler.VerifyOTP).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)

	authProtected := r.router.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.sessionMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Public doctor application
	r.router.HandleFunc("/apply-doctor", r.applicationHandler.Apply).Methods(http.MethodPost)

	// Patient routes
	patient := r.router.PathPrefix("/patient").Subrouter()
	patient.Use(r.sessionMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)

	patient.HandleFunc("/dashboard", r.patientHandler.Dashboard).Methods(http.MethodGet)
	patient.HandleFunc("/profile", r.patientHandler.GetProfile).Methods(http.MethodGet)
	patient.HandleFunc("/profile", r.patientHandler.UpdateProfile).Methods(http.MethodPut)
	patient.HandleFunc("/profile/picture", r.patientHandler.UpdatePicture).Methods(http.MethodPost)

	patient.HandleFunc("/prescriptions", r.prescriptionHandler.ListMine).Methods(http.MethodGet)
	patient.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetMine).Methods(http.MethodGet)

	patient.HandleFunc("/refill-cart", r.cartHandler.Get).Methods(http.MethodGet)
	patient.HandleFunc("/refill-cart", r.cartHandler.Add).Methods(http.MethodPost)
	patient.HandleFunc("/refill-cart", r.cartHandler.Clear).Methods(http.MethodDelete)
	patient.HandleFunc("/refill-cart/{id}", r.cartHandler.UpdateQuantity).Methods(http.MethodPut)
	patient.HandleFunc("/refill-cart/{id}", r.cartHandler.Remove).Methods(http.MethodDelete)

	patient.HandleFunc("/refill-request", r.requestHandler.Submit).Methods(http.MethodPost)
	patient.HandleFunc("/refill-requests", r.requestHandler.ListMine).Methods(http.MethodGet)
	patient.HandleFunc("/refill-requests/{id}", r.requestHandler.GetMine).Methods(http.MethodGet)

	// Doctor routes
	doctor := r.router.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.sessionMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/profile", r.doctorHandler.GetProfile).Methods(http.MethodGet)
	doctor.HandleFunc("/profile", r.doctorHandler.UpdateProfile).Methods(http.MethodPut)
	doctor.HandleFunc("/profile/picture", r.doctorHandler.UpdatePicture).Methods(http.MethodPost)

	doctor.HandleFunc("/prescription", r.prescriptionHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Get).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{patientId}/overview", r.prescriptionHandler.PatientOverview).Methods(http.MethodGet)
	doctor.HandleFunc("/medicines", r.prescriptionHandler.ActiveMedicines).Methods(http.MethodGet)

	// Admin routes
	admin := r.router.PathPrefix("/admin").Subrouter()
	admin.Use(r.sessionMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/summary", r.adminHandler.Summary).Methods(http.MethodGet)
	admin.HandleFunc("/doctors", r.adminHandler.ListDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{userId}", r.adminHandler.RemoveDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/patients", r.adminHandler.ListPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{userId}", r.adminHandler.RemovePatient).Methods(http.MethodDelete)

	admin.HandleFunc("/medicines", r.medicineHandler.ListActive).Methods(http.MethodGet)
	admin.HandleFunc("/medicines", r.medicineHandler.Add).Methods(http.MethodPost)
	admin.HandleFunc("/medicines/remove-expired", r.medicineHandler.RemoveExpired).Methods(http.MethodPost)
	admin.HandleFunc("/medicines/{id}/remove", r.medicineHandler.Remove).Methods(http.MethodPost)
	admin.HandleFunc("/refill", r.medicineHandler.ListRefillQueue).Methods(http.MethodGet)
	admin.HandleFunc("/refill/{id}/refill", r.medicineHandler.Refill).Methods(http.MethodPost)
	admin.HandleFunc("/refill/{id}/remove", r.medicineHandler.DeletePermanently).Methods(http.MethodDelete)

	admin.HandleFunc("/refill-requests", r.requestHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/refill-requests/archive", r.requestHandler.Archive).Methods(http.MethodPost)
	admin.HandleFunc("/refill-requests/history", r.requestHandler.History).Methods(http.MethodGet)
	admin.HandleFunc("/refill-requests/{id}", r.requestHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/refill-request/{id}/approve", r.requestHandler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/refill-request/{id}/decline", r.requestHandler.Decline).Methods(http.MethodPost)
	admin.HandleFunc("/refill-request/{id}/delivered", r.requestHandler.MarkDelivered).Methods(http.MethodPost)

	admin.HandleFunc("/applications", r.applicationHandler.ListPending).Methods(http.MethodGet)
	admin.HandleFunc("/applications/{doctorId}", r.applicationHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/applications/{doctorId}/approve", r.applicationHandler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/applications/{doctorId}/reject", r.applicationHandler.Reject).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
