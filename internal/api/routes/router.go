package routes

import (
	"net/http"

	"github.com/detakmedis/backend/internal/api/handlers"
	"github.com/detakmedis/backend/internal/api/middleware"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux                 *http.ServeMux
	chatHandler         *handlers.ChatHandler
	specialtyHandler    *handlers.SpecialtyHandler
	diseaseHandler      *handlers.DiseaseHandler
	doctorHandler       *handlers.DoctorHandler
	medicalImageHandler *handlers.MedicalImageHandler
	diagnosisHandler    *handlers.DiagnosisHandler
	metrics             *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	chatHandler *handlers.ChatHandler,
	specialtyHandler *handlers.SpecialtyHandler,
	diseaseHandler *handlers.DiseaseHandler,
	doctorHandler *handlers.DoctorHandler,
	medicalImageHandler *handlers.MedicalImageHandler,
	diagnosisHandler *handlers.DiagnosisHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                 http.NewServeMux(),
		chatHandler:         chatHandler,
		specialtyHandler:    specialtyHandler,
		diseaseHandler:      diseaseHandler,
		doctorHandler:       doctorHandler,
		medicalImageHandler: medicalImageHandler,
		diagnosisHandler:    diagnosisHandler,
		metrics:             metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Chat endpoint
	r.mux.HandleFunc("POST /api/chat", r.chatHandler.Chat)

	// Specialty (poli) endpoints
	r.mux.HandleFunc("POST /api/poli", r.specialtyHandler.Create)
	r.mux.HandleFunc("GET /api/poli", r.specialtyHandler.List)
	r.mux.HandleFunc("GET /api/poli/{id}", r.specialtyHandler.Get)
	r.mux.HandleFunc("GET /api/poli/{id}/diseases", r.specialtyHandler.ListDiseases)
	r.mux.HandleFunc("GET /api/poli/{id}/doctors", r.specialtyHandler.ListDoctors)
	r.mux.HandleFunc("PUT /api/poli/{id}", r.specialtyHandler.Update)
	r.mux.HandleFunc("DELETE /api/poli/{id}", r.specialtyHandler.Delete)

	// Disease endpoints
	r.mux.HandleFunc("POST /api/diseases", r.diseaseHandler.Create)
	r.mux.HandleFunc("GET /api/diseases", r.diseaseHandler.List)
	r.mux.HandleFunc("GET /api/diseases/{id}", r.diseaseHandler.Get)
	r.mux.HandleFunc("PUT /api/diseases/{id}", r.diseaseHandler.Update)
	r.mux.HandleFunc("DELETE /api/diseases/{id}", r.diseaseHandler.Delete)

	// Doctor endpoints
	r.mux.HandleFunc("POST /api/doctors", r.doctorHandler.Create)
	r.mux.HandleFunc("GET /api/doctors", r.doctorHandler.List)
	r.mux.HandleFunc("GET /api/doctors/{id}", r.doctorHandler.Get)
	r.mux.HandleFunc("PUT /api/doctors/{id}", r.doctorHandler.Update)
	r.mux.HandleFunc("DELETE /api/doctors/{id}", r.doctorHandler.Delete)

	// Medical image endpoints
	r.mux.HandleFunc("POST /api/medical-images", r.medicalImageHandler.Create)
	r.mux.HandleFunc("GET /api/medical-images", r.medicalImageHandler.List)
	r.mux.HandleFunc("GET /api/medical-images/patient/{patient_id}", r.medicalImageHandler.ListByPatient)
	r.mux.HandleFunc("GET /api/medical-images/{id}", r.medicalImageHandler.Get)
	r.mux.HandleFunc("GET /api/medical-images/{id}/predict", r.medicalImageHandler.Predict)
	r.mux.HandleFunc("PUT /api/medical-images/{id}", r.medicalImageHandler.Update)
	r.mux.HandleFunc("DELETE /api/medical-images/{id}", r.medicalImageHandler.Delete)

	// Diagnosis endpoints
	r.mux.HandleFunc("POST /api/diagnoses", r.diagnosisHandler.Create)
	r.mux.HandleFunc("GET /api/diagnoses", r.diagnosisHandler.List)
	r.mux.HandleFunc("GET /api/diagnoses/patient/{patient_id}", r.diagnosisHandler.ListByPatient)
	r.mux.HandleFunc("GET /api/diagnoses/{id}", r.diagnosisHandler.Get)
	r.mux.HandleFunc("PUT /api/diagnoses/{id}", r.diagnosisHandler.Update)
	r.mux.HandleFunc("DELETE /api/diagnoses/{id}", r.diagnosisHandler.Delete)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
