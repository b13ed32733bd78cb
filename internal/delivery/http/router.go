package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"speciallecture/internal/delivery/http/controllers"
	"speciallecture/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	registrationController *controllers.RegistrationController,
	lectureController *controllers.LectureController,
	catalogController *controllers.CatalogController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Available lecture listings. Literal segments take precedence over
	// the {userID} wildcards below.
	mux.HandleFunc("GET /special-lecture/available/lectures", lectureController.ListAvailableLectures)
	mux.HandleFunc("GET /special-lecture/available/lectures/user/{userID}", lectureController.ListAvailableLecturesForUser)

	// Reservation and registration lookups
	mux.HandleFunc("POST /special-lecture/{userID}/{lectureID}", registrationController.Register)
	mux.HandleFunc("GET /special-lecture/{userID}", registrationController.ListUserRegistrations)
	mux.HandleFunc("GET /special-lecture/{userID}/{lectureID}", registrationController.GetRegistration)

	// Catalog administration
	mux.HandleFunc("POST /lectures", catalogController.CreateLecture)
	mux.HandleFunc("POST /lecturers", catalogController.CreateLecturer)
	mux.HandleFunc("POST /users", catalogController.CreateUser)

	mux.HandleFunc("GET /health", healthCheck)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
