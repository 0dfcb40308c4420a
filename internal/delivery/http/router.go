package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventease/docs"
	"eventease/internal/delivery/http/controllers"
	"eventease/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes and the
// shared middleware chain (request ID, logging, CORS).
func NewRouter(
	logger *slog.Logger,
	rsvpController *controllers.RSVPController,
	eventController *controllers.EventController,
	userController *controllers.UserController,
	taskController *controllers.TaskController,
	allowedOrigins []string,
) http.Handler {
	mux := http.NewServeMux()

	// RSVP lifecycle
	mux.HandleFunc("POST /api/events/{eventID}/rsvp/{userID}", rsvpController.CreateRSVP)
	mux.HandleFunc("GET /api/events/{eventID}/attendees", rsvpController.GetAttendees)
	mux.HandleFunc("DELETE /api/events/{eventID}/rsvp/cancel/{userID}", rsvpController.CancelRSVP)
	mux.HandleFunc("PATCH /api/events/{eventID}/rsvp/{userID}", rsvpController.UpdateRSVP)
	mux.HandleFunc("POST /api/events/{eventID}/rsvp/checkin/{userID}", rsvpController.CheckInUser)
	mux.HandleFunc("GET /api/events/rsvp/user/{userID}", rsvpController.ListRSVPsByUser)
	mux.HandleFunc("GET /api/events/rsvp/user/{userID}/checkedin", rsvpController.ListCheckedInRSVPsByUser)
	mux.HandleFunc("GET /api/events/1c/{userID}/{eventID}", rsvpController.OneClickRSVP)

	// Events
	mux.HandleFunc("POST /api/events", eventController.CreateEvent)
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("GET /api/events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("PATCH /api/events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /api/events/{eventID}", eventController.DeleteEvent)

	// Users
	mux.HandleFunc("POST /api/users", userController.CreateUser)
	mux.HandleFunc("GET /api/users/{userID}", userController.GetUser)
	mux.HandleFunc("PATCH /api/users/{userID}", userController.UpdateUser)
	mux.HandleFunc("DELETE /api/users/{userID}", userController.DeleteUser)

	// Tasks
	mux.HandleFunc("POST /api/events/{eventID}/tasks", taskController.CreateTask)
	mux.HandleFunc("GET /api/events/{eventID}/tasks", taskController.ListTasks)
	mux.HandleFunc("GET /api/tasks/{taskID}", taskController.GetTask)
	mux.HandleFunc("PATCH /api/tasks/{taskID}", taskController.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{taskID}", taskController.DeleteTask)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(allowedOrigins, handler)
	return handler
}
