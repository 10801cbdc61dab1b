package routes

import (
	"net/http"

	"todo-notify/app/controllers"
	"todo-notify/app/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, taskController *controllers.TaskController) {
	router.HandleFunc("/todoitems", taskController.AddTask).Methods(http.MethodPost)
	router.HandleFunc("/getall", taskController.GetAll).Methods(http.MethodGet)
	router.HandleFunc("/todoitems/{id}", taskController.DeleteTask).Methods(http.MethodDelete)
	router.HandleFunc("/healthz", taskController.Health).Methods(http.MethodGet)
}

// NewRouter builds the application router with request logging.
func NewRouter(taskController *controllers.TaskController, log logrus.FieldLogger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestID(), middleware.Logging(log))
	RegisterRoutes(router, taskController)
	return router
}
