package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"todo-notify/app/models"
	"todo-notify/app/services"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NotifiedUserID is the user every deletion is reported for. There is no
// user identity yet, so it is fixed.
const NotifiedUserID = 1

const (
	problemTypeServerError = "https://tools.ietf.org/html/rfc9110#section-15.6.1"
	problemTypeBadRequest  = "https://tools.ietf.org/html/rfc9110#section-15.5.1"
	problemTitleServer     = "An error occurred while processing your request."
	problemTitleBadRequest = "One or more validation errors occurred."
)

// TaskController handles HTTP requests for todo items.
type TaskController struct {
	Service       services.TodoService
	Notifier      services.NotificationService
	NotifyTimeout time.Duration
	Log           logrus.FieldLogger
}

// NewTaskController creates a new TaskController.
func NewTaskController(service services.TodoService, notifier services.NotificationService, log logrus.FieldLogger) *TaskController {
	return &TaskController{
		Service:       service,
		Notifier:      notifier,
		NotifyTimeout: 5 * time.Second,
		Log:           log,
	}
}

// AddTask handles POST /todoitems.
func (c *TaskController) AddTask(w http.ResponseWriter, r *http.Request) {
	description, err := readDescription(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, problemTypeBadRequest, problemTitleBadRequest, err.Error())
		return
	}

	task := c.Service.Add(description)
	c.Log.WithField("task_id", task.ID).Debug("task created")

	w.Header().Set("Location", fmt.Sprintf("/todoitems/%d", task.ID))
	writeJSON(w, http.StatusCreated, task)
}

// GetAll handles GET /getall.
func (c *TaskController) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Service.ListAll())
}

// DeleteTask handles DELETE /todoitems/{id}.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeProblem(w, http.StatusBadRequest, problemTypeBadRequest, problemTitleBadRequest,
			fmt.Sprintf("The value '%s' is not valid.", mux.Vars(r)["id"]))
		return
	}

	log := c.Log.WithField("task_id", id)

	if err := c.Service.Remove(id); err != nil {
		log.WithError(err).Error("task removal failed")
		writeProblem(w, http.StatusInternalServerError, problemTypeServerError, problemTitleServer, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), c.NotifyTimeout)
	defer cancel()

	if err := c.Notifier.NotifyUserTaskCompleted(ctx, id, NotifiedUserID); err != nil {
		log.WithError(err).WithField("user_id", NotifiedUserID).Error("task removed but notification failed")
		writeProblem(w, http.StatusInternalServerError, problemTypeServerError, problemTitleServer, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Health handles GET /healthz.
func (c *TaskController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readDescription accepts a JSON string body or raw text.
func readDescription(r *http.Request) (string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read request body: %w", err)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" && !strings.HasSuffix(mediaType, "+json") {
		return string(body), nil
	}

	var description string
	if err := json.Unmarshal(body, &description); err != nil {
		return "", fmt.Errorf("request body must be a JSON string: %w", err)
	}
	return description, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, status int, problemType, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.Problem{
		Type:   problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	})
}
