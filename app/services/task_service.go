package services

import (
	"errors"
	"slices"
	"sync"

	"todo-notify/app/models"

	"github.com/sirupsen/logrus"
)

// ErrRemovalFailed is returned by Remove whenever the removal could not complete.
var ErrRemovalFailed = errors.New("Failed to remove the todo task, please try again")

// TodoService is the task store contract used by the controller.
type TodoService interface {
	ListAll() []models.Task
	Add(description string) models.Task
	Remove(id int) error
}

// TaskService keeps tasks in memory, in insertion order.
type TaskService struct {
	mu     sync.RWMutex
	tasks  []models.Task
	nextID int
	log    logrus.FieldLogger
}

var _ TodoService = (*TaskService)(nil)

// NewTaskService creates an empty in-memory TaskService.
func NewTaskService(log logrus.FieldLogger) *TaskService {
	return &TaskService{
		tasks:  []models.Task{},
		nextID: 1,
		log:    log,
	}
}

// ListAll returns a copy of all tasks. It never returns nil.
func (s *TaskService) ListAll() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Add stores a new task under the next id.
func (s *TaskService) Add(description string) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{ID: s.nextID, Description: description, Completed: false}
	s.nextID++
	s.tasks = append(s.tasks, task)

	return task
}

// Remove deletes every task with the given id. Unknown ids are a no-op.
func (s *TaskService) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.guardRemoval(id, func() {
		s.tasks = slices.DeleteFunc(s.tasks, func(t models.Task) bool {
			return t.ID == id
		})
	})
}

// guardRemoval runs fn and turns any panic into ErrRemovalFailed.
func (s *TaskService) guardRemoval(id int, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"task_id": id,
				"cause":   r,
			}).Debug("task removal panicked")
			err = ErrRemovalFailed
		}
	}()

	fn()
	return nil
}
