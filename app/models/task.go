package models

// Task is a single todo item. IDs are assigned by the store.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
