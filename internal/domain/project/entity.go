package project

import "time"

// Project is a tagging dimension for attendance entries. No state
// machine, no lifecycle beyond create and delete.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
