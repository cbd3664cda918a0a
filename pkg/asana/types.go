package asana

import "time"

// Ref is the compact representation of a record: the subset of fields
// collection endpoints return, as opposed to the complete record returned by
// single-item endpoints.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Task is a complete task record.
type Task struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Completed      bool       `json:"completed,omitempty"`
	Assignee       *Ref       `json:"assignee,omitempty"`
	AssigneeStatus string     `json:"assignee_status,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	ModifiedAt     *time.Time `json:"modified_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	DueOn          string     `json:"due_on,omitempty"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	Workspace      *Ref       `json:"workspace,omitempty"`
	Parent         *Ref       `json:"parent,omitempty"`
	Hearted        bool       `json:"hearted,omitempty"`
	NumHearts      int        `json:"num_hearts,omitempty"`
	Projects       []Ref      `json:"projects,omitempty"`
	Memberships    []Ref      `json:"memberships,omitempty"`
	Tags           []Ref      `json:"tags,omitempty"`
	Followers      []Ref      `json:"followers,omitempty"`
}

// Project is a complete project record.
type Project struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	Color      string     `json:"color,omitempty"`
	Archived   bool       `json:"archived,omitempty"`
	Public     bool       `json:"public,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	Workspace  *Ref       `json:"workspace,omitempty"`
	Team       *Ref       `json:"team,omitempty"`
	Owner      *Ref       `json:"owner,omitempty"`
	Members    []Ref      `json:"members,omitempty"`
	Followers  []Ref      `json:"followers,omitempty"`
}

// Tag is a complete tag record.
type Tag struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name,omitempty"`
	Color     string     `json:"color,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Workspace *Ref       `json:"workspace,omitempty"`
	Followers []Ref      `json:"followers,omitempty"`
}

// Workspace is a complete workspace record.
type Workspace struct {
	ID             int64  `json:"id"`
	Name           string `json:"name,omitempty"`
	IsOrganization bool   `json:"is_organization,omitempty"`
}

// User is a complete user record.
type User struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name,omitempty"`
	Email      string            `json:"email,omitempty"`
	Photo      map[string]string `json:"photo,omitempty"`
	Workspaces []Ref             `json:"workspaces,omitempty"`
}

// Story is an item in a task's activity feed: a comment, or a system-generated
// record of a change.
type Story struct {
	ID        int64      `json:"id"`
	Type      string     `json:"type,omitempty"`
	Text      string     `json:"text,omitempty"`
	Source    string     `json:"source,omitempty"`
	Hearted   bool       `json:"hearted,omitempty"`
	NumHearts int        `json:"num_hearts,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	CreatedBy *Ref       `json:"created_by,omitempty"`
	Target    *Ref       `json:"target,omitempty"`
}
