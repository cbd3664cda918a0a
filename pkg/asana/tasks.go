package asana

import (
	"context"
	"fmt"
)

// Tasks exposes the task operations of the API.
//
// Every operation is a stateless translation of its arguments into an HTTP
// verb and path, delegated to the shared dispatcher. Identifiers are
// substituted into paths as decimal integers only; payloads and params are
// passed through unmodified, and results and failures are the dispatcher's,
// surfaced unchanged. Operations are independent and may run concurrently.
type Tasks struct {
	dispatcher *Dispatcher
}

// Create creates a task. The workspace is inferred server-side from the
// payload's projects, parent, or workspace field.
func (s *Tasks) Create(ctx context.Context, data map[string]interface{}) (*Task, error) {
	var task Task
	if err := s.dispatcher.Post(ctx, "/tasks", data, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// CreateInWorkspace creates a task in a specific workspace. The workspace is
// fixed at creation and cannot be changed afterwards.
func (s *Tasks) CreateInWorkspace(ctx context.Context, workspaceID int64, data map[string]interface{}) (*Task, error) {
	if err := validateID("workspace", workspaceID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/workspaces/%d/tasks", workspaceID)

	var task Task
	if err := s.dispatcher.Post(ctx, path, data, &task); err != nil {
		return nil, fmt.Errorf("failed to create task in workspace: %w", err)
	}
	return &task, nil
}

// FindByID retrieves the complete record for a single task.
func (s *Tasks) FindByID(ctx context.Context, taskID int64, params map[string]string) (*Task, error) {
	if err := validateID("task", taskID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tasks/%d", taskID)

	var task Task
	if err := s.dispatcher.Get(ctx, path, params, &task); err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

// Update applies a partial update to a task: fields absent from data are left
// unchanged. Callers resending stale data race with concurrent writers.
func (s *Tasks) Update(ctx context.Context, taskID int64, data map[string]interface{}) (*Task, error) {
	if err := validateID("task", taskID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tasks/%d", taskID)

	var task Task
	if err := s.dispatcher.Put(ctx, path, data, &task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &task, nil
}

// Delete deletes a task. Deletion is soft: the remote system retains the task
// for 30 days before permanent removal.
func (s *Tasks) Delete(ctx context.Context, taskID int64) error {
	if err := validateID("task", taskID); err != nil {
		return err
	}
	path := fmt.Sprintf("/tasks/%d", taskID)

	if err := s.dispatcher.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// FindByProject returns the tasks in a project, ordered by the remote
// priority ranking.
func (s *Tasks) FindByProject(ctx context.Context, projectID int64, params map[string]string) ([]Task, error) {
	if err := validateID("project", projectID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/projects/%d/tasks", projectID)

	var tasks []Task
	if err := s.dispatcher.GetCollection(ctx, path, params, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks by project: %w", err)
	}
	return tasks, nil
}

// FindByTag returns the tasks carrying a tag.
func (s *Tasks) FindByTag(ctx context.Context, tagID int64, params map[string]string) ([]Task, error) {
	if err := validateID("tag", tagID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tags/%d/tasks", tagID)

	var tasks []Task
	if err := s.dispatcher.GetCollection(ctx, path, params, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks by tag: %w", err)
	}
	return tasks, nil
}

// FindAll returns tasks matching params. Supported filters include assignee,
// workspace, completed_since, and modified_since; params are passed through
// unmodified.
func (s *Tasks) FindAll(ctx context.Context, params map[string]string) ([]Task, error) {
	var tasks []Task
	if err := s.dispatcher.GetCollection(ctx, "/tasks", params, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// AddFollowers adds followers to a task. Idempotent: entries already
// following are ignored remotely.
func (s *Tasks) AddFollowers(ctx context.Context, taskID int64, data map[string]interface{}) (*Task, error) {
	if err := validateID("task", taskID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tasks/%d/addFollowers", taskID)

	var task Task
	if err := s.dispatcher.Post(ctx, path, data, &task); err != nil {
		return nil, fmt.Errorf("failed to add followers: %w", err)
	}
	return &task, nil
}

// RemoveFollowers removes followers from a task. Idempotent: entries not
// following are ignored remotely.
func (s *Tasks) RemoveFollowers(ctx context.Context, taskID int64, data map[string]interface{}) (*Task, error) {
	if err := validateID("task", taskID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tasks/%d/removeFollowers", taskID)

	var task Task
	if err := s.dispatcher.Post(ctx, path, data, &task); err != nil {
		return nil, fmt.Errorf("failed to remove followers: %w", err)
	}
	return &task, nil
}

// Projects returns the projects a task belongs to, in compact representation.
func (s *Tasks) Projects(ctx context.Context, taskID int64, params map[string]string) ([]Project, error) {
	if err := validateID("task", taskID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tasks/%d/projects", taskID)

	var projects []Project
	if err := s.dispatcher.GetCollection(ctx, path, params, &projects); err != nil {
		return nil, fmt.Errorf("failed to list task projects: %w", err)
	}
	return projects, nil
}

// AddProject adds a task to a project. data may carry insertAfter,
// insertBefore, or section to position the task; with no location the task is
// prepended.
func (s *Tasks) AddProject(ctx context.Context, taskID int64, data map[string]interface{}) error {
	if err := validateID("task", taskID); err != nil {
		return err
	}
	path := fmt.Sprintf("/tasks/%d/addProject", taskID)

	if err := s.dispatcher.Post(ctx, path, data, nil); err != nil {
		return fmt.Errorf("failed to add task to project: %w", err)
	}
	return nil
}

// RemoveProject removes a task from a project. The task itself persists; only
// the membership is removed.
func (s *Tasks) RemoveProject(ctx context.Context, taskID int64, data map[string]interface{}) error {
	if err := validateID("task", taskID); err != nil {
		return err
	}
	path := fmt.Sprintf("/tasks/%d/removeProject", taskID)

	if err := s.dispatcher.Post(ctx, path, data, nil); err != nil {
		return fmt.Errorf("failed to remove task from project: %w", err)
	}
	return nil
}

// Tags returns the tags on a task.
func (s *Tasks) Tags(ctx context.Context, taskID int64, params map[string]string) ([]Tag, error) {
	if err := validateID("task", taskID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tasks/%d/tags", taskID)

	var tags []Tag
	if err := s.dispatcher.GetCollection(ctx, path, params, &tags); err != nil {
		return nil, fmt.Errorf("failed to list task tags: %w", err)
	}
	return tags, nil
}

// AddTag adds a tag to a task.
func (s *Tasks) AddTag(ctx context.Context, taskID int64, data map[string]interface{}) error {
	if err := validateID("task", taskID); err != nil {
		return err
	}
	path := fmt.Sprintf("/tasks/%d/addTag", taskID)

	if err := s.dispatcher.Post(ctx, path, data, nil); err != nil {
		return fmt.Errorf("failed to add tag: %w", err)
	}
	return nil
}

// RemoveTag removes a tag from a task.
func (s *Tasks) RemoveTag(ctx context.Context, taskID int64, data map[string]interface{}) error {
	if err := validateID("task", taskID); err != nil {
		return err
	}
	path := fmt.Sprintf("/tasks/%d/removeTag", taskID)

	if err := s.dispatcher.Post(ctx, path, data, nil); err != nil {
		return fmt.Errorf("failed to remove tag: %w", err)
	}
	return nil
}

// Subtasks returns the subtasks of a task.
func (s *Tasks) Subtasks(ctx context.Context, taskID int64, params map[string]string) ([]Task, error) {
	if err := validateID("task", taskID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tasks/%d/subtasks", taskID)

	var tasks []Task
	if err := s.dispatcher.GetCollection(ctx, path, params, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list subtasks: %w", err)
	}
	return tasks, nil
}

// AddSubtask creates a subtask under a task, or reparents an existing task
// when data names one.
func (s *Tasks) AddSubtask(ctx context.Context, taskID int64, data map[string]interface{}) (*Task, error) {
	if err := validateID("task", taskID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tasks/%d/subtasks", taskID)

	var task Task
	if err := s.dispatcher.Post(ctx, path, data, &task); err != nil {
		return nil, fmt.Errorf("failed to add subtask: %w", err)
	}
	return &task, nil
}

// Stories returns the activity feed of a task.
func (s *Tasks) Stories(ctx context.Context, taskID int64, params map[string]string) ([]Story, error) {
	if err := validateID("task", taskID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tasks/%d/stories", taskID)

	var stories []Story
	if err := s.dispatcher.GetCollection(ctx, path, params, &stories); err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}

// AddComment adds a comment story to a task, authored as the authenticated
// user and timestamped by the server.
func (s *Tasks) AddComment(ctx context.Context, taskID int64, data map[string]interface{}) (*Story, error) {
	if err := validateID("task", taskID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tasks/%d/stories", taskID)

	var story Story
	if err := s.dispatcher.Post(ctx, path, data, &story); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &story, nil
}
