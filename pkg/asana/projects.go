package asana

import (
	"context"
	"fmt"
)

// Projects exposes the project operations of the API. Same shape as Tasks:
// stateless verb/path translation over the shared dispatcher.
type Projects struct {
	dispatcher *Dispatcher
}

// Create creates a project. The workspace is inferred server-side from the
// payload's workspace or team field.
func (s *Projects) Create(ctx context.Context, data map[string]interface{}) (*Project, error) {
	var project Project
	if err := s.dispatcher.Post(ctx, "/projects", data, &project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

// CreateInWorkspace creates a project in a specific workspace.
func (s *Projects) CreateInWorkspace(ctx context.Context, workspaceID int64, data map[string]interface{}) (*Project, error) {
	if err := validateID("workspace", workspaceID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/workspaces/%d/projects", workspaceID)

	var project Project
	if err := s.dispatcher.Post(ctx, path, data, &project); err != nil {
		return nil, fmt.Errorf("failed to create project in workspace: %w", err)
	}
	return &project, nil
}

// FindByID retrieves the complete record for a single project.
func (s *Projects) FindByID(ctx context.Context, projectID int64, params map[string]string) (*Project, error) {
	if err := validateID("project", projectID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/projects/%d", projectID)

	var project Project
	if err := s.dispatcher.Get(ctx, path, params, &project); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// Update applies a partial update to a project.
func (s *Projects) Update(ctx context.Context, projectID int64, data map[string]interface{}) (*Project, error) {
	if err := validateID("project", projectID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/projects/%d", projectID)

	var project Project
	if err := s.dispatcher.Put(ctx, path, data, &project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &project, nil
}

// Delete deletes a project.
func (s *Projects) Delete(ctx context.Context, projectID int64) error {
	if err := validateID("project", projectID); err != nil {
		return err
	}
	path := fmt.Sprintf("/projects/%d", projectID)

	if err := s.dispatcher.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// FindAll returns projects matching params, in compact representation.
func (s *Projects) FindAll(ctx context.Context, params map[string]string) ([]Project, error) {
	var projects []Project
	if err := s.dispatcher.GetCollection(ctx, "/projects", params, &projects); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// FindByWorkspace returns the projects in a workspace.
func (s *Projects) FindByWorkspace(ctx context.Context, workspaceID int64, params map[string]string) ([]Project, error) {
	if err := validateID("workspace", workspaceID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/workspaces/%d/projects", workspaceID)

	var projects []Project
	if err := s.dispatcher.GetCollection(ctx, path, params, &projects); err != nil {
		return nil, fmt.Errorf("failed to list projects by workspace: %w", err)
	}
	return projects, nil
}
