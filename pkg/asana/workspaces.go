package asana

import (
	"context"
	"fmt"
)

// Workspaces exposes the workspace operations of the API. Workspaces cannot
// be created or deleted through the API, only listed, renamed, and searched.
type Workspaces struct {
	dispatcher *Dispatcher
}

// FindByID retrieves the complete record for a single workspace.
func (s *Workspaces) FindByID(ctx context.Context, workspaceID int64, params map[string]string) (*Workspace, error) {
	if err := validateID("workspace", workspaceID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/workspaces/%d", workspaceID)

	var workspace Workspace
	if err := s.dispatcher.Get(ctx, path, params, &workspace); err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return &workspace, nil
}

// FindAll returns all workspaces visible to the authenticated user.
func (s *Workspaces) FindAll(ctx context.Context, params map[string]string) ([]Workspace, error) {
	var workspaces []Workspace
	if err := s.dispatcher.GetCollection(ctx, "/workspaces", params, &workspaces); err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

// Update applies a partial update to a workspace. Currently only the name is
// mutable remotely.
func (s *Workspaces) Update(ctx context.Context, workspaceID int64, data map[string]interface{}) (*Workspace, error) {
	if err := validateID("workspace", workspaceID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/workspaces/%d", workspaceID)

	var workspace Workspace
	if err := s.dispatcher.Put(ctx, path, data, &workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}
	return &workspace, nil
}

// Typeahead searches a workspace for objects matching a query. params carries
// the query and type filter, passed through unmodified.
func (s *Workspaces) Typeahead(ctx context.Context, workspaceID int64, params map[string]string) ([]Ref, error) {
	if err := validateID("workspace", workspaceID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/workspaces/%d/typeahead", workspaceID)

	var results []Ref
	if err := s.dispatcher.GetCollection(ctx, path, params, &results); err != nil {
		return nil, fmt.Errorf("failed to run typeahead search: %w", err)
	}
	return results, nil
}
