package asana

import (
	"context"
	"fmt"
)

// Tags exposes the tag operations of the API.
type Tags struct {
	dispatcher *Dispatcher
}

// Create creates a tag in the workspace named by the payload.
func (s *Tags) Create(ctx context.Context, data map[string]interface{}) (*Tag, error) {
	var tag Tag
	if err := s.dispatcher.Post(ctx, "/tags", data, &tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return &tag, nil
}

// CreateInWorkspace creates a tag in a specific workspace.
func (s *Tags) CreateInWorkspace(ctx context.Context, workspaceID int64, data map[string]interface{}) (*Tag, error) {
	if err := validateID("workspace", workspaceID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/workspaces/%d/tags", workspaceID)

	var tag Tag
	if err := s.dispatcher.Post(ctx, path, data, &tag); err != nil {
		return nil, fmt.Errorf("failed to create tag in workspace: %w", err)
	}
	return &tag, nil
}

// FindByID retrieves the complete record for a single tag.
func (s *Tags) FindByID(ctx context.Context, tagID int64, params map[string]string) (*Tag, error) {
	if err := validateID("tag", tagID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tags/%d", tagID)

	var tag Tag
	if err := s.dispatcher.Get(ctx, path, params, &tag); err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &tag, nil
}

// Update applies a partial update to a tag.
func (s *Tags) Update(ctx context.Context, tagID int64, data map[string]interface{}) (*Tag, error) {
	if err := validateID("tag", tagID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tags/%d", tagID)

	var tag Tag
	if err := s.dispatcher.Put(ctx, path, data, &tag); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return &tag, nil
}

// FindAll returns tags matching params, in compact representation.
func (s *Tags) FindAll(ctx context.Context, params map[string]string) ([]Tag, error) {
	var tags []Tag
	if err := s.dispatcher.GetCollection(ctx, "/tags", params, &tags); err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// FindByWorkspace returns the tags in a workspace.
func (s *Tags) FindByWorkspace(ctx context.Context, workspaceID int64, params map[string]string) ([]Tag, error) {
	if err := validateID("workspace", workspaceID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/workspaces/%d/tags", workspaceID)

	var tags []Tag
	if err := s.dispatcher.GetCollection(ctx, path, params, &tags); err != nil {
		return nil, fmt.Errorf("failed to list tags by workspace: %w", err)
	}
	return tags, nil
}
