package asana

import (
	"context"
	"fmt"
)

// Users exposes the user operations of the API.
type Users struct {
	dispatcher *Dispatcher
}

// Me retrieves the complete record for the authenticated user.
func (s *Users) Me(ctx context.Context, params map[string]string) (*User, error) {
	var user User
	if err := s.dispatcher.Get(ctx, "/users/me", params, &user); err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &user, nil
}

// FindByID retrieves the complete record for a single user.
func (s *Users) FindByID(ctx context.Context, userID int64, params map[string]string) (*User, error) {
	if err := validateID("user", userID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/users/%d", userID)

	var user User
	if err := s.dispatcher.Get(ctx, path, params, &user); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// FindAll returns users matching params, in compact representation.
func (s *Users) FindAll(ctx context.Context, params map[string]string) ([]User, error) {
	var users []User
	if err := s.dispatcher.GetCollection(ctx, "/users", params, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// FindByWorkspace returns the users in a workspace.
func (s *Users) FindByWorkspace(ctx context.Context, workspaceID int64, params map[string]string) ([]User, error) {
	if err := validateID("workspace", workspaceID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/workspaces/%d/users", workspaceID)

	var users []User
	if err := s.dispatcher.GetCollection(ctx, path, params, &users); err != nil {
		return nil, fmt.Errorf("failed to list users by workspace: %w", err)
	}
	return users, nil
}
