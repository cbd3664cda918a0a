package asana

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResources_RequestShapes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		call     func(c *Client) error
		response string
		method   string
		path     string
	}{
		{
			name: "Projects.Create",
			call: func(c *Client) error {
				_, err := c.Projects.Create(ctx, map[string]interface{}{"name": "x"})
				return err
			},
			response: recordResponse,
			method:   "POST",
			path:     "/projects",
		},
		{
			name: "Projects.CreateInWorkspace",
			call: func(c *Client) error {
				_, err := c.Projects.CreateInWorkspace(ctx, 55, map[string]interface{}{"name": "x"})
				return err
			},
			response: recordResponse,
			method:   "POST",
			path:     "/workspaces/55/projects",
		},
		{
			name: "Projects.FindByID",
			call: func(c *Client) error {
				_, err := c.Projects.FindByID(ctx, 123, nil)
				return err
			},
			response: recordResponse,
			method:   "GET",
			path:     "/projects/123",
		},
		{
			name: "Projects.Update",
			call: func(c *Client) error {
				_, err := c.Projects.Update(ctx, 123, map[string]interface{}{"archived": true})
				return err
			},
			response: recordResponse,
			method:   "PUT",
			path:     "/projects/123",
		},
		{
			name: "Projects.Delete",
			call: func(c *Client) error {
				return c.Projects.Delete(ctx, 123)
			},
			response: recordResponse,
			method:   "DELETE",
			path:     "/projects/123",
		},
		{
			name: "Projects.FindAll",
			call: func(c *Client) error {
				_, err := c.Projects.FindAll(ctx, nil)
				return err
			},
			response: collectionResponse,
			method:   "GET",
			path:     "/projects",
		},
		{
			name: "Projects.FindByWorkspace",
			call: func(c *Client) error {
				_, err := c.Projects.FindByWorkspace(ctx, 55, nil)
				return err
			},
			response: collectionResponse,
			method:   "GET",
			path:     "/workspaces/55/projects",
		},
		{
			name: "Tags.Create",
			call: func(c *Client) error {
				_, err := c.Tags.Create(ctx, map[string]interface{}{"name": "x"})
				return err
			},
			response: recordResponse,
			method:   "POST",
			path:     "/tags",
		},
		{
			name: "Tags.CreateInWorkspace",
			call: func(c *Client) error {
				_, err := c.Tags.CreateInWorkspace(ctx, 55, map[string]interface{}{"name": "x"})
				return err
			},
			response: recordResponse,
			method:   "POST",
			path:     "/workspaces/55/tags",
		},
		{
			name: "Tags.FindByID",
			call: func(c *Client) error {
				_, err := c.Tags.FindByID(ctx, 123, nil)
				return err
			},
			response: recordResponse,
			method:   "GET",
			path:     "/tags/123",
		},
		{
			name: "Tags.Update",
			call: func(c *Client) error {
				_, err := c.Tags.Update(ctx, 123, map[string]interface{}{"color": "red"})
				return err
			},
			response: recordResponse,
			method:   "PUT",
			path:     "/tags/123",
		},
		{
			name: "Tags.FindByWorkspace",
			call: func(c *Client) error {
				_, err := c.Tags.FindByWorkspace(ctx, 55, nil)
				return err
			},
			response: collectionResponse,
			method:   "GET",
			path:     "/workspaces/55/tags",
		},
		{
			name: "Workspaces.FindByID",
			call: func(c *Client) error {
				_, err := c.Workspaces.FindByID(ctx, 55, nil)
				return err
			},
			response: recordResponse,
			method:   "GET",
			path:     "/workspaces/55",
		},
		{
			name: "Workspaces.FindAll",
			call: func(c *Client) error {
				_, err := c.Workspaces.FindAll(ctx, nil)
				return err
			},
			response: collectionResponse,
			method:   "GET",
			path:     "/workspaces",
		},
		{
			name: "Workspaces.Update",
			call: func(c *Client) error {
				_, err := c.Workspaces.Update(ctx, 55, map[string]interface{}{"name": "y"})
				return err
			},
			response: recordResponse,
			method:   "PUT",
			path:     "/workspaces/55",
		},
		{
			name: "Workspaces.Typeahead",
			call: func(c *Client) error {
				_, err := c.Workspaces.Typeahead(ctx, 55, map[string]string{"type": "task", "query": "cat"})
				return err
			},
			response: collectionResponse,
			method:   "GET",
			path:     "/workspaces/55/typeahead",
		},
		{
			name: "Users.Me",
			call: func(c *Client) error {
				_, err := c.Users.Me(ctx, nil)
				return err
			},
			response: recordResponse,
			method:   "GET",
			path:     "/users/me",
		},
		{
			name: "Users.FindByID",
			call: func(c *Client) error {
				_, err := c.Users.FindByID(ctx, 42, nil)
				return err
			},
			response: recordResponse,
			method:   "GET",
			path:     "/users/42",
		},
		{
			name: "Users.FindAll",
			call: func(c *Client) error {
				_, err := c.Users.FindAll(ctx, nil)
				return err
			},
			response: collectionResponse,
			method:   "GET",
			path:     "/users",
		},
		{
			name: "Users.FindByWorkspace",
			call: func(c *Client) error {
				_, err := c.Users.FindByWorkspace(ctx, 55, nil)
				return err
			},
			response: collectionResponse,
			method:   "GET",
			path:     "/workspaces/55/users",
		},
		{
			name: "Stories.FindByID",
			call: func(c *Client) error {
				_, err := c.Stories.FindByID(ctx, 777, nil)
				return err
			},
			response: recordResponse,
			method:   "GET",
			path:     "/stories/777",
		},
		{
			name: "Stories.FindByTask",
			call: func(c *Client) error {
				_, err := c.Stories.FindByTask(ctx, 123, nil)
				return err
			},
			response: collectionResponse,
			method:   "GET",
			path:     "/tasks/123/stories",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, recorded := newRecordingClient(t, tt.response)

			require.NoError(t, tt.call(client))
			require.Len(t, *recorded, 1)
			assert.Equal(t, tt.method, (*recorded)[0].Method)
			assert.Equal(t, tt.path, (*recorded)[0].Path)
		})
	}
}

func TestResources_MissingIdentifierFailsFast(t *testing.T) {
	client, recorded := newRecordingClient(t, recordResponse)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"Projects.FindByID", func() error {
			_, err := client.Projects.FindByID(ctx, 0, nil)
			return err
		}},
		{"Projects.Delete", func() error {
			return client.Projects.Delete(ctx, 0)
		}},
		{"Tags.FindByID", func() error {
			_, err := client.Tags.FindByID(ctx, 0, nil)
			return err
		}},
		{"Workspaces.Typeahead", func() error {
			_, err := client.Workspaces.Typeahead(ctx, 0, nil)
			return err
		}},
		{"Users.FindByID", func() error {
			_, err := client.Users.FindByID(ctx, 0, nil)
			return err
		}},
		{"Stories.FindByTask", func() error {
			_, err := client.Stories.FindByTask(ctx, 0, nil)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.call())
		})
	}

	assert.Empty(t, *recorded)
}
