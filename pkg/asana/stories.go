package asana

import (
	"context"
	"fmt"
)

// Stories exposes the story operations of the API. Stories are created
// through Tasks.AddComment; this service only reads them.
type Stories struct {
	dispatcher *Dispatcher
}

// FindByID retrieves the complete record for a single story.
func (s *Stories) FindByID(ctx context.Context, storyID int64, params map[string]string) (*Story, error) {
	if err := validateID("story", storyID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/stories/%d", storyID)

	var story Story
	if err := s.dispatcher.Get(ctx, path, params, &story); err != nil {
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	return &story, nil
}

// FindByTask returns the activity feed of a task, oldest first.
func (s *Stories) FindByTask(ctx context.Context, taskID int64, params map[string]string) ([]Story, error) {
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
