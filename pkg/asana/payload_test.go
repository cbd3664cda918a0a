package asana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload_DropsZeroFields(t *testing.T) {
	m, err := Payload(&Task{Name: "Buy catnip", Completed: true})
	require.NoError(t, err)

	assert.Equal(t, "Buy catnip", m["name"])
	assert.Equal(t, true, m["completed"])

	// Unset omitempty fields must not leak into a partial update.
	assert.NotContains(t, m, "notes")
	assert.NotContains(t, m, "assignee")
	assert.NotContains(t, m, "due_on")
}

func TestPayload_NestedRef(t *testing.T) {
	m, err := Payload(&Project{Name: "Roadmap", Workspace: &Ref{ID: 55}})
	require.NoError(t, err)

	assert.Equal(t, "Roadmap", m["name"])
	require.Contains(t, m, "workspace")
}
