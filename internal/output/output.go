// Package output renders CLI results as a table, JSON, or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/ArtisanCodesmith/node-asana/pkg/asana"
)

// Format selects a rendering style.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a -format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, json, or yaml)", s)
	}
}

// marshal renders v in a machine-readable format.
func marshal(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("format %q is not machine-readable", f)
	}
}

// WriteTasks renders a task collection.
func WriteTasks(w io.Writer, f Format, tasks []asana.Task) error {
	if f != FormatTable {
		return marshal(w, f, tasks)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tDUE\tNAME")
	for _, t := range tasks {
		done := ""
		if t.Completed {
			done = "x"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.ID, done, t.DueOn, normalizeName(t.Name))
	}
	return tw.Flush()
}

// WriteTask renders a single complete task record.
func WriteTask(w io.Writer, f Format, task *asana.Task) error {
	if f != FormatTable {
		return marshal(w, f, task)
	}

	fmt.Fprintf(w, "id:        %d\n", task.ID)
	fmt.Fprintf(w, "name:      %s\n", normalizeName(task.Name))
	fmt.Fprintf(w, "completed: %t\n", task.Completed)
	if task.Assignee != nil {
		fmt.Fprintf(w, "assignee:  %s\n", task.Assignee.Name)
	}
	if task.DueOn != "" {
		fmt.Fprintf(w, "due:       %s\n", task.DueOn)
	}
	if task.Workspace != nil {
		fmt.Fprintf(w, "workspace: %s (%d)\n", task.Workspace.Name, task.Workspace.ID)
	}
	if len(task.Projects) > 0 {
		names := make([]string, len(task.Projects))
		for i, p := range task.Projects {
			names[i] = p.Name
		}
		fmt.Fprintf(w, "projects:  %s\n", strings.Join(names, ", "))
	}
	if len(task.Tags) > 0 {
		names := make([]string, len(task.Tags))
		for i, tg := range task.Tags {
			names[i] = tg.Name
		}
		fmt.Fprintf(w, "tags:      %s\n", strings.Join(names, ", "))
	}
	if task.Notes != "" {
		fmt.Fprintf(w, "notes:\n%s\n", task.Notes)
	}
	return nil
}

// WriteWorkspaces renders a workspace collection.
func WriteWorkspaces(w io.Writer, f Format, workspaces []asana.Workspace) error {
	if f != FormatTable {
		return marshal(w, f, workspaces)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tORG\tNAME")
	for _, ws := range workspaces {
		org := ""
		if ws.IsOrganization {
			org = "x"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", ws.ID, org, ws.Name)
	}
	return tw.Flush()
}

// normalizeName flattens a record name for single-line display. Empty names
// become "(untitled)".
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")
	if strings.TrimSpace(name) == "" {
		return "(untitled)"
	}
	return name
}
