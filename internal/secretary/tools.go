package secretary

import "github.com/DimitrisBelias/Personal-Secretary/internal/llm"

// Tool names the model may invoke. The menu is fixed; anything else
// comes back as an unknown-tool result.
const (
	toolAddAssignment = "add_assignment"
	toolAddLab        = "add_lab"
	toolAddProject    = "add_project"
	toolUpcomingWork  = "query_upcoming_work"
	toolListAssign    = "list_assignments"
	toolListLabs      = "list_labs"
	toolListProjects  = "list_projects"
)

const systemPrompt = `You are a helpful virtual secretary managing a student's university work databases.
Use the tools available to actually perform actions. When the user asks to add something, use the appropriate tool.
Be conversational and confirm what you've done.`

func addItemSchema(kind string) map[string]any {
	props := map[string]any{
		"title":    map[string]any{"type": "string", "description": "The title of the " + kind},
		"course":   map[string]any{"type": "string", "description": "The course code (e.g., 'PHY202', 'CS101')"},
		"due_date": map[string]any{"type": "string", "description": "Due date in YYYY-MM-DD format"},
		"notes":    map[string]any{"type": "string", "description": "Optional notes"},
	}
	if kind == "assignment" {
		props["status"] = map[string]any{
			"type":        "string",
			"enum":        []string{"Not started", "In progress", "Done"},
			"description": "Current status of the assignment",
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{"title", "course", "due_date"},
	}
}

func emptySchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

// toolDefinitions returns the fixed menu of invocable operations with
// their declared input schemas.
func toolDefinitions() []llm.Tool {
	return []llm.Tool{
		{
			Name:        toolAddAssignment,
			Description: "Add a new assignment to the Assignments database",
			InputSchema: addItemSchema("assignment"),
		},
		{
			Name:        toolAddLab,
			Description: "Add a new lab to the Labs database",
			InputSchema: addItemSchema("lab"),
		},
		{
			Name:        toolAddProject,
			Description: "Add a new project to the Projects database",
			InputSchema: addItemSchema("project"),
		},
		{
			Name:        toolUpcomingWork,
			Description: "Query all upcoming work (assignments, labs, projects) within a specified number of days",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"days": map[string]any{"type": "number", "description": "Number of days to look ahead (default: 7)"},
				},
			},
		},
		{
			Name:        toolListAssign,
			Description: "List all assignments from the Assignments database",
			InputSchema: emptySchema(),
		},
		{
			Name:        toolListLabs,
			Description: "List all labs from the Labs database",
			InputSchema: emptySchema(),
		},
		{
			Name:        toolListProjects,
			Description: "List all projects from the Projects database",
			InputSchema: emptySchema(),
		},
	}
}
