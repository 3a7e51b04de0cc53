package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"todoTracker/internal/cli/dto"
	"todoTracker/internal/models/todo"
)

const timeLayout = "2006/01/02 15:04:05"

func (c *CLI) renderTodos(todos []*todo.Todo) {
	if c.cfg.Output == "json" {
		c.renderJSON(todos)
		return
	}
	c.renderTable(todos)
}

func (c *CLI) renderTable(todos []*todo.Todo) {
	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tНАЗВАНИЕ\tОПИСАНИЕ\tСОЗДАНА\tВЫПОЛНЕНА")

	for _, t := range todos {
		mark := "[ ]"
		completedAt := "-"
		if t.Status == todo.StatusCompleted {
			mark = "[x]"
			completedAt = t.CompletedAt.Format(timeLayout)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			mark,
			t.ID.String(),
			t.Title,
			t.Description,
			t.CreatedAt.Format(timeLayout),
			completedAt,
		)
	}
	w.Flush()
}

func (c *CLI) renderJSON(todos []*todo.Todo) {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	encoder.Encode(dto.FromTodoList(todos))
}
