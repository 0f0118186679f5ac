package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mvidalg/taskdeck/internal/app"
	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newTaskCommand creates the task parent command.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Short:   "Manage tasks on the board",
		GroupID: groupTask,
	}

	cmd.AddCommand(
		newTaskListCommand(c),
		newTaskAddCommand(c),
		newTaskEditCommand(c),
		newTaskDoneCommand(c),
		newTaskDeleteCommand(c),
	)

	return cmd
}

// taskRow is the serialized form of a task for list output.
type taskRow struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Status      string `json:"status" yaml:"status"`
}

// newTaskListCommand creates the task list command.
func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Output string
		Status string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, grouped by column.

Examples:
  taskdeck task list
  taskdeck task list --status in-progress
  taskdeck task list -o json
  taskdeck task list -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.FetchTasksUseCase().Execute(cmd.Context(), usecase.FetchTasksInput{})
			if err != nil {
				return err
			}

			tasks := out.Tasks
			if opts.Status != "" {
				status := domain.Status(opts.Status)
				if !status.IsValid() {
					return fmt.Errorf("unknown status %q (pending, in-progress, completed)", opts.Status)
				}
				tasks = out.Board.Column(status)
			}

			rows := make([]taskRow, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, taskRow{
					ID:          t.ID,
					Title:       t.Title,
					Description: t.Description,
					DueDate:     string(t.DueDate),
					Status:      string(t.Status),
				})
			}

			switch opts.Output {
			case "table", "":
				return writeTaskTable(cmd.OutOrStdout(), rows)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			case "yaml":
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(rows)
			default:
				return fmt.Errorf("unknown output format %q (table, json, yaml)", opts.Output)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "table", "Output format: table, json or yaml")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Only one column: pending, in-progress or completed")

	return cmd
}

// writeTaskTable renders tasks as an aligned table.
func writeTaskTable(w io.Writer, rows []taskRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No tasks")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tDUE\tTITLE")
	for _, r := range rows {
		due := r.DueDate
		if due == "" {
			due = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shortID(r.ID), r.Status, due, r.Title)
	}
	return tw.Flush()
}

// shortID abbreviates server object IDs for table output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// newTaskAddCommand creates the task add command.
func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Due         string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Long: `Create a task in the Pending column.

Examples:
  taskdeck task add --title "Write report"
  taskdeck task add --title "Write report" --due 2026-09-15 --body "Q3 numbers"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.SaveTaskUseCase().Execute(cmd.Context(), usecase.SaveTaskInput{
				Draft: domain.TaskDraft{
					Title:       opts.Title,
					Description: opts.Description,
					DueDate:     domain.Date(opts.Due),
				},
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", shortID(out.Task.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title (required)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD, today or later)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newTaskEditCommand creates the task edit command.
func newTaskEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Due         string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's title, description or due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := findTask(cmd, c, args[0])
			if err != nil {
				return err
			}

			draft := domain.TaskDraft{
				ID:          task.ID,
				Title:       task.Title,
				Description: task.Description,
				DueDate:     task.DueDate,
			}
			if cmd.Flags().Changed("title") {
				draft.Title = opts.Title
			}
			if cmd.Flags().Changed("body") {
				draft.Description = opts.Description
			}
			if cmd.Flags().Changed("due") {
				draft.DueDate = domain.Date(opts.Due)
			}

			out, err := c.SaveTaskUseCase().Execute(cmd.Context(), usecase.SaveTaskInput{Draft: draft})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", shortID(out.Task.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD)")

	return cmd
}

// newTaskDoneCommand creates the task done command.
func newTaskDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Move a task one column forward",
		Long: `Move a task one column forward: Pending tasks move to In Progress,
In Progress tasks move to Completed. Completed tasks stay put.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := findTask(cmd, c, args[0])
			if err != nil {
				return err
			}

			out, err := c.AdvanceStatusUseCase().Execute(cmd.Context(), usecase.AdvanceStatusInput{Task: task})
			if err != nil {
				return err
			}

			if !out.Advanced {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s is already completed\n", shortID(task.ID))
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s is now %s\n", shortID(task.ID), out.Task.Status.Display())
			return nil
		},
	}
}

// newTaskDeleteCommand creates the task delete command.
func newTaskDeleteCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := findTask(cmd, c, args[0])
			if err != nil {
				return err
			}

			if !yes {
				answer, err := promptLine(cmd, fmt.Sprintf("Delete %q? [y/N] ", task.Title))
				if err != nil {
					return err
				}
				if !strings.EqualFold(answer, "y") {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			if _, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{Task: task}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", shortID(task.ID))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// findTask fetches the board and resolves a task by ID or unique ID prefix.
func findTask(cmd *cobra.Command, c *app.Container, id string) (*domain.Task, error) {
	out, err := c.FetchTasksUseCase().Execute(cmd.Context(), usecase.FetchTasksInput{})
	if err != nil {
		return nil, err
	}

	var match *domain.Task
	for _, t := range out.Tasks {
		if t.ID == id {
			return t, nil
		}
		if strings.HasPrefix(t.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("task ID %q is ambiguous", id)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("task %q: %w", id, domain.ErrTaskNotFound)
	}
	return match, nil
}
