package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/goaltracker/internal/client/models"
)

func (a *App) ListTasks(ctx context.Context, goalID string) error {
	a.loading("tasks")
	res := a.taskService.ListByGoal(ctx, goalID)
	if !res.Success {
		return a.failed("tasks "+goalID, res.Error)
	}
	if len(res.Data) == 0 {
		a.empty("No tasks yet. Use 'addtask " + goalID + "' to create one.")
		return nil
	}
	return a.printTasks(res.Data)
}

func (a *App) printTasks(tasks []models.Task) error {
	w := a.table()
	fmt.Fprintln(w, "\tID\tTITLE\tPRIORITY\tDUE")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", checkbox(t.Completed), t.ID, t.Title, orDash(t.Priority), formatDate(t.DueDate))
	}
	return w.Flush()
}

func (a *App) printTask(t *models.Task) {
	if t == nil {
		a.empty("Task not found")
		return
	}
	w := a.table()
	fmt.Fprintf(w, "ID:\t%s\n", t.ID)
	fmt.Fprintf(w, "Goal:\t%s\n", t.GoalID)
	fmt.Fprintf(w, "Title:\t%s %s\n", checkbox(t.Completed), t.Title)
	fmt.Fprintf(w, "Description:\t%s\n", orDash(t.Description))
	fmt.Fprintf(w, "Priority:\t%s\n", orDash(t.Priority))
	fmt.Fprintf(w, "Due:\t%s\n", formatDate(t.DueDate))
	_ = w.Flush()
}

func (a *App) AddTask(ctx context.Context, goalID string) error {
	in, err := a.inputTask(nil)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.loading("task")
	res := a.taskService.Create(ctx, goalID, in)
	if !res.Success {
		return a.failed("addtask "+goalID, res.Error)
	}
	fmt.Fprintln(a.out, "Task created.")
	a.printTask(res.Data)
	return nil
}

func (a *App) EditTask(ctx context.Context, id string) error {
	a.loading("task")
	cur := a.taskService.Get(ctx, id)
	if !cur.Success {
		return a.failed("edittask "+id, cur.Error)
	}

	in, err := a.inputTask(cur.Data)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	res := a.taskService.Update(ctx, id, in)
	if !res.Success {
		return a.failed("edittask "+id, res.Error)
	}
	fmt.Fprintln(a.out, "Task updated.")
	a.printTask(res.Data)
	return nil
}

func (a *App) inputTask(cur *models.Task) (models.TaskInput, error) {
	var in models.TaskInput
	if cur != nil {
		in = models.TaskInput{Title: cur.Title, Description: cur.Description, Priority: cur.Priority, DueDate: cur.DueDate}
	}

	err := a.promptFields([]field{
		{"Title", &in.Title},
		{"Description", &in.Description},
		{"Priority (low, medium, high)", &in.Priority},
	})
	if err != nil {
		return in, err
	}

	var date string
	if in.DueDate != nil {
		date = in.DueDate.Format(dateLayout)
	}
	if err := a.promptKeep("Due date (YYYY-MM-DD)", &date); err != nil {
		return in, err
	}
	t, err := parseDate(date)
	if err != nil {
		return in, err
	}
	in.DueDate = t

	if in.Title == "" {
		return in, errTitleRequired
	}
	return in, nil
}

func (a *App) ToggleTask(ctx context.Context, id string) error {
	res := a.taskService.ToggleComplete(ctx, id)
	if !res.Success {
		return a.failed("toggle "+id, res.Error)
	}
	if res.Data != nil {
		fmt.Fprintf(a.out, "%s %s\n", checkbox(res.Data.Completed), res.Data.Title)
	} else {
		fmt.Fprintln(a.out, "Task updated.")
	}
	return nil
}

func (a *App) DeleteTask(ctx context.Context, id string) error {
	res := a.taskService.Delete(ctx, id)
	if !res.Success {
		return a.failed("deltask "+id, res.Error)
	}
	fmt.Fprintln(a.out, "Task deleted.")
	return nil
}
