package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/goaltracker/internal/client/models"
)

var errTitleRequired = errors.New("title is required")

func (a *App) Dashboard(ctx context.Context) error {
	a.loading("dashboard")
	res := a.profileService.Dashboard(ctx)
	if !res.Success {
		return a.failed("dashboard", res.Error)
	}

	d := res.Data
	w := a.table()
	fmt.Fprintf(w, "Goals:\t%d total\t%d active\t%d completed\n", d.TotalGoals, d.ActiveGoals, d.CompletedGoals)
	fmt.Fprintf(w, "Tasks:\t%d total\t%d completed\t\n", d.TotalTasks, d.CompletedTasks)
	if err := w.Flush(); err != nil {
		return err
	}

	if len(d.UpcomingTasks) == 0 {
		a.empty("No upcoming tasks")
		return nil
	}
	fmt.Fprintln(a.out, "Upcoming:")
	return a.printTasks(d.UpcomingTasks)
}

func (a *App) ListGoals(ctx context.Context) error {
	a.loading("goals")
	res := a.goalService.List(ctx)
	if !res.Success {
		return a.failed("goals", res.Error)
	}
	if len(res.Data) == 0 {
		a.empty("No goals yet. Use 'addgoal' to create one.")
		return nil
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tSTATUS\tPROGRESS\tTARGET")
	for _, g := range res.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			g.ID, g.Title, orDash(g.Category), orDash(g.Status), progressBar(g.Progress), formatDate(g.TargetDate))
	}
	return w.Flush()
}

func (a *App) ShowGoal(ctx context.Context, id string) error {
	a.loading("goal")
	res := a.goalService.Get(ctx, id)
	if !res.Success {
		return a.failed("goal "+id, res.Error)
	}
	a.printGoal(res.Data)
	return nil
}

func (a *App) printGoal(g *models.Goal) {
	if g == nil {
		a.empty("Goal not found")
		return
	}
	w := a.table()
	fmt.Fprintf(w, "ID:\t%s\n", g.ID)
	fmt.Fprintf(w, "Title:\t%s\n", g.Title)
	fmt.Fprintf(w, "Description:\t%s\n", orDash(g.Description))
	fmt.Fprintf(w, "Category:\t%s\n", orDash(g.Category))
	fmt.Fprintf(w, "Status:\t%s\n", orDash(g.Status))
	fmt.Fprintf(w, "Progress:\t%s\n", progressBar(g.Progress))
	fmt.Fprintf(w, "Target:\t%s\n", formatDate(g.TargetDate))
	_ = w.Flush()
}

func (a *App) AddGoal(ctx context.Context) error {
	in, err := a.inputGoal(nil)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.loading("goal")
	res := a.goalService.Create(ctx, in)
	if !res.Success {
		return a.failed("addgoal", res.Error)
	}
	fmt.Fprintln(a.out, "Goal created.")
	a.printGoal(res.Data)
	return nil
}

func (a *App) EditGoal(ctx context.Context, id string) error {
	a.loading("goal")
	cur := a.goalService.Get(ctx, id)
	if !cur.Success {
		return a.failed("editgoal "+id, cur.Error)
	}

	in, err := a.inputGoal(cur.Data)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	res := a.goalService.Update(ctx, id, in)
	if !res.Success {
		return a.failed("editgoal "+id, res.Error)
	}
	fmt.Fprintln(a.out, "Goal updated.")
	a.printGoal(res.Data)
	return nil
}

// inputGoal prompts for goal fields. With cur set, an empty answer keeps
// the current value.
func (a *App) inputGoal(cur *models.Goal) (models.GoalInput, error) {
	var in models.GoalInput
	if cur != nil {
		in = models.GoalInput{
			Title:       cur.Title,
			Description: cur.Description,
			Category:    cur.Category,
			Status:      cur.Status,
			TargetDate:  cur.TargetDate,
		}
	}

	fields := []field{
		{"Title", &in.Title},
		{"Description", &in.Description},
		{"Category", &in.Category},
	}
	if cur != nil {
		fields = append(fields, field{"Status (active, completed, archived)", &in.Status})
	}
	if err := a.promptFields(fields); err != nil {
		return in, err
	}

	var date string
	if in.TargetDate != nil {
		date = in.TargetDate.Format(dateLayout)
	}
	if err := a.promptKeep("Target date (YYYY-MM-DD)", &date); err != nil {
		return in, err
	}
	t, err := parseDate(date)
	if err != nil {
		return in, err
	}
	in.TargetDate = t

	if in.Title == "" {
		return in, errTitleRequired
	}
	return in, nil
}

type field struct {
	prompt string
	dst    *string
}

func (a *App) promptFields(fields []field) error {
	for _, f := range fields {
		if err := a.promptKeep(f.prompt, f.dst); err != nil {
			return err
		}
	}
	return nil
}

// promptKeep asks for a value, showing and keeping *dst on empty input.
func (a *App) promptKeep(prompt string, dst *string) error {
	if *dst != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, *dst)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if v != "" {
		*dst = v
	}
	return nil
}

func (a *App) SetProgress(ctx context.Context, id string, progress int) error {
	a.loading("goal")
	res := a.goalService.UpdateProgress(ctx, id, progress)
	if !res.Success {
		return a.failed(fmt.Sprintf("progress %s %d", id, progress), res.Error)
	}
	fmt.Fprintf(a.out, "Progress set to %d%%.\n", progress)
	return nil
}

func (a *App) DeleteGoal(ctx context.Context, id string) error {
	res := a.goalService.Delete(ctx, id)
	if !res.Success {
		return a.failed("delgoal "+id, res.Error)
	}
	fmt.Fprintln(a.out, "Goal deleted.")
	return nil
}
