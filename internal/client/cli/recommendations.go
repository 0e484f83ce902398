package cli

import (
	"context"
	"fmt"
	"strings"
)

// ListRecommendations prints recommendations in the order the server ranked them.
func (a *App) ListRecommendations(ctx context.Context, category string) error {
	a.loading("recommendations")
	res := a.recService.List(ctx, category)
	if !res.Success {
		return a.failed(strings.TrimSpace("recs "+category), res.Error)
	}
	if len(res.Data) == 0 {
		a.empty("No recommendations found")
		return nil
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDIFFICULTY\tMINUTES")
	for _, r := range res.Data {
		minutes := "-"
		if r.DurationMinutes > 0 {
			minutes = fmt.Sprint(r.DurationMinutes)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Title, orDash(r.Category), orDash(r.Difficulty), minutes)
	}
	return w.Flush()
}

func (a *App) ShowRecommendation(ctx context.Context, id string) error {
	a.loading("recommendation")
	res := a.recService.Get(ctx, id)
	if !res.Success {
		return a.failed("rec "+id, res.Error)
	}
	r := res.Data
	if r == nil {
		a.empty("Recommendation not found")
		return nil
	}

	w := a.table()
	fmt.Fprintf(w, "Title:\t%s\n", r.Title)
	fmt.Fprintf(w, "Description:\t%s\n", orDash(r.Description))
	fmt.Fprintf(w, "Category:\t%s\n", orDash(r.Category))
	fmt.Fprintf(w, "Difficulty:\t%s\n", orDash(r.Difficulty))
	if r.DurationMinutes > 0 {
		fmt.Fprintf(w, "Duration:\t%d min\n", r.DurationMinutes)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(w, "Tags:\t%s\n", strings.Join(r.Tags, ", "))
	}
	if r.URL != "" {
		fmt.Fprintf(w, "Link:\t%s\n", r.URL)
	}
	return w.Flush()
}

func (a *App) ListCategories(ctx context.Context) error {
	a.loading("categories")
	res := a.recService.ListCategories(ctx)
	if !res.Success {
		return a.failed("categories", res.Error)
	}
	if len(res.Data) == 0 {
		a.empty("No categories available")
		return nil
	}
	for _, c := range res.Data {
		fmt.Fprintln(a.out, "-", c)
	}
	return nil
}
