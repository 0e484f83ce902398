package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/goaltracker/internal/client/models"
	"github.com/dmitrijs2005/goaltracker/internal/common"
)

var errPasswordMismatch = errors.New("passwords do not match")

func (a *App) ShowProfile(ctx context.Context) error {
	a.loading("profile")
	res := a.profileService.Get(ctx)
	if !res.Success {
		return a.failed("profile", res.Error)
	}
	a.printProfile(res.Data)
	return nil
}

func (a *App) printProfile(p *models.Profile) {
	if p == nil {
		a.empty("Profile not available")
		return
	}
	w := a.table()
	fmt.Fprintf(w, "Name:\t%s\n", p.Name)
	fmt.Fprintf(w, "Email:\t%s\n", p.Email)
	fmt.Fprintf(w, "Bio:\t%s\n", orDash(p.Bio))
	fmt.Fprintf(w, "Interests:\t%s\n", orDash(strings.Join(p.Interests, ", ")))
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Member since:\t%s\n", p.CreatedAt.Format(dateLayout))
	}
	_ = w.Flush()
}

func (a *App) EditProfile(ctx context.Context) error {
	a.loading("profile")
	cur := a.profileService.Get(ctx)
	if !cur.Success {
		return a.failed("editprofile", cur.Error)
	}

	var in models.ProfileInput
	if cur.Data != nil {
		in = models.ProfileInput{Name: cur.Data.Name, Bio: cur.Data.Bio, Interests: cur.Data.Interests}
	}
	if err := a.promptKeep("Name", &in.Name); err != nil {
		return err
	}
	if err := a.promptKeep("Bio", &in.Bio); err != nil {
		return err
	}
	interests, err := GetList(a.reader, "Interests, empty to keep", a.out)
	if err != nil {
		return err
	}
	if len(interests) > 0 {
		in.Interests = interests
	}

	res := a.profileService.Update(ctx, in)
	if !res.Success {
		return a.failed("editprofile", res.Error)
	}
	fmt.Fprintln(a.out, "Profile updated.")
	a.printProfile(res.Data)
	return nil
}

// ChangePassword reads the current and new password without echo and wipes
// both before returning.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	confirm, err := getPassword("Repeat new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(next, confirm) {
		fmt.Fprintln(a.out, "Passwords do not match.")
		return errPasswordMismatch
	}

	res := a.profileService.ChangePassword(ctx, models.PasswordChange{
		CurrentPassword: string(current),
		NewPassword:     string(next),
	})
	if !res.Success {
		return a.failed("passwd", res.Error)
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}
