package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/goaltracker/internal/client/client"
	"github.com/dmitrijs2005/goaltracker/internal/client/models"
	"github.com/dmitrijs2005/goaltracker/internal/common"
)

// Register prompts for name, email and password and creates an account.
// On success the session is re-checked so the prompt shows the new user.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.loading("registration")
	res := a.authService.Register(ctx, models.Registration{Name: name, Email: email, Password: string(password)})
	if !res.Success {
		return a.failed("register", res.Error)
	}

	a.session.Refresh(ctx)
	fmt.Fprintln(a.out, "Registration successful!")
	a.printSession()
	return nil
}

// Login prompts for credentials and authenticates. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.loading("login")
	res := a.authService.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if !res.Success {
		return a.failed("login", res.Error)
	}

	a.log.Info(ctx, "login successful")
	a.session.Refresh(ctx)
	a.printSession()
	return nil
}

// Logout forgets the session locally. The server is not notified.
func (a *App) Logout(ctx context.Context) error {
	res := a.session.Logout(ctx)
	if !res.Success {
		return a.failed("logout", res.Error)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI re-checks the session against the server.
func (a *App) WhoAmI(ctx context.Context) error {
	a.loading("session")
	a.session.Refresh(ctx)

	snap := a.session.Snapshot()
	if snap.Error != "" {
		return a.failed("whoami", snap.Error)
	}
	a.printSession()
	return nil
}

// Token shows what the stored token claims about itself. Claims are not
// verified.
func (a *App) Token(ctx context.Context) error {
	token := a.authService.Token(ctx)
	if token == "" {
		a.empty("No session token stored.")
		return nil
	}

	info := client.DescribeToken(token)
	if !info.JWT {
		fmt.Fprintln(a.out, "Opaque session token (no readable claims).")
		return nil
	}

	w := a.table()
	fmt.Fprintf(w, "Subject:\t%s\n", orDash(info.Subject))
	fmt.Fprintf(w, "Issued:\t%s\n", formatTime(info.IssuedAt))
	fmt.Fprintf(w, "Expires:\t%s\n", formatTime(info.ExpiresAt))
	if !info.ExpiresAt.IsZero() && time.Now().After(info.ExpiresAt) {
		fmt.Fprintf(w, "\t(expired; the server will reject it)\n")
	}
	return w.Flush()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
