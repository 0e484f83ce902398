package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Token(ctx context.Context) error

	Dashboard(ctx context.Context) error
	ListGoals(ctx context.Context) error
	ShowGoal(ctx context.Context, id string) error
	AddGoal(ctx context.Context) error
	EditGoal(ctx context.Context, id string) error
	SetProgress(ctx context.Context, id string, progress int) error
	DeleteGoal(ctx context.Context, id string) error

	ListTasks(ctx context.Context, goalID string) error
	AddTask(ctx context.Context, goalID string) error
	EditTask(ctx context.Context, id string) error
	ToggleTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error

	ListRecommendations(ctx context.Context, category string) error
	ShowRecommendation(ctx context.Context, id string) error
	ListCategories(ctx context.Context) error

	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
}

const (
	helpAnonymous = `Available commands:
  register, login, whoami, token
  recs [category], rec <id>, categories
  help, exit`

	helpLoggedIn = `Available commands:
  dashboard
  goals, goal <id>, addgoal, editgoal <id>, progress <id> <0-100>, delgoal <id>
  tasks <goalID>, addtask <goalID>, edittask <id>, toggle <id>, deltask <id>
  recs [category], rec <id>, categories
  profile, editprofile, passwd
  whoami, token, logout, help, exit`
)

// runREPL reads commands line by line from scanner and dispatches them to a.
// The first field is the command, the rest are its arguments. Commands that
// need an argument print their usage when it is missing. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers render
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gt%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		// usage prints the hint and reports whether args are missing.
		usage := func(n int, hint string) bool {
			if len(args) < n {
				printlnFn("Usage:", hint)
				return true
			}
			return false
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "token":
			_ = a.Token(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)
		case "goals":
			_ = a.ListGoals(ctx)
		case "goal":
			if !usage(1, "goal <id>") {
				_ = a.ShowGoal(ctx, args[0])
			}
		case "addgoal":
			_ = a.AddGoal(ctx)
		case "editgoal":
			if !usage(1, "editgoal <id>") {
				_ = a.EditGoal(ctx, args[0])
			}
		case "progress":
			if usage(2, "progress <id> <0-100>") {
				continue
			}
			p, err := strconv.Atoi(args[1])
			if err != nil || p < 0 || p > 100 {
				printlnFn("Progress must be a number between 0 and 100")
				continue
			}
			_ = a.SetProgress(ctx, args[0], p)
		case "delgoal":
			if !usage(1, "delgoal <id>") {
				_ = a.DeleteGoal(ctx, args[0])
			}

		case "tasks":
			if !usage(1, "tasks <goalID>") {
				_ = a.ListTasks(ctx, args[0])
			}
		case "addtask":
			if !usage(1, "addtask <goalID>") {
				_ = a.AddTask(ctx, args[0])
			}
		case "edittask":
			if !usage(1, "edittask <id>") {
				_ = a.EditTask(ctx, args[0])
			}
		case "toggle":
			if !usage(1, "toggle <id>") {
				_ = a.ToggleTask(ctx, args[0])
			}
		case "deltask":
			if !usage(1, "deltask <id>") {
				_ = a.DeleteTask(ctx, args[0])
			}

		case "recs":
			_ = a.ListRecommendations(ctx, strings.Join(args, " "))
		case "rec":
			if !usage(1, "rec <id>") {
				_ = a.ShowRecommendation(ctx, args[0])
			}
		case "categories":
			_ = a.ListCategories(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)
		case "editprofile":
			_ = a.EditProfile(ctx)
		case "passwd":
			_ = a.ChangePassword(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
