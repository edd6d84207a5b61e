// Package cli implements the interactive insurance console: a two-state
// machine that moves between the welcome menu and the logged-in user's role
// menu.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/core/ports"
	"github.com/99minutos/insurance-system/internal/metrics"
)

const invalidChoice = "Invalid choice. Please try again."

// Services bundles the use cases the console drives.
type Services struct {
	Auth      ports.AuthService
	Customers ports.CustomerService
	Admin     ports.AdminService
	Staff     ports.StaffService
}

// Options configures the console streams.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Colors bool
	Logger zerolog.Logger
}

// App is the interactive console. It holds at most one session.
type App struct {
	svc     Services
	in      *Prompter
	out     *Printer
	log     zerolog.Logger
	session *domain.Session
}

func New(svc Services, opts Options) *App {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	out := NewPrinter(opts.Out, opts.Err, opts.Colors)
	return &App{
		svc: svc,
		in:  NewPrompter(opts.In, out),
		out: out,
		log: opts.Logger,
	}
}

// Run loops until the user exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.endSession(context.WithoutCancel(ctx))

	for {
		if ctx.Err() != nil {
			return nil
		}

		var (
			exit bool
			err  error
		)
		if a.session == nil {
			exit, err = a.welcome(ctx)
		} else {
			exit, err = a.roleMenu(ctx)
		}

		if errors.Is(err, io.EOF) {
			a.out.Print("")
			exit, err = true, nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if exit {
			a.out.Info("Thank you for using the Policy Management System!")
			return nil
		}
	}
}

// welcome is the unauthenticated state.
func (a *App) welcome(ctx context.Context) (bool, error) {
	idx, err := a.choose("Welcome to Insurance Management System", []string{"Login", "Register", "Exit"})
	if err != nil {
		return false, err
	}
	switch idx {
	case 0:
		return false, a.report(a.login(ctx))
	case 1:
		return false, a.report(a.register(ctx))
	case 2:
		return true, nil
	}
	return false, nil
}

func (a *App) login(ctx context.Context) error {
	a.out.Header("Login")
	email, err := a.in.Line("Enter email")
	if err != nil {
		return err
	}
	password, err := a.in.Line("Enter password")
	if err != nil {
		return err
	}

	session, err := a.svc.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.session = &session
	a.out.Success("Login successful! Welcome, %s (%s).", session.Email, session.Role)
	return nil
}

func (a *App) register(ctx context.Context) error {
	a.out.Header("Register")
	email, err := a.in.Line("Enter email")
	if err != nil {
		return err
	}
	password, err := a.in.Line("Enter password")
	if err != nil {
		return err
	}
	answer, err := a.in.Line("Enter role (admin, agent, underwriter, claim adjuster, customer; blank for none)")
	if err != nil {
		return err
	}
	role, ok := domain.ParseRole(answer)
	if !ok {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, answer)
	}

	if _, err := a.svc.Auth.Register(ctx, email, password, role); err != nil {
		return err
	}
	a.out.Success("Registration successful! Please log in.")
	return nil
}

// roleMenu is the authenticated state. The session is re-checked before
// every menu so a revoked token falls back to the welcome menu.
func (a *App) roleMenu(ctx context.Context) (bool, error) {
	user, err := a.currentUser(ctx)
	if err != nil {
		return false, a.report(err)
	}

	items := MenuFor(user.Role)
	labels := make([]string, 0, len(items)+2)
	for _, it := range items {
		labels = append(labels, it.Label)
	}
	labels = append(labels, "Logout", "Exit")

	a.out.Header("Insurance Management System")
	a.out.Print("Logged in as: %s (%s)", user.Email, user.Role)
	idx, err := a.chooseFrom(labels)
	if err != nil || idx < 0 {
		return false, err
	}

	switch idx {
	case len(items):
		a.endSession(ctx)
		a.out.Success("Logged out successfully.")
		return false, nil
	case len(items) + 1:
		return true, nil
	}

	item := items[idx]
	metrics.MenuActionsTotal.WithLabelValues(user.Role.String(), item.Key).Inc()
	a.log.Debug().Str("email", user.Email).Str("action", item.Key).Msg("menu action")
	return false, a.report(item.Action(a, ctx, user))
}

// currentUser resolves the held session. A failed lookup drops the session.
func (a *App) currentUser(ctx context.Context) (*domain.User, error) {
	if a.session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	user, err := a.svc.Auth.Authenticate(ctx, a.session.Token)
	if err != nil {
		a.session = nil
		return nil, err
	}
	return user, nil
}

func (a *App) endSession(ctx context.Context) {
	if a.session == nil {
		return
	}
	if err := a.svc.Auth.Logout(ctx, a.session.Token); err != nil {
		a.log.Warn().Err(err).Str("email", a.session.Email).Msg("logout failed")
	}
	a.session = nil
}

// choose prints a titled, numbered menu and reads a selection. It returns
// -1 after reporting an invalid choice.
func (a *App) choose(title string, labels []string) (int, error) {
	a.out.Header(title)
	return a.chooseFrom(labels)
}

func (a *App) chooseFrom(labels []string) (int, error) {
	for i, l := range labels {
		a.out.Print("%d. %s", i+1, l)
	}
	answer, err := a.in.Line(fmt.Sprintf("\nEnter your choice (1-%d)", len(labels)))
	if err != nil && !errors.Is(err, domain.ErrInvalidInput) {
		return -1, err
	}
	n, convErr := strconv.Atoi(answer)
	if err != nil || convErr != nil || n < 1 || n > len(labels) {
		a.out.Error("%s", invalidChoice)
		return -1, nil
	}
	return n - 1, nil
}

// report prints err for the user and swallows it, except for end of input.
func (a *App) report(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return err
	}
	a.out.Error("%s", describeError(err, a.log))
	return nil
}
