package commands

import (
	"JewelryStore/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"

	"JewelryStore/internal/cli/api"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth token" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	res, err := newClient(cfg).Login(ctx, args[0], args[1])
	if err != nil {
		if api.StatusOf(err) == http.StatusUnauthorized {
			return errors.New("invalid username or password")
		}
		return err
	}
	branch := "-"
	if res.User.BranchID != nil {
		branch = *res.User.BranchID
	}
	fmt.Fprintf(Out, "Logged in as %s (%s, branch %s)\n", res.User.Username, res.User.Role, branch)
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget stored auth token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := newClient(cfg).Logout(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

type meCmd struct{}

func (meCmd) Name() string        { return "me" }
func (meCmd) Description() string { return "Show current account" }
func (meCmd) Usage() string       { return "me" }

func (meCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var me struct {
		Username string  `json:"username"`
		Name     string  `json:"name"`
		Role     string  `json:"role"`
		BranchID *string `json:"branchId"`
	}
	if err := newClient(cfg).Call(ctx, http.MethodGet, "/api/auth/me", nil, nil, &me); err != nil {
		return err
	}
	branch := "-"
	if me.BranchID != nil {
		branch = *me.BranchID
	}
	fmt.Fprintf(Out, "%s (%s)\nrole: %s\nbranch: %s\n", me.Username, me.Name, me.Role, branch)
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
	RegisterCmd(meCmd{})
}
