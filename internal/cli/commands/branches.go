package commands

import (
	"JewelryStore/internal/config"
	"context"
	"fmt"
	"net/http"
)

type branchesCmd struct{}

func (branchesCmd) Name() string        { return "branches" }
func (branchesCmd) Description() string { return "List branches" }
func (branchesCmd) Usage() string       { return "branches" }

func (branchesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []branchOut
	if err := newClient(cfg).Call(ctx, http.MethodGet, "/api/branches", nil, nil, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No branches")
		return nil
	}
	tw := newTable()
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tMANAGER")
	for _, b := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ID, b.Name, b.Location, b.Manager.label())
	}
	return tw.Flush()
}

func init() { RegisterCmd(branchesCmd{}) }
