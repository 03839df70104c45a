package commands

import (
	"JewelryStore/internal/config"
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type jewelryCmd struct{}

func (jewelryCmd) Name() string        { return "jewelry" }
func (jewelryCmd) Description() string { return "List jewelry (filters are optional)" }
func (jewelryCmd) Usage() string {
	return "jewelry [-branch id] [-category c] [-material m]"
}

func (c jewelryCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlags(c.Name())
	branch := fs.String("branch", "", "branch id")
	category := fs.String("category", "", "category")
	material := fs.String("material", "", "material")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	q := url.Values{}
	for k, v := range map[string]string{"branchId": *branch, "category": *category, "material": *material} {
		if v != "" {
			q.Set(k, v)
		}
	}
	var list []jewelryOut
	if err := newClient(cfg).Call(ctx, http.MethodGet, "/api/jewelry", q, nil, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No jewelry")
		return nil
	}
	tw := newTable()
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tMATERIAL\tPRICE\tQTY\tBRANCH")
	for _, j := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			j.ID, j.Name, j.Category, j.Material, j.Price.StringFixed(2), j.Quantity, j.Branch.label())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(jewelryCmd{}) }
