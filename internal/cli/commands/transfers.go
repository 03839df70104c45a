package commands

import (
	"JewelryStore/internal/config"
	"JewelryStore/internal/model"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type requestCmd struct{}

func (requestCmd) Name() string        { return "request" }
func (requestCmd) Description() string { return "Request a transfer of jewelry to another branch" }
func (requestCmd) Usage() string       { return "request <jewelryId> <toBranchId> <quantity>" }

func (requestCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	qty, err := strconv.Atoi(args[2])
	if err != nil {
		return ErrUsage
	}
	payload := map[string]any{"jewelryId": args[0], "toBranchId": args[1], "quantity": qty}
	var t transferOut
	if err := newClient(cfg).Call(ctx, http.MethodPost, "/api/transfer-requests", nil, payload, &t); err != nil {
		return err
	}
	printTransfer(t)
	return nil
}

type respondCmd struct{}

func (respondCmd) Name() string        { return "respond" }
func (respondCmd) Description() string { return "Approve or reject a pending transfer request" }
func (respondCmd) Usage() string       { return "respond <requestId> approve|reject" }

func (respondCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	var status string
	switch strings.ToLower(args[1]) {
	case "approve", model.TransferApproved:
		status = model.TransferApproved
	case "reject", model.TransferRejected:
		status = model.TransferRejected
	default:
		return ErrUsage
	}
	var t transferOut
	path := "/api/transfer-requests/" + url.PathEscape(args[0])
	if err := newClient(cfg).Call(ctx, http.MethodPut, path, nil, map[string]string{"status": status}, &t); err != nil {
		return err
	}
	printTransfer(t)
	return nil
}

type transfersCmd struct{}

func (transfersCmd) Name() string        { return "transfers" }
func (transfersCmd) Description() string { return "List transfer requests" }
func (transfersCmd) Usage() string       { return "transfers [-status s] [-branch id]" }

func (c transfersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlags(c.Name())
	status := fs.String("status", "", "pending|approved|rejected")
	branch := fs.String("branch", "", "branch id (source or destination)")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	q := url.Values{}
	if *status != "" {
		q.Set("status", *status)
	}
	if *branch != "" {
		q.Set("branchId", *branch)
	}
	var list []transferOut
	if err := newClient(cfg).Call(ctx, http.MethodGet, "/api/transfer-requests", q, nil, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No transfer requests")
		return nil
	}
	tw := newTable()
	fmt.Fprintln(tw, "ID\tJEWELRY\tQTY\tFROM\tTO\tSTATUS\tREQUESTED BY\tREQUESTED AT")
	for _, t := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Jewelry.label(), t.Quantity, t.FromBranch.label(), t.ToBranch.label(),
			t.Status, t.Requester.label(), t.RequestedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func init() {
	RegisterCmd(requestCmd{})
	RegisterCmd(respondCmd{})
	RegisterCmd(transfersCmd{})
}
