package commands

import (
	"JewelryStore/internal/cli/api"
	"JewelryStore/internal/config"
	"JewelryStore/internal/model"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

// newClient можно подменить в тестах.
var newClient = func(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.ServerURL)
}

// newFlags создаёт FlagSet подкоманды; ошибки разбора превращаются в ErrUsage.
func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
}

// Клиентские представления ответов сервера.
type ref struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Username string          `json:"username"`
	Location string          `json:"location"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

func (r *ref) label() string {
	if r == nil {
		return "-"
	}
	if r.Username != "" {
		return r.Username
	}
	return r.Name
}

type branchOut struct {
	model.Branch
	Manager *ref `json:"manager"`
}

type jewelryOut struct {
	model.Jewelry
	Branch *ref `json:"branch"`
}

type transferOut struct {
	model.TransferRequest
	Jewelry    *ref `json:"jewelry"`
	FromBranch *ref `json:"fromBranch"`
	ToBranch   *ref `json:"toBranch"`
	Requester  *ref `json:"requester"`
	Responder  *ref `json:"responder"`
}

func printTransfer(t transferOut) {
	fmt.Fprintf(Out, "Transfer %s: %s x%d %s -> %s [%s]\n",
		t.ID, t.Jewelry.label(), t.Quantity, t.FromBranch.label(), t.ToBranch.label(), t.Status)
}
