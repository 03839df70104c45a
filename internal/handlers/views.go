package handlers

import (
	"JewelryStore/internal/apperr"
	"JewelryStore/internal/model"
	"JewelryStore/internal/policy"
	"JewelryStore/internal/service"
	"context"

	"github.com/shopspring/decimal"
)

// Ссылки на связанные сущности в ответах. Связи слабые: если сущность
// удалена, ссылка в ответе равна null.
type branchRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type accountRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type jewelryRef struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

type branchView struct {
	model.Branch
	Manager *accountRef `json:"manager"`
}

type jewelryView struct {
	model.Jewelry
	Branch *branchRef `json:"branch"`
}

type transferView struct {
	model.TransferRequest
	Jewelry    *jewelryRef `json:"jewelry"`
	FromBranch *branchRef  `json:"fromBranch"`
	ToBranch   *branchRef  `json:"toBranch"`
	Requester  *accountRef `json:"requester"`
	Responder  *accountRef `json:"responder"`
}

// viewComposer дополняет доменные объекты связанными сущностями для ответа.
type viewComposer struct {
	base
	accounts *service.AccountService
	branches *service.BranchService
	jewelry  *service.JewelryService
}

// lookup кэширует ссылки в пределах одного ответа.
type lookup struct {
	vc       *viewComposer
	ctx      context.Context
	actor    policy.Actor
	branches map[string]*branchRef
	accounts map[string]*accountRef
	jewelry  map[string]*jewelryRef
}

func (vc *viewComposer) newLookup(ctx context.Context, actor policy.Actor) *lookup {
	return &lookup{
		vc:       vc,
		ctx:      ctx,
		actor:    actor,
		branches: map[string]*branchRef{},
		accounts: map[string]*accountRef{},
		jewelry:  map[string]*jewelryRef{},
	}
}

// missing логирует неожиданные ошибки; отсутствие сущности — нормальная ситуация.
func (l *lookup) missing(what, id string, err error) {
	if apperr.KindOf(err) != apperr.KindNotFound {
		l.vc.Logger.Warnw("failed to resolve reference", "entity", what, "id", id, "error", err)
	}
}

func (l *lookup) branch(id string) *branchRef {
	if id == "" {
		return nil
	}
	if ref, ok := l.branches[id]; ok {
		return ref
	}
	var ref *branchRef
	if b, err := l.vc.branches.Get(l.ctx, id); err == nil {
		ref = &branchRef{ID: b.ID, Name: b.Name, Location: b.Location}
	} else {
		l.missing("branch", id, err)
	}
	l.branches[id] = ref
	return ref
}

func (l *lookup) account(id *string) *accountRef {
	if id == nil || *id == "" {
		return nil
	}
	if ref, ok := l.accounts[*id]; ok {
		return ref
	}
	var ref *accountRef
	if a, err := l.vc.accounts.Get(l.ctx, *id); err == nil {
		ref = &accountRef{ID: a.ID, Name: a.Name, Username: a.Username}
	} else {
		l.missing("account", *id, err)
	}
	l.accounts[*id] = ref
	return ref
}

func (l *lookup) item(id string) *jewelryRef {
	if ref, ok := l.jewelry[id]; ok {
		return ref
	}
	var ref *jewelryRef
	if j, err := l.vc.jewelry.Get(l.ctx, l.actor, id); err == nil {
		ref = &jewelryRef{ID: j.ID, Name: j.Name, Category: j.Category, Price: j.Price}
	} else {
		l.missing("jewelry", id, err)
	}
	l.jewelry[id] = ref
	return ref
}

func (l *lookup) branchView(b model.Branch) branchView {
	return branchView{Branch: b, Manager: l.account(b.ManagerID)}
}

func (l *lookup) jewelryView(j model.Jewelry) jewelryView {
	return jewelryView{Jewelry: j, Branch: l.branch(j.BranchID)}
}

func (l *lookup) transferView(t model.TransferRequest) transferView {
	requester := t.RequestedBy
	return transferView{
		TransferRequest: t,
		Jewelry:         l.item(t.JewelryID),
		FromBranch:      l.branch(t.FromBranchID),
		ToBranch:        l.branch(t.ToBranchID),
		Requester:       l.account(&requester),
		Responder:       l.account(t.RespondedBy),
	}
}
