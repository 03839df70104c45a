// Package policy решает, разрешено ли действие учётной записи над ресурсом.
// Все функции чистые: ни хранилища, ни контекста.
package policy

import (
	"JewelryStore/internal/apperr"
	"JewelryStore/internal/model"
)

// Actor — аутентифицированная учётная запись, от имени которой выполняется действие.
type Actor struct {
	AccountID string
	Role      string
	BranchID  string // пусто, если филиал не назначен
}

func (a Actor) IsAdmin() bool { return a.Role == model.RoleAdmin }

// Action — вид действия над ресурсом.
type Action string

const (
	ReadJewelry     Action = "jewelry:read"
	CreateJewelry   Action = "jewelry:create"
	UpdateJewelry   Action = "jewelry:update"
	DeleteJewelry   Action = "jewelry:delete"
	ManageBranches  Action = "branches:manage"
	RegisterAccount Action = "accounts:register"
	CreateTransfer  Action = "transfers:create"
	RespondTransfer Action = "transfers:respond"
	ViewTransfer    Action = "transfers:view"
)

// Resource описывает филиальную принадлежность ресурса.
// Для позиций используется BranchID, для заявок FromBranchID и ToBranchID.
type Resource struct {
	BranchID     string
	FromBranchID string
	ToBranchID   string
}

// Authorize возвращает apperr.ErrForbidden-совместимую ошибку, если действие запрещено.
func Authorize(actor Actor, action Action, res Resource) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role != model.RoleStaff {
		return apperr.Forbidden("unknown role")
	}

	switch action {
	case ReadJewelry, CreateTransfer:
		return nil
	case CreateJewelry, UpdateJewelry, DeleteJewelry:
		if sameBranch(actor, res.BranchID) {
			return nil
		}
		return apperr.Forbidden("jewelry belongs to another branch")
	case RespondTransfer:
		if sameBranch(actor, res.FromBranchID) {
			return nil
		}
		return apperr.Forbidden("only the source branch can respond to this request")
	case ViewTransfer:
		if sameBranch(actor, res.FromBranchID) || sameBranch(actor, res.ToBranchID) {
			return nil
		}
		return apperr.Forbidden("transfer request does not involve your branch")
	case ManageBranches, RegisterAccount:
		return apperr.Forbidden("admin role required")
	}
	return apperr.Forbidden("unknown action")
}

// JewelryListBranch определяет филиал, по которому фильтруется список позиций.
// Админ получает запрошенный фильтр как есть. Сотрудник без явного фильтра видит
// только свой филиал; явный фильтр разрешён, чтобы находить позиции для заявок.
func JewelryListBranch(actor Actor, requested string) (string, error) {
	if actor.IsAdmin() || requested != "" {
		return requested, nil
	}
	if actor.BranchID == "" {
		return "", apperr.Forbidden("account has no branch")
	}
	return actor.BranchID, nil
}

// TransferListBranch определяет филиал для списка заявок: сотрудник всегда
// ограничен своим филиалом (как источник или как получатель).
func TransferListBranch(actor Actor, requested string) (string, error) {
	if actor.IsAdmin() {
		return requested, nil
	}
	if actor.BranchID == "" {
		return "", apperr.Forbidden("account has no branch")
	}
	if requested != "" && requested != actor.BranchID {
		return "", apperr.Forbidden("transfer requests of another branch")
	}
	return actor.BranchID, nil
}

func sameBranch(actor Actor, branchID string) bool {
	return actor.BranchID != "" && actor.BranchID == branchID
}
