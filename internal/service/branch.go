package service

import (
	"JewelryStore/internal/apperr"
	"JewelryStore/internal/model"
	"JewelryStore/internal/policy"
	"JewelryStore/internal/repo"
	"context"
)

type BranchInput struct {
	Name          string  `json:"name" validate:"required,max=128"`
	Location      string  `json:"location" validate:"required,max=256"`
	ContactNumber string  `json:"contactNumber" validate:"max=32"`
	ManagerID     *string `json:"managerId"`
}

// BranchPatch — частичное обновление; nil означает «не менять».
// Пустая строка в ManagerID снимает управляющего.
type BranchPatch struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=128"`
	Location      *string `json:"location" validate:"omitempty,min=1,max=256"`
	ContactNumber *string `json:"contactNumber" validate:"omitempty,max=32"`
	ManagerID     *string `json:"managerId"`
}

// BranchService — управление филиалами. Изменения доступны только администратору.
type BranchService struct {
	branches repo.BranchRepository
	accounts repo.AccountRepository
}

func NewBranchService(branches repo.BranchRepository, accounts repo.AccountRepository) *BranchService {
	return &BranchService{branches: branches, accounts: accounts}
}

func (s *BranchService) Create(ctx context.Context, actor policy.Actor, in BranchInput) (*model.Branch, error) {
	if err := policy.Authorize(actor, policy.ManageBranches, policy.Resource{}); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	managerID, err := s.managerRef(ctx, in.ManagerID)
	if err != nil {
		return nil, err
	}

	b := &model.Branch{
		Name:          in.Name,
		Location:      in.Location,
		ContactNumber: in.ContactNumber,
		ManagerID:     managerID,
	}
	if err := s.branches.Create(ctx, b); err != nil {
		return nil, apperr.Internal(err)
	}
	return b, nil
}

func (s *BranchService) Get(ctx context.Context, id string) (*model.Branch, error) {
	b, err := s.branches.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "branch")
	}
	return b, nil
}

func (s *BranchService) List(ctx context.Context) ([]model.Branch, error) {
	out, err := s.branches.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *BranchService) Update(ctx context.Context, actor policy.Actor, id string, p BranchPatch) (*model.Branch, error) {
	if err := validateInput(p); err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ManageBranches, policy.Resource{BranchID: id}); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Location != nil {
		updates["location"] = *p.Location
	}
	if p.ContactNumber != nil {
		updates["contact_number"] = *p.ContactNumber
	}
	if p.ManagerID != nil {
		managerID, err := s.managerRef(ctx, p.ManagerID)
		if err != nil {
			return nil, err
		}
		updates["manager_id"] = managerID
	}

	if err := s.branches.Update(ctx, id, updates); err != nil {
		return nil, storeErr(err, "branch")
	}
	return s.Get(ctx, id)
}

// Delete удаляет филиал; его позиции удаляются, сотрудники остаются без филиала.
func (s *BranchService) Delete(ctx context.Context, actor policy.Actor, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := policy.Authorize(actor, policy.ManageBranches, policy.Resource{BranchID: id}); err != nil {
		return err
	}
	if err := s.branches.Delete(ctx, id); err != nil {
		return storeErr(err, "branch")
	}
	return nil
}

// managerRef проверяет, что управляющий существует. nil и "" означают «без управляющего».
func (s *BranchService) managerRef(ctx context.Context, id *string) (*string, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	if _, err := s.accounts.GetByID(ctx, *id); err != nil {
		return nil, storeErr(err, "manager account")
	}
	v := *id
	return &v, nil
}
