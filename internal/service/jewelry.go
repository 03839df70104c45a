package service

import (
	"JewelryStore/internal/apperr"
	"JewelryStore/internal/model"
	"JewelryStore/internal/policy"
	"JewelryStore/internal/repo"
	"context"

	"github.com/shopspring/decimal"
)

// JewelryInput — новая позиция. BranchID учитывается только для администратора:
// сотрудник всегда создаёт позицию в своём филиале.
type JewelryInput struct {
	Name        string           `json:"name" validate:"required,max=128"`
	Category    string           `json:"category" validate:"required,max=64"`
	Material    string           `json:"material" validate:"required,max=64"`
	Weight      *decimal.Decimal `json:"weight" validate:"omitempty,gte=0"`
	Price       *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Quantity    *int             `json:"quantity" validate:"omitempty,gte=0"`
	Description string           `json:"description" validate:"max=2000"`
	BranchID    string           `json:"branchId"`
	ImageURL    string           `json:"imageUrl" validate:"omitempty,max=2048"`
}

// JewelryPatch — частичное обновление позиции. Филиал не меняется:
// перемещение между филиалами идёт только через заявки.
type JewelryPatch struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=128"`
	Category    *string          `json:"category" validate:"omitempty,min=1,max=64"`
	Material    *string          `json:"material" validate:"omitempty,min=1,max=64"`
	Weight      *decimal.Decimal `json:"weight" validate:"omitempty,gte=0"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Quantity    *int             `json:"quantity" validate:"omitempty,gte=0"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string          `json:"imageUrl" validate:"omitempty,max=2048"`
}

type JewelryListFilter struct {
	BranchID string
	Category string
	Material string
}

// JewelryService — CRUD позиций с проверкой прав по филиалу.
type JewelryService struct {
	jewelry  repo.JewelryRepository
	branches repo.BranchRepository
}

func NewJewelryService(jewelry repo.JewelryRepository, branches repo.BranchRepository) *JewelryService {
	return &JewelryService{jewelry: jewelry, branches: branches}
}

func (s *JewelryService) Create(ctx context.Context, actor policy.Actor, in JewelryInput) (*model.Jewelry, error) {
	if !actor.IsAdmin() {
		in.BranchID = actor.BranchID
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.BranchID == "" {
		if !actor.IsAdmin() {
			return nil, apperr.Forbidden("account has no branch")
		}
		return nil, apperr.Validation("invalid input", map[string]string{"branchId": "is required"})
	}

	ok, err := s.branches.Exists(ctx, in.BranchID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.NotFound("branch")
	}
	if err := policy.Authorize(actor, policy.CreateJewelry, policy.Resource{BranchID: in.BranchID}); err != nil {
		return nil, err
	}

	j := &model.Jewelry{
		Name:        in.Name,
		Category:    in.Category,
		Material:    in.Material,
		Price:       *in.Price,
		Quantity:    1,
		Description: in.Description,
		BranchID:    in.BranchID,
		ImageURL:    in.ImageURL,
	}
	if in.Weight != nil {
		j.Weight = decimal.NewNullDecimal(*in.Weight)
	}
	if in.Quantity != nil {
		j.Quantity = *in.Quantity
	}
	if err := s.jewelry.Create(ctx, j); err != nil {
		return nil, apperr.Internal(err)
	}
	return j, nil
}

func (s *JewelryService) Get(ctx context.Context, actor policy.Actor, id string) (*model.Jewelry, error) {
	j, err := s.jewelry.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "jewelry")
	}
	if err := policy.Authorize(actor, policy.ReadJewelry, policy.Resource{BranchID: j.BranchID}); err != nil {
		return nil, err
	}
	return j, nil
}

// List возвращает позиции по фильтру. Сотрудник без явного филиала в фильтре
// получает позиции своего филиала.
func (s *JewelryService) List(ctx context.Context, actor policy.Actor, f JewelryListFilter) ([]model.Jewelry, error) {
	branchID, err := policy.JewelryListBranch(actor, f.BranchID)
	if err != nil {
		return nil, err
	}
	out, err := s.jewelry.List(ctx, repo.JewelryFilter{
		BranchID: branchID,
		Category: f.Category,
		Material: f.Material,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *JewelryService) Update(ctx context.Context, actor policy.Actor, id string, p JewelryPatch) (*model.Jewelry, error) {
	if err := validateInput(p); err != nil {
		return nil, err
	}
	j, err := s.jewelry.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "jewelry")
	}
	if err := policy.Authorize(actor, policy.UpdateJewelry, policy.Resource{BranchID: j.BranchID}); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Category != nil {
		updates["category"] = *p.Category
	}
	if p.Material != nil {
		updates["material"] = *p.Material
	}
	if p.Weight != nil {
		updates["weight"] = decimal.NewNullDecimal(*p.Weight)
	}
	if p.Price != nil {
		updates["price"] = *p.Price
	}
	if p.Quantity != nil {
		updates["quantity"] = *p.Quantity
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.ImageURL != nil {
		updates["image_url"] = *p.ImageURL
	}

	if err := s.jewelry.Update(ctx, id, updates); err != nil {
		return nil, storeErr(err, "jewelry")
	}
	updated, err := s.jewelry.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "jewelry")
	}
	return updated, nil
}

func (s *JewelryService) Delete(ctx context.Context, actor policy.Actor, id string) error {
	j, err := s.jewelry.GetByID(ctx, id)
	if err != nil {
		return storeErr(err, "jewelry")
	}
	if err := policy.Authorize(actor, policy.DeleteJewelry, policy.Resource{BranchID: j.BranchID}); err != nil {
		return err
	}
	if err := s.jewelry.Delete(ctx, id); err != nil {
		return storeErr(err, "jewelry")
	}
	return nil
}
