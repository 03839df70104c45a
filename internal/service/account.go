package service

import (
	"JewelryStore/internal/apperr"
	"JewelryStore/internal/auth"
	"JewelryStore/internal/model"
	"JewelryStore/internal/policy"
	"JewelryStore/internal/repo"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrLoginTaken — логин уже занят.
var ErrLoginTaken = apperr.Conflict("username already taken")

// ErrInvalidCredentials — неверный логин или пароль. Какой именно, не сообщаем.
var ErrInvalidCredentials = &apperr.Error{Kind: apperr.KindUnauthenticated, Msg: "invalid credentials"}

// RegisterInput — данные новой учётной записи.
type RegisterInput struct {
	Username string  `json:"username" validate:"required,min=3,max=64"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Name     string  `json:"name" validate:"required,max=128"`
	Role     string  `json:"role" validate:"required,oneof=staff admin"`
	BranchID *string `json:"branchId" validate:"omitempty,min=1"`
}

// AccountService — регистрация и вход.
type AccountService struct {
	accounts   repo.AccountRepository
	branches   repo.BranchRepository
	bcryptCost int
}

func NewAccountService(accounts repo.AccountRepository, branches repo.BranchRepository, bcryptCost int) *AccountService {
	return &AccountService{accounts: accounts, branches: branches, bcryptCost: bcryptCost}
}

// Register создаёт учётную запись. Доступно только администратору.
// Сотрудник без филиала не создаётся.
func (s *AccountService) Register(ctx context.Context, actor policy.Actor, in RegisterInput) (*model.Account, error) {
	if err := policy.Authorize(actor, policy.RegisterAccount, policy.Resource{}); err != nil {
		return nil, err
	}

	in.Username = strings.TrimSpace(in.Username)
	if in.Role == "" {
		in.Role = model.RoleStaff
	}
	if in.BranchID != nil && *in.BranchID == "" {
		in.BranchID = nil
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.Role == model.RoleStaff && in.BranchID == nil {
		return nil, apperr.Validation("invalid input", map[string]string{"branchId": "is required for staff"})
	}
	if in.BranchID != nil {
		ok, err := s.branches.Exists(ctx, *in.BranchID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if !ok {
			return nil, apperr.NotFound("branch")
		}
	}

	// проверяем, не занят ли логин
	if _, err := s.accounts.GetByUsername(ctx, in.Username); err == nil {
		return nil, ErrLoginTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	created, err := s.accounts.CreateAccount(ctx, &model.Account{
		Username:     in.Username,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         in.Role,
		BranchID:     in.BranchID,
	})
	if errors.Is(err, repo.ErrUsernameTaken) {
		return nil, ErrLoginTaken
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return created, nil
}

// Login проверяет учётные данные и возвращает учётную запись.
func (s *AccountService) Login(ctx context.Context, username, password string) (*model.Account, error) {
	a, err := s.accounts.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !auth.CheckPassword(a.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (*model.Account, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "account")
	}
	return a, nil
}

// EnsureAdmin создаёт администратора, если в базе ещё нет ни одной учётной записи.
// Возвращает true, если запись была создана.
func (s *AccountService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	n, err := s.accounts.Count(ctx)
	if err != nil {
		return false, apperr.Internal(err)
	}
	if n > 0 {
		return false, nil
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return false, apperr.Internal(err)
	}
	_, err = s.accounts.CreateAccount(ctx, &model.Account{
		Username:     username,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         model.RoleAdmin,
	})
	if err != nil {
		return false, apperr.Internal(err)
	}
	return true, nil
}
