package service

import (
	"JewelryStore/internal/apperr"
	"JewelryStore/internal/model"
	"JewelryStore/internal/policy"
	"JewelryStore/internal/repo"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateTransferInput — заявка на перемещение. Филиал-источник берётся из позиции.
type CreateTransferInput struct {
	JewelryID  string `json:"jewelryId" validate:"required"`
	ToBranchID string `json:"toBranchId" validate:"required"`
	Quantity   int    `json:"quantity"`
}

// RespondInput — решение по заявке: approved или rejected.
type RespondInput struct {
	Status string `json:"status"`
}

type TransferListFilter struct {
	Status   string
	BranchID string
}

// TransferService ведёт жизненный цикл заявок на перемещение:
// pending → approved | rejected, без других переходов.
type TransferService struct {
	jewelry   repo.JewelryRepository
	branches  repo.BranchRepository
	transfers repo.TransferRepository
	uow       repo.UnitOfWork
	logger    *zap.SugaredLogger
	now       func() time.Time
}

func NewTransferService(repos repo.Repositories, uow repo.UnitOfWork, logger *zap.SugaredLogger) *TransferService {
	return &TransferService{
		jewelry:   repos.Jewelry,
		branches:  repos.Branches,
		transfers: repos.Transfers,
		uow:       uow,
		logger:    logger,
		now:       time.Now,
	}
}

// Create проверяет позицию, филиал-получатель и количество и сохраняет заявку в статусе pending.
// Количество сверяется с текущим остатком; при одобрении оно проверяется ещё раз.
func (s *TransferService) Create(ctx context.Context, actor policy.Actor, in CreateTransferInput) (*model.TransferRequest, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	j, err := s.jewelry.GetByID(ctx, in.JewelryID)
	if err != nil {
		return nil, storeErr(err, "jewelry")
	}
	ok, err := s.branches.Exists(ctx, in.ToBranchID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.NotFound("destination branch")
	}
	if err := policy.Authorize(actor, policy.CreateTransfer, policy.Resource{FromBranchID: j.BranchID, ToBranchID: in.ToBranchID}); err != nil {
		return nil, err
	}
	if j.BranchID == in.ToBranchID {
		return nil, apperr.Validation("invalid input", map[string]string{"toBranchId": "must differ from the item's branch"})
	}
	if in.Quantity <= 0 || in.Quantity > j.Quantity {
		return nil, apperr.InvalidQuantity("quantity must be between 1 and the available quantity")
	}

	tr := &model.TransferRequest{
		JewelryID:    j.ID,
		FromBranchID: j.BranchID,
		ToBranchID:   in.ToBranchID,
		Quantity:     in.Quantity,
		RequestedBy:  actor.AccountID,
		RequestedAt:  s.now().UTC(),
	}
	if err := s.transfers.Create(ctx, tr); err != nil {
		return nil, apperr.Internal(err)
	}
	s.logger.Infow("transfer requested",
		"transfer_id", tr.ID, "jewelry_id", tr.JewelryID,
		"from", tr.FromBranchID, "to", tr.ToBranchID, "quantity", tr.Quantity)
	return tr, nil
}

// Respond переводит заявку из pending в approved или rejected.
// Проверки идут в порядке: заявка существует, доступ, статус pending, корректное решение.
//
// Всё выполняется в одной транзакции. Первым шагом статус меняется условным UPDATE
// по status = pending: из двух одновременных ответов проходит один, второй получает
// InvalidTransition. При одобрении остаток перепроверяется по текущему состоянию,
// получатель пополняется (или создаётся копия позиции), затем источник списывается.
// Любая ошибка откатывает транзакцию, и заявка остаётся в pending.
func (s *TransferService) Respond(ctx context.Context, actor policy.Actor, id string, in RespondInput) (*model.TransferRequest, error) {
	tr, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "transfer request")
	}
	if err := policy.Authorize(actor, policy.RespondTransfer, policy.Resource{FromBranchID: tr.FromBranchID, ToBranchID: tr.ToBranchID}); err != nil {
		return nil, err
	}
	if tr.IsTerminal() {
		return nil, apperr.InvalidTransition("transfer request is already " + tr.Status)
	}
	if !model.IsDecision(in.Status) {
		return nil, apperr.Validation("invalid input", map[string]string{"status": "must be one of: approved rejected"})
	}

	at := s.now().UTC()
	err = s.uow.WithinTx(ctx, func(r repo.Repositories) error {
		if err := r.Transfers.UpdateStatus(ctx, tr.ID, in.Status, actor.AccountID, at); err != nil {
			if errors.Is(err, repo.ErrNotPending) {
				return apperr.InvalidTransition("transfer request is no longer pending")
			}
			return storeErr(err, "transfer request")
		}
		if in.Status == model.TransferRejected {
			return nil
		}
		return s.applyApproval(ctx, r, tr)
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			s.logger.Errorw("transfer response failed", "transfer_id", tr.ID, "error", err)
		}
		return nil, storeErr(err, "transfer request")
	}

	responder := actor.AccountID
	tr.Status = in.Status
	tr.RespondedBy = &responder
	tr.RespondedAt = &at
	s.logger.Infow("transfer answered",
		"transfer_id", tr.ID, "status", tr.Status, "responder", responder)
	return tr, nil
}

// applyApproval переносит количество заявки из позиции-источника в филиал-получатель.
// Работает только с репозиториями транзакции.
func (s *TransferService) applyApproval(ctx context.Context, r repo.Repositories, tr *model.TransferRequest) error {
	src, err := r.Jewelry.GetByID(ctx, tr.JewelryID)
	if err != nil {
		return storeErr(err, "jewelry")
	}
	if src.Quantity < tr.Quantity {
		return apperr.InsufficientQuantity("not enough quantity left at the source branch")
	}
	// блокировка получателя: поиск-или-создание позиции ниже не должен идти параллельно
	ok, err := r.Branches.Lock(ctx, tr.ToBranchID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("destination branch")
	}

	dst, err := r.Jewelry.FindMatching(ctx, src.Name, src.Category, src.Material, tr.ToBranchID)
	switch {
	case err == nil:
		if _, err := r.Jewelry.AdjustQuantity(ctx, dst.ID, tr.Quantity); err != nil {
			return apperr.Internal(err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.Jewelry.Create(ctx, src.CopyTo(tr.ToBranchID, tr.Quantity)); err != nil {
			return apperr.Internal(err)
		}
	default:
		return apperr.Internal(err)
	}

	if _, err := r.Jewelry.AdjustQuantity(ctx, src.ID, -tr.Quantity); err != nil {
		if errors.Is(err, repo.ErrNegativeQuantity) {
			return apperr.InsufficientQuantity("not enough quantity left at the source branch")
		}
		return storeErr(err, "jewelry")
	}
	return nil
}

// Get возвращает заявку, если она касается филиала сотрудника.
func (s *TransferService) Get(ctx context.Context, actor policy.Actor, id string) (*model.TransferRequest, error) {
	tr, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "transfer request")
	}
	if err := policy.Authorize(actor, policy.ViewTransfer, policy.Resource{FromBranchID: tr.FromBranchID, ToBranchID: tr.ToBranchID}); err != nil {
		return nil, err
	}
	return tr, nil
}

func (s *TransferService) List(ctx context.Context, actor policy.Actor, f TransferListFilter) ([]model.TransferRequest, error) {
	if f.Status != "" && f.Status != model.TransferPending && !model.IsDecision(f.Status) {
		return nil, apperr.Validation("invalid filter", map[string]string{"status": "must be one of: pending approved rejected"})
	}
	branchID, err := policy.TransferListBranch(actor, f.BranchID)
	if err != nil {
		return nil, err
	}
	out, err := s.transfers.List(ctx, repo.TransferFilter{Status: f.Status, BranchID: branchID})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
