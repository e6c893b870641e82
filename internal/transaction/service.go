package transaction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/transaction/entity"
	txrepo "github.com/ovaphlow/pitchfork/service-finance-go/internal/transaction/repo"
	userentity "github.com/ovaphlow/pitchfork/service-finance-go/internal/user/entity"
	"github.com/ovaphlow/pitchfork/service-finance-go/pkg/utilities"
)

var ErrTransactionNotFound = common.NotFound("Transaction is not found")

// Service implements owner-scoped income/expense transaction CRUD.
type Service struct {
	repo      txrepo.Store
	validator *common.Validator
}

func NewService(r txrepo.Store, v *common.Validator) *Service {
	v.Register(createSchema, CreateTransactionRequest{})
	v.Register(updateSchema, UpdateTransactionRequest{})
	v.Register(searchSchema, SearchTransactionRequest{})
	return &Service{repo: r, validator: v}
}

func (s *Service) Create(ctx context.Context, u *userentity.User, req CreateTransactionRequest) (*TransactionResponse, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	amount, date, err := parseValues(req.Amount, req.TransactionDate)
	if err != nil {
		return nil, err
	}
	t, err := s.repo.Create(ctx, &entity.Transaction{
		ID:              utilities.NewUUID(),
		UserID:          u.ID,
		Title:           req.Title,
		Amount:          amount,
		TransactionDate: date,
		Type:            req.Type,
	})
	if err != nil {
		return nil, err
	}
	return toResponse(t), nil
}

func (s *Service) Update(ctx context.Context, u *userentity.User, req UpdateTransactionRequest) (*TransactionResponse, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	amount, date, err := parseValues(req.Amount, req.TransactionDate)
	if err != nil {
		return nil, err
	}
	if err := s.mustOwn(ctx, u, req.ID); err != nil {
		return nil, err
	}
	t, err := s.repo.Update(ctx, &entity.Transaction{
		ID:              req.ID,
		UserID:          u.ID,
		Title:           req.Title,
		Amount:          amount,
		TransactionDate: date,
		Type:            req.Type,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return toResponse(t), nil
}

func (s *Service) Remove(ctx context.Context, u *userentity.User, id string) (*TransactionResponse, error) {
	if err := s.mustOwn(ctx, u, id); err != nil {
		return nil, err
	}
	t, err := s.repo.Delete(ctx, id, u.ID)
	if err != nil {
		return nil, notFound(err)
	}
	return toResponse(t), nil
}

func (s *Service) Search(ctx context.Context, u *userentity.User, req SearchTransactionRequest) (*common.Response, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	f := txrepo.Filter{
		UserID: u.ID,
		Title:  req.Title,
		Type:   req.Type,
		Limit:  req.Size,
		Offset: common.Offset(req.Page, req.Size),
	}
	rows, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	data := make([]*TransactionResponse, 0, len(rows))
	for i := range rows {
		data = append(data, toResponse(&rows[i]))
	}
	return &common.Response{
		Success: true,
		Message: "Transaction berhasil difetch!",
		Data:    data,
		Paging:  common.NewPaging(req.Page, req.Size, total),
	}, nil
}

func (s *Service) mustOwn(ctx context.Context, u *userentity.User, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrTransactionNotFound
	}
	if _, err := s.repo.FindOwned(ctx, id, u.ID); err != nil {
		return notFound(err)
	}
	return nil
}

// notFound maps sql.ErrNoRows to ErrTransactionNotFound and passes other
// errors through.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTransactionNotFound
	}
	return err
}

func parseValues(rawAmount, rawDate string) (decimal.Decimal, time.Time, error) {
	var fields []common.FieldError
	amount, ferr := common.ParseAmount("amount", rawAmount)
	if ferr != nil {
		fields = append(fields, *ferr)
	}
	date, ferr := common.ParseDate("transaction_date", rawDate)
	if ferr != nil {
		fields = append(fields, *ferr)
	}
	if len(fields) > 0 {
		return decimal.Zero, time.Time{}, common.NewValidationError(fields...)
	}
	return amount, date, nil
}
