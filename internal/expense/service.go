package expense

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/expense/entity"
	expenserepo "github.com/ovaphlow/pitchfork/service-finance-go/internal/expense/repo"
	userentity "github.com/ovaphlow/pitchfork/service-finance-go/internal/user/entity"
	"github.com/ovaphlow/pitchfork/service-finance-go/pkg/utilities"
)

var ErrExpenseNotFound = common.NotFound("Expense is not found")

// Service implements owner-scoped expense CRUD.
type Service struct {
	repo      expenserepo.Store
	validator *common.Validator
}

func NewService(r expenserepo.Store, v *common.Validator) *Service {
	v.Register(createSchema, CreateExpenseRequest{})
	v.Register(updateSchema, UpdateExpenseRequest{})
	v.Register(searchSchema, SearchExpenseRequest{})
	return &Service{repo: r, validator: v}
}

func (s *Service) Create(ctx context.Context, u *userentity.User, req CreateExpenseRequest) (*ExpenseResponse, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	amount, date, err := parseValues(req.Amount, req.ExpenseDate)
	if err != nil {
		return nil, err
	}
	e, err := s.repo.Create(ctx, &entity.Expense{
		ID:          utilities.NewUUID(),
		UserID:      u.ID,
		Title:       req.Title,
		Amount:      amount,
		ExpenseDate: date,
	})
	if err != nil {
		return nil, err
	}
	return toResponse(e), nil
}

// Update fully overwrites an expense the caller owns.
func (s *Service) Update(ctx context.Context, u *userentity.User, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	amount, date, err := parseValues(req.Amount, req.ExpenseDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.mustOwn(ctx, u, req.ID); err != nil {
		return nil, err
	}
	e, err := s.repo.Update(ctx, &entity.Expense{
		ID:          req.ID,
		UserID:      u.ID,
		Title:       req.Title,
		Amount:      amount,
		ExpenseDate: date,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return toResponse(e), nil
}

// Remove deletes an owned expense and returns what was deleted.
func (s *Service) Remove(ctx context.Context, u *userentity.User, id string) (*ExpenseResponse, error) {
	if _, err := s.mustOwn(ctx, u, id); err != nil {
		return nil, err
	}
	e, err := s.repo.Delete(ctx, id, u.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return toResponse(e), nil
}

// Search returns one page of the caller's expenses with paging metadata.
func (s *Service) Search(ctx context.Context, u *userentity.User, req SearchExpenseRequest) (*common.Response, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	f := expenserepo.Filter{
		UserID: u.ID,
		Title:  req.Title,
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

	data := make([]*ExpenseResponse, 0, len(rows))
	for i := range rows {
		data = append(data, toResponse(&rows[i]))
	}
	return &common.Response{
		Success: true,
		Message: "Expense berhasil difetch!",
		Data:    data,
		Paging:  common.NewPaging(req.Page, req.Size, total),
	}, nil
}

func (s *Service) mustOwn(ctx context.Context, u *userentity.User, id string) (*entity.Expense, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrExpenseNotFound
	}
	e, err := s.repo.FindOwned(ctx, id, u.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return e, nil
}

func parseValues(rawAmount, rawDate string) (decimal.Decimal, time.Time, error) {
	var fields []common.FieldError
	amount, ferr := common.ParseAmount("amount", rawAmount)
	if ferr != nil {
		fields = append(fields, *ferr)
	}
	date, ferr := common.ParseDate("expense_date", rawDate)
	if ferr != nil {
		fields = append(fields, *ferr)
	}
	if len(fields) > 0 {
		return decimal.Zero, time.Time{}, common.NewValidationError(fields...)
	}
	return amount, date, nil
}
