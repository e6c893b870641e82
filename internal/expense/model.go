package expense

import (
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/expense/entity"
)

type CreateExpenseRequest struct {
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	ExpenseDate string `json:"expense_date"`
}

// UpdateExpenseRequest replaces every field; ID comes from the path.
type UpdateExpenseRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	ExpenseDate string `json:"expense_date"`
}

type SearchExpenseRequest struct {
	Title  *string `json:"title,omitempty"`
	Amount *string `json:"amount,omitempty"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
}

type ExpenseResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	ExpenseDate string `json:"expense_date"`
}

var (
	createSchema = common.Schema{
		"Title":       "required,min=1,max=100",
		"Amount":      "required,min=1,max=100",
		"ExpenseDate": "required,min=1,max=100",
	}
	updateSchema = common.Schema{
		"ID":          "required,uuid",
		"Title":       "required,min=1,max=100",
		"Amount":      "required,min=1,max=100",
		"ExpenseDate": "required,min=1,max=100",
	}
	searchSchema = common.Schema{
		"Title":  "omitempty,min=1",
		"Amount": "omitempty,min=1",
		"Page":   "gte=1,lte=1000000",
		"Size":   "gte=1,lte=100",
	}
)

func toResponse(e *entity.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      common.FormatAmount(e.Amount),
		ExpenseDate: common.FormatTime(e.ExpenseDate),
	}
}
