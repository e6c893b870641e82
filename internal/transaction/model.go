package transaction

import (
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/transaction/entity"
)

type CreateTransactionRequest struct {
	Title           string `json:"title"`
	Amount          string `json:"amount"`
	TransactionDate string `json:"transaction_date"`
	Type            string `json:"type"`
}

type UpdateTransactionRequest struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Amount          string `json:"amount"`
	TransactionDate string `json:"transaction_date"`
	Type            string `json:"type"`
}

type SearchTransactionRequest struct {
	Title  *string `json:"title,omitempty"`
	Amount *string `json:"amount,omitempty"`
	Type   *string `json:"type,omitempty"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
}

type TransactionResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Amount          string `json:"amount"`
	TransactionDate string `json:"transaction_date"`
	Type            string `json:"type"`
}

const typeRule = "required,oneof=" + entity.TypeIncome + " " + entity.TypeExpense

var (
	createSchema = common.Schema{
		"Title":           "required,min=1,max=100",
		"Amount":          "required,min=1,max=100",
		"TransactionDate": "required,min=1,max=100",
		"Type":            typeRule,
	}
	updateSchema = common.Schema{
		"ID":              "required,uuid",
		"Title":           "required,min=1,max=100",
		"Amount":          "required,min=1,max=100",
		"TransactionDate": "required,min=1,max=100",
		"Type":            typeRule,
	}
	searchSchema = common.Schema{
		"Title":  "omitempty,min=1",
		"Amount": "omitempty,min=1",
		"Type":   "omitempty,oneof=" + entity.TypeIncome + " " + entity.TypeExpense,
		"Page":   "gte=1,lte=1000000",
		"Size":   "gte=1,lte=100",
	}
)

func toResponse(t *entity.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		Title:           t.Title,
		Amount:          common.FormatAmount(t.Amount),
		TransactionDate: common.FormatTime(t.TransactionDate),
		Type:            t.Type,
	}
}
