package dto

import (
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs the enum validation rules used by the
// request DTO binding tags on gin's validator engine. Must be called once
// during startup, before any request is bound.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("balancetype", validBalanceType); err != nil {
		return err
	}
	if err := v.RegisterValidation("clearabletype", validClearableType); err != nil {
		return err
	}
	if err := v.RegisterValidation("transactiontype", validTransactionType); err != nil {
		return err
	}
	return v.RegisterValidation("accounttype", validAccountType)
}

func validBalanceType(fl validator.FieldLevel) bool {
	switch domain.BalanceType(fl.Field().String()) {
	case domain.DebitBalance, domain.CreditBalance:
		return true
	}
	return false
}

func validClearableType(fl validator.FieldLevel) bool {
	return domain.TransactionType(fl.Field().String()).IsClearable()
}

func validTransactionType(fl validator.FieldLevel) bool {
	switch domain.TransactionType(fl.Field().String()) {
	case domain.JournalEntry, domain.ClientInvoice, domain.CreditNote, domain.SupplierBill,
		domain.DebitNote, domain.ClientReceipt, domain.Payment, domain.ContraEntry:
		return true
	}
	return false
}

func validAccountType(fl validator.FieldLevel) bool {
	switch domain.AccountType(fl.Field().String()) {
	case domain.NonCurrentAsset, domain.CurrentAsset, domain.Inventory, domain.Bank,
		domain.Receivable, domain.Payable, domain.CurrentLiability, domain.NonCurrentLiability,
		domain.ControlAccount, domain.Equity, domain.Reconciliation,
		domain.OperatingRevenue, domain.NonOperatingRevenue, domain.OperatingExpense,
		domain.DirectExpense, domain.OverheadExpense, domain.OtherExpense:
		return true
	}
	return false
}
