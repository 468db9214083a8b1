package domain

// AccountType defines the fundamental accounting type of an account.
// The enumeration is partitioned into two classes: Balance-Sheet types
// (assets, liabilities, equity) and Income-Statement types (revenue,
// expense). Only Balance-Sheet accounts may carry an opening Balance.
type AccountType string

const (
	// Balance Sheet class
	NonCurrentAsset     AccountType = "NON_CURRENT_ASSET"
	CurrentAsset        AccountType = "CURRENT_ASSET"
	Inventory           AccountType = "INVENTORY"
	Bank                AccountType = "BANK"
	Receivable          AccountType = "RECEIVABLE"
	Payable             AccountType = "PAYABLE"
	CurrentLiability    AccountType = "CURRENT_LIABILITY"
	NonCurrentLiability AccountType = "NON_CURRENT_LIABILITY"
	ControlAccount      AccountType = "CONTROL"
	Equity              AccountType = "EQUITY"
	Reconciliation      AccountType = "RECONCILIATION"

	// Income Statement class
	OperatingRevenue    AccountType = "OPERATING_REVENUE"
	NonOperatingRevenue AccountType = "NON_OPERATING_REVENUE"
	OperatingExpense    AccountType = "OPERATING_EXPENSE"
	DirectExpense       AccountType = "DIRECT_EXPENSE"
	OverheadExpense     AccountType = "OVERHEAD_EXPENSE"
	OtherExpense        AccountType = "OTHER_EXPENSE"
)

// incomeStatementTypes is the fixed set of account types that feed the
// income statement rather than the balance sheet.
var incomeStatementTypes = map[AccountType]struct{}{
	OperatingRevenue:    {},
	NonOperatingRevenue: {},
	OperatingExpense:    {},
	DirectExpense:       {},
	OverheadExpense:     {},
	OtherExpense:        {},
}

// IsIncomeStatement reports whether the account type belongs to the
// Income-Statement class (revenue/expense).
func (t AccountType) IsIncomeStatement() bool {
	_, ok := incomeStatementTypes[t]
	return ok
}

// IncomeStatementAccountTypes returns the Income-Statement class partition.
func IncomeStatementAccountTypes() []AccountType {
	return []AccountType{
		OperatingRevenue,
		NonOperatingRevenue,
		OperatingExpense,
		DirectExpense,
		OverheadExpense,
		OtherExpense,
	}
}

// Account represents a ledger account within the core domain.
type Account struct {
	AccountID    string      `json:"accountID"`    // Primary Key (e.g., UUID)
	EntityID     string      `json:"entityID"`     // FK -> entities.entity_id (NON-NULL)
	Name         string      `json:"name"`         // User-defined name
	AccountType  AccountType `json:"accountType"`  // One of the fixed enumeration above
	CurrencyCode string      `json:"currencyCode"` // FK -> currencies.code (NON-NULL)
	Description  string      `json:"description"`  // Nullable user description
	IsActive     bool        `json:"isActive"`
	AuditFields
}
