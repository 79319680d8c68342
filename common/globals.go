package common

const (
	AccountTypeCash      = "cash"
	AccountTypeBank      = "bank"
	AccountTypeAsset     = "asset"
	AccountTypeLiability = "liability"
	AccountTypeEquity    = "equity"
	AccountTypeRevenue   = "revenue"
	AccountTypeExpense   = "expense"

	JournalStatusDraft  = "draft"
	JournalStatusPosted = "posted"

	DocumentStatusDraft     = "draft"
	DocumentStatusSent      = "sent"
	DocumentStatusPartial   = "partial"
	DocumentStatusPaid      = "paid"
	DocumentStatusOverdue   = "overdue"
	DocumentStatusCancelled = "cancelled"

	PayrollStatusDraft    = "draft"
	PayrollStatusApproved = "approved"
	PayrollStatusPaid     = "paid"

	BonusStatusPending  = "pending"
	BonusStatusApproved = "approved"
	BonusStatusPaid     = "paid"

	ComponentStatusActive   = "active"
	ComponentStatusInactive = "inactive"

	ComponentTypeAllowance = "allowance"
	ComponentTypeDeduction = "deduction"

	NumberPrefixAccount = "ACC"
	NumberPrefixJournal = "JRN"
	NumberPrefixInvoice = "INV"
	NumberPrefixBill    = "BIL"
	NumberPrefixPayroll = "PAY"
	NumberPrefixBonus   = "BON"
)
