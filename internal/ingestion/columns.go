package ingestion

import "client-directory/internal/models"

// LayoutVersion identifies the frozen positional column layouts below. Rows are
// read by position only; header text is never consulted. Bump the version when
// a sheet gains, loses or reorders a column.
const LayoutVersion = 1

// clients sheet, layout v1
const (
	clientColID = iota
	clientColTaxID
	clientColNationalID
	clientColBirthDate
	clientColName
	clientColSocialName
	clientColEmail
	clientColAddress
	clientColAnnualIncome
	clientColNetWorth
	clientColMaritalStatus
	clientColBranchCode
	clientColumnCount
)

// accounts sheet, layout v1
const (
	accountColID = iota
	accountColOwnerTaxID
	accountColType
	accountColBalance
	accountColCreditLimit
	accountColAvailableCredit
	accountColumnCount
)

// branches sheet, layout v1
const (
	branchColID = iota
	branchColCode
	branchColName
	branchColAddress
	branchColumnCount
)

// Layout names the columns of one sheet in source order
type Layout struct {
	Sheet   models.SheetName
	Version int
	Columns []string
}

// Column returns the name of the column at index i
func (l Layout) Column(i int) string {
	if i < 0 || i >= len(l.Columns) {
		return ""
	}
	return l.Columns[i]
}

var (
	ClientLayout = Layout{
		Sheet:   models.SheetClients,
		Version: LayoutVersion,
		Columns: []string{
			"id", "tax_id", "national_id", "birth_date", "name", "social_name",
			"email", "address", "annual_income", "net_worth", "marital_status", "branch_code",
		},
	}

	AccountLayout = Layout{
		Sheet:   models.SheetAccounts,
		Version: LayoutVersion,
		Columns: []string{"id", "owner_tax_id", "type", "balance", "credit_limit", "available_credit"},
	}

	BranchLayout = Layout{
		Sheet:   models.SheetBranches,
		Version: LayoutVersion,
		Columns: []string{"id", "code", "name", "address"},
	}
)

// LayoutFor returns the layout of a logical sheet
func LayoutFor(sheet models.SheetName) (Layout, bool) {
	switch sheet {
	case models.SheetClients:
		return ClientLayout, true
	case models.SheetAccounts:
		return AccountLayout, true
	case models.SheetBranches:
		return BranchLayout, true
	}
	return Layout{}, false
}
