package ingestion

import (
	"errors"
	"strings"

	"client-directory/internal/models"

	"github.com/shopspring/decimal"
)

var ErrInvalidBranchCode = errors.New("branch code is not an integer")

// rowIssues collects the diagnostics produced while building one record
type rowIssues struct {
	layout   Layout
	line     int
	warnings []models.RowError
}

func (ri *rowIssues) warn(col int, value string, err error) {
	ri.warnings = append(ri.warnings, ri.issue(col, value, err))
}

func (ri *rowIssues) issue(col int, value string, err error) models.RowError {
	return models.RowError{
		Sheet:  ri.layout.Sheet,
		Line:   ri.line,
		Column: ri.layout.Column(col),
		Value:  value,
		Reason: err.Error(),
	}
}

func (ri *rowIssues) currency(row Row, col int) decimal.Decimal {
	raw := row.Field(col)
	d, err := ParseCurrency(raw)
	if err != nil {
		ri.warn(col, raw, err)
	}
	return d
}

// BuildClient builds a Client from a decoded row of the clients sheet.
// A branch code that is not an integer rejects the row; an unparsable birth
// date or currency cell keeps the row and adds a warning.
func BuildClient(row Row) (models.Client, []models.RowError, *models.RowError) {
	issues := &rowIssues{layout: ClientLayout, line: row.Line}

	branchRaw := row.Field(clientColBranchCode)
	branchCode, err := ParseInteger(branchRaw)
	if err != nil {
		rejected := issues.issue(clientColBranchCode, branchRaw, ErrInvalidBranchCode)
		return models.Client{}, nil, &rejected
	}

	birthRaw := row.Field(clientColBirthDate)
	birthDate, err := ParseDate(birthRaw)
	if err != nil {
		issues.warn(clientColBirthDate, birthRaw, err)
	}

	client := models.Client{
		ID:            strings.TrimSpace(row.Field(clientColID)),
		TaxID:         ParseTaxID(row.Field(clientColTaxID)),
		NationalID:    OptionalText(row.Field(clientColNationalID)),
		BirthDate:     birthDate,
		Name:          strings.TrimSpace(row.Field(clientColName)),
		SocialName:    OptionalText(row.Field(clientColSocialName)),
		Email:         strings.TrimSpace(row.Field(clientColEmail)),
		Address:       strings.TrimSpace(row.Field(clientColAddress)),
		AnnualIncome:  issues.currency(row, clientColAnnualIncome),
		NetWorth:      issues.currency(row, clientColNetWorth),
		MaritalStatus: ParseMaritalStatus(row.Field(clientColMaritalStatus)),
		BranchCode:    branchCode,
	}

	return client, issues.warnings, nil
}

// BuildAccount builds an Account from a decoded row of the accounts sheet
func BuildAccount(row Row) (models.Account, []models.RowError, *models.RowError) {
	issues := &rowIssues{layout: AccountLayout, line: row.Line}

	account := models.Account{
		ID:              strings.TrimSpace(row.Field(accountColID)),
		OwnerTaxID:      ParseTaxID(row.Field(accountColOwnerTaxID)),
		Type:            ParseAccountType(row.Field(accountColType)),
		Balance:         issues.currency(row, accountColBalance),
		CreditLimit:     issues.currency(row, accountColCreditLimit),
		AvailableCredit: issues.currency(row, accountColAvailableCredit),
	}

	return account, issues.warnings, nil
}

// BuildBranch builds a Branch from a decoded row of the branches sheet.
// A code that is not an integer rejects the row.
func BuildBranch(row Row) (models.Branch, []models.RowError, *models.RowError) {
	issues := &rowIssues{layout: BranchLayout, line: row.Line}

	codeRaw := row.Field(branchColCode)
	code, err := ParseInteger(codeRaw)
	if err != nil {
		rejected := issues.issue(branchColCode, codeRaw, ErrInvalidBranchCode)
		return models.Branch{}, nil, &rejected
	}

	branch := models.Branch{
		ID:      strings.TrimSpace(row.Field(branchColID)),
		Code:    code,
		Name:    strings.TrimSpace(row.Field(branchColName)),
		Address: NormalizeAddress(row.Field(branchColAddress)),
	}

	return branch, nil, nil
}
