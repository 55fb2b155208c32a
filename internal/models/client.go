package models

import (
	"github.com/shopspring/decimal"
)

// MaritalStatus is the marital status as written in the clients sheet
type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "Solteiro"
	MaritalStatusMarried  MaritalStatus = "Casado"
	MaritalStatusWidowed  MaritalStatus = "Viúvo"
	MaritalStatusDivorced MaritalStatus = "Divorciado"
)

var maritalStatusLabels = map[MaritalStatus]string{
	MaritalStatusSingle:   "single",
	MaritalStatusMarried:  "married",
	MaritalStatusWidowed:  "widowed",
	MaritalStatusDivorced: "divorced",
}

// Known reports whether the value belongs to the closed set
func (m MaritalStatus) Known() bool {
	_, ok := maritalStatusLabels[m]
	return ok
}

// Label returns the English name of a known status, or the raw value otherwise
func (m MaritalStatus) Label() string {
	if label, ok := maritalStatusLabels[m]; ok {
		return label
	}
	return string(m)
}

// Client is one normalized row of the clients sheet
type Client struct {
	ID            string          `json:"id"`
	TaxID         string          `json:"tax_id"`
	NationalID    *string         `json:"national_id,omitempty"`
	BirthDate     Date            `json:"birth_date"`
	Name          string          `json:"name"`
	SocialName    *string         `json:"social_name,omitempty"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	AnnualIncome  decimal.Decimal `json:"annual_income"`
	NetWorth      decimal.Decimal `json:"net_worth"`
	MaritalStatus MaritalStatus   `json:"marital_status"`
	BranchCode    int             `json:"branch_code"`
}

// DisplayName prefers the social name when the client has one
func (c *Client) DisplayName() string {
	if c.SocialName != nil && *c.SocialName != "" {
		return *c.SocialName
	}
	return c.Name
}
