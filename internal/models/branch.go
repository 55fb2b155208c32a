package models

// BranchNotFoundName is shown in place of a branch name when the code has no match
const BranchNotFoundName = "branch not found"

// Branch is one normalized row of the branches sheet. Code, not ID, is the join key.
type Branch struct {
	ID      string `json:"id"`
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
