package models

// Member represents an enrolled saver/borrower of the society.
//
// TotalSavings and TotalLoan are cached running balances derived from the
// member's transaction history. They are re-established on every transaction
// insert and must always equal the replayed sum of that history.
type Member struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	FatherName   string  `json:"fatherName" yaml:"fatherName"`
	Phone        string  `json:"phone" yaml:"phone"`
	NID          string  `json:"nid" yaml:"nid"`
	Address      string  `json:"address" yaml:"address"`
	JoinDate     string  `json:"joinDate" yaml:"joinDate"` // YYYY-MM-DD
	TotalSavings float64 `json:"totalSavings" yaml:"totalSavings"`
	TotalLoan    float64 `json:"totalLoan" yaml:"totalLoan"`
}

// CreateMemberRequest represents the member registration form. ID is optional;
// when blank the store-assigned sequence (100 + count + 1) is used. A positive
// InitialSavings is recorded as an opening savings transaction dated JoinDate.
type CreateMemberRequest struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	FatherName     string  `json:"fatherName"`
	Phone          string  `json:"phone"`
	NID            string  `json:"nid"`
	Address        string  `json:"address"`
	JoinDate       string  `json:"joinDate"`
	InitialSavings float64 `json:"initialSavings"`
}
