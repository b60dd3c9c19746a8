package models

type AccountSummaryResponse struct {
	AccountID      string `json:"accountId"`
	HolderName     string `json:"holderName"`
	Balance        string `json:"balance"`
	Locked         bool   `json:"locked"`
	FailedAttempts int    `json:"failedAttempts"`
}

type UnlockAccountResponse struct {
	AccountID string `json:"accountId"`
	Locked    bool   `json:"locked"`
}
