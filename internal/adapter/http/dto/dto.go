package dto

// DepositRequest credits a deposit of reserve value to an account.
type DepositRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
	Value     int64  `json:"value" binding:"required,gt=0"`
}

// WithdrawRequest burns tokens and releases reserve value.
// All=true withdraws the caller's full live balance; Amount is ignored then.
type WithdrawRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
	Amount    int64  `json:"amount" binding:"omitempty,gt=0"`
	All       bool   `json:"all"`
}

// TransferRequest moves tokens between two accounts on this ledger.
type TransferRequest struct {
	From   string `json:"from" binding:"required,uuid"`
	To     string `json:"to" binding:"required,uuid"`
	Amount int64  `json:"amount" binding:"omitempty,gt=0"`
	All    bool   `json:"all"`
}

// OutboundRequest starts a cross-domain transfer.
type OutboundRequest struct {
	Sender     string `json:"sender" binding:"required,uuid"`
	Receiver   string `json:"receiver" binding:"required,uuid"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	DestDomain string `json:"dest_domain" binding:"required"`
}

// AdminLoginRequest exchanges the admin credential for a JWT.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// SetRateRequest lowers the global rate.
type SetRateRequest struct {
	Rate *int64 `json:"rate" binding:"required,gte=0"`
}

// RemoteDomainRequest installs an allow-list entry for a remote domain.
type RemoteDomainRequest struct {
	AdapterIdentity   string `json:"adapter_identity" binding:"required"`
	TokenIdentity     string `json:"token_identity" binding:"required"`
	MaxTransferAmount int64  `json:"max_transfer_amount" binding:"gte=0"`
}

// BalanceResponse is the live-balance read result.
type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
}

// PrincipalResponse is the realized-principal read result.
type PrincipalResponse struct {
	AccountID string `json:"account_id"`
	Principal int64  `json:"principal"`
}

// RateResponse is the personal-rate read result.
type RateResponse struct {
	AccountID    string `json:"account_id"`
	PersonalRate int64  `json:"personal_rate"`
}

// WithdrawResponse reports the released amount.
type WithdrawResponse struct {
	AccountID string `json:"account_id"`
	Released  int64  `json:"released"`
}

// TransferResponse reports the moved amount.
type TransferResponse struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// LoginResponse carries the admin JWT.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
