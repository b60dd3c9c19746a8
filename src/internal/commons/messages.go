package commons

// Response messages shared by the services and the HTTP status mapping.
const (
	MsgValidationFailed  = "validation failed"
	MsgAccountNotFound   = "Account not found"
	MsgRecipientNotFound = "Recipient account not found"
	MsgInvalidPin        = "invalid pin"
	MsgAccountLocked     = "Account locked"
	MsgInvalidSession    = "invalid session"
	MsgSessionActive     = "session already active"
	MsgInsufficientFunds = "Insufficient balance"
	MsgLimitExceeded     = "Withdrawal limit exceeded"
	MsgInvalidAmount     = "invalid amount"
	MsgSameAccount       = "Cannot transfer to the same account"
	MsgPinMismatch       = "PIN do not match"
	MsgInvalidPinFormat  = "Invalid PIN format"
	MsgRequestFailed     = "failed to process request"
)
