package types

type ClaimRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
}

type ClaimResp struct {
	Status string `json:"status"`
	Tokens int64  `json:"tokens"`
	TxHash string `json:"tx_hash"`
}
