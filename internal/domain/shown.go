package domain

// ShownRecord registra as contas e tipos de insight exibidos no digest,
// usado pela API de histórico para evitar repetições nas próximas execuções
type ShownRecord struct {
	Date         string        `json:"date"`
	AccountIDs   []int64       `json:"accountIds"`
	AccountNames []string      `json:"accountNames"`
	InsightTypes []InsightType `json:"insightTypes"`
}

// ShownHistory é a resposta do serviço de histórico para a janela de lookback
type ShownHistory struct {
	AccountIDs   []int64  `json:"accountIds"`
	AccountNames []string `json:"accountNames"`
}

// RecentDigest é um digest recebido pela API do Render
type RecentDigest struct {
	Date         string   `json:"date"`
	ReceivedAt   string   `json:"receivedAt"`
	ExportSource string   `json:"exportSource"`
	AccountNames []string `json:"accountNames"`
}

type RecentDigestsResponse struct {
	RecentDigests []RecentDigest `json:"recentDigests"`
}

// DeliveryReceipt é a resposta da API do Render ao receber um digest
type DeliveryReceipt map[string]any
