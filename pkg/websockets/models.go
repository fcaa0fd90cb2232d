package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypePaymentUpdate is for messages that report a change in an
	// installment's payment state.
	MessageTypePaymentUpdate MessageType = "paymentUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// PaymentUpdatePayload is the payload for a paymentUpdate message.
type PaymentUpdatePayload struct {
	WeddingID     string `json:"wedding_id"`
	InstallmentID string `json:"installment_id"`
	TxRef         string `json:"tx_ref"`
	Status        string `json:"status"`
	PaidAmount    int64  `json:"paid_amount"`
}
