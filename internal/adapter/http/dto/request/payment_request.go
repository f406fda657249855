package request

import "encoding/json"

// PaymentCreateRequest is the payload for recording a gateway payment.
//
// `payload` is stored as-is (raw JSON) to support varying provider schemas.

type PaymentCreateRequest struct {
	Payload json.RawMessage `json:"payload"`
}
