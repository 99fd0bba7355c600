package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"transaction-explorer/internal/models"

	"github.com/google/uuid"
)

// CursorCodec converts between continuation tokens and cursor positions.
// Timestamp tokens are RFC 3339 UTC instants. Compound tokens are URL-safe base64 JSON
// carrying the timestamp and the transaction id, which keeps ties from being skipped.
type CursorCodec struct {
	compound bool
}

type cursorData struct {
	Timestamp     time.Time `json:"timestamp"`
	TransactionID uuid.UUID `json:"transaction_id"`
}

func NewCursorCodec(compound bool) CursorCodec {
	return CursorCodec{compound: compound}
}

// Encode returns the token pointing just past the given row
func (c CursorCodec) Encode(last models.Transaction) string {
	if !c.compound {
		return last.Date.UTC().Format(time.RFC3339Nano)
	}

	jsonData, err := json.Marshal(cursorData{
		Timestamp:     last.Date.UTC(),
		TransactionID: last.ID,
	})
	if err != nil {
		return last.Date.UTC().Format(time.RFC3339Nano)
	}
	return base64.URLEncoding.EncodeToString(jsonData)
}

// Decode accepts both token formats regardless of the encoding mode
func (c CursorCodec) Decode(token string) (*models.CursorPosition, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	if ts, err := models.ParseTimestamp(token); err == nil {
		return &models.CursorPosition{Date: ts}, nil
	}

	jsonData, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cursor encoding", ErrInvalidCursor)
	}

	var data cursorData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("%w: invalid cursor format", ErrInvalidCursor)
	}
	if data.Timestamp.IsZero() || data.TransactionID == uuid.Nil {
		return nil, fmt.Errorf("%w: incomplete cursor", ErrInvalidCursor)
	}

	id := data.TransactionID
	return &models.CursorPosition{Date: data.Timestamp.UTC(), ID: &id}, nil
}
