package checkout

import (
	"time"

	"github.com/speps/go-hashids/v2"
)

// ConfirmationCodes issues short human-readable codes for cash-on-delivery
// orders. Codes are derived from the order timestamp, so they are unique per
// order without any stored counter.
type ConfirmationCodes struct {
	h *hashids.HashID
}

func NewConfirmationCodes(salt string) (*ConfirmationCodes, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &ConfirmationCodes{h: h}, nil
}

func (c *ConfirmationCodes) Issue(at time.Time) (string, error) {
	return c.h.EncodeInt64([]int64{at.UnixMilli()})
}
