package deck

import (
	"encoding/base64"
	"encoding/json"
)

// Position is a resume point in the upstream feed: a page number and the index of the next
// unexamined entry within that page.
type Position struct {
	Page  int `json:"page"`
	Index int `json:"index"`
}

// Start is where a deck without a cursor begins.
var Start = Position{Page: 1, Index: 0}

// EncodeCursor returns the opaque token for p.
func EncodeCursor(p Position) string {
	raw, _ := json.Marshal(p)
	return base64.URLEncoding.EncodeToString(raw)
}

// DecodeCursor never fails: anything that is not a cursor produced by EncodeCursor
// decodes to Start. Missing fields take their Start value.
func DecodeCursor(cursor string) Position {
	if cursor == "" {
		return Start
	}
	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		// tolerate clients that strip the padding
		raw, err = base64.RawURLEncoding.DecodeString(cursor)
		if err != nil {
			return Start
		}
	}

	var fields struct {
		Page  *int `json:"page"`
		Index *int `json:"index"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Start
	}

	p := Start
	if fields.Page != nil {
		p.Page = *fields.Page
	}
	if fields.Index != nil {
		p.Index = *fields.Index
	}
	if p.Page < 0 || p.Index < 0 {
		return Start
	}
	return p
}
