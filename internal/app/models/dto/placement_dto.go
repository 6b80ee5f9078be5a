package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexBool accepts boolean, string ("true"/"1") and numeric (1/0) JSON
// encodings, matching the loose offer_letter forms the dashboard sends.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("true")):
		*b = true
	case bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("null")):
		*b = false
	default:
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*b = FlexBool(strings.EqualFold(s, "true") || s == "1")
			return nil
		}
		var n float64
		if err := json.Unmarshal(data, &n); err == nil {
			*b = n != 0
			return nil
		}
		return fmt.Errorf("cannot unmarshal %s into bool", strconv.Quote(string(data)))
	}
	return nil
}

// PlacementRequest represents a placement insert or update payload
type PlacementRequest struct {
	StudentID     int64    `json:"student_id" binding:"required"`
	CompanyID     int64    `json:"company_id" binding:"required"`
	Position      string   `json:"position" binding:"required"`
	Location      *string  `json:"location"`
	Salary        *float64 `json:"salary" binding:"required"`
	PlacementDate string   `json:"placement_date" binding:"required,dateformat"`
	OfferType     *string  `json:"offer_type"`
	OfferLetter   FlexBool `json:"offer_letter"`
	CoreNonCore   *string  `json:"core_non_core"`
}

// StudentIDRow carries just a placement's student id
type StudentIDRow struct {
	StudentID int64 `json:"student_id"`
}
