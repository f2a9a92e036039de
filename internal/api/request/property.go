package request

import "encoding/json"

type CreatePropertyRequest struct {
	OwnerID       string   `json:"ownerId"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Address       string   `json:"address"`
	PurchaseValue float64  `json:"purchaseValue"`
	CurrentValue  *float64 `json:"currentValue,omitempty"`
	RentAmount    float64  `json:"rentAmount"`
	ROI           *float64 `json:"roi,omitempty"`
}

// UpdatePropertyRequest carries a partial property edit. For currentValue
// and roi the absence of the key and an explicit null mean different things
// (keep vs. clear), so those fields track whether the key was present.
type UpdatePropertyRequest struct {
	Name       *string  `json:"name,omitempty"`
	Type       *string  `json:"type,omitempty"`
	Address    *string  `json:"address,omitempty"`
	RentAmount *float64 `json:"rentAmount,omitempty"`

	CurrentValue    *float64 `json:"-"`
	CurrentValueSet bool     `json:"-"`
	ROI             *float64 `json:"-"`
	ROISet          bool     `json:"-"`
}

// UnmarshalJSON distinguishes omitted keys from explicit nulls for the
// clearable optional fields.
func (r *UpdatePropertyRequest) UnmarshalJSON(data []byte) error {
	type alias UpdatePropertyRequest
	if err := json.Unmarshal(data, (*alias)(r)); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, present := raw["currentValue"]; present {
		r.CurrentValueSet = true
		if string(v) != "null" {
			if err := json.Unmarshal(v, &r.CurrentValue); err != nil {
				return err
			}
		}
	}
	if v, present := raw["roi"]; present {
		r.ROISet = true
		if string(v) != "null" {
			if err := json.Unmarshal(v, &r.ROI); err != nil {
				return err
			}
		}
	}

	return nil
}
