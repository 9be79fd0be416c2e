package models

// Purchase is one history record. The first record of every run has an empty Item
// and represents the initial state.
type Purchase struct {
	Time  float64 `json:"time" yaml:"time"`
	Item  string  `json:"item,omitempty" yaml:"item,omitempty"`
	Cost  float64 `json:"cost" yaml:"cost"`
	Total float64 `json:"total" yaml:"total"` // cumulative resources at purchase time
}

// IsInitial reports whether the record is the synthetic no-purchase entry
func (p Purchase) IsInitial() bool {
	return p.Item == ""
}

// InitialPurchase is the record every history starts with
func InitialPurchase() Purchase {
	return Purchase{}
}
