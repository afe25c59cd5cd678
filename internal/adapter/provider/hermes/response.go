package hermes

// apiLatest is the body of GET /v2/updates/price/latest?parsed=true.
// The binary update payload is not needed and is left undecoded.
type apiLatest struct {
	Parsed []apiPriceUpdate `json:"parsed"`
}

// apiPriceUpdate is one parsed feed update.
type apiPriceUpdate struct {
	ID    string   `json:"id"`
	Price apiPrice `json:"price"`
}

// apiPrice carries price and confidence as decimal strings.
type apiPrice struct {
	Price       string `json:"price"`
	Conf        string `json:"conf"`
	Expo        int32  `json:"expo"`
	PublishTime int64  `json:"publish_time"`
}
