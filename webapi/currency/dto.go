package currency

// RateResponse is one supported currency and its value in EUR.
type RateResponse struct {
	Code      string `json:"code" example:"USD"`
	RateToEUR string `json:"rate_to_eur" example:"0.85"`
}
