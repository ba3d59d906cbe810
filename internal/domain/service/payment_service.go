package service

// PaymentIntent is the gateway-neutral view of a card payment intent.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
	Metadata     map[string]string
}

const (
	// IntentStatusSucceeded is the only status that allows an order to be
	// recorded.
	IntentStatusSucceeded = "succeeded"
)

// PaymentGatewayService abstracts the card payment processor.
type PaymentGatewayService interface {
	CreatePaymentIntent(amount int64, currency string, metadata map[string]string) (*PaymentIntent, error)
	GetPaymentIntent(id string) (*PaymentIntent, error)
}
