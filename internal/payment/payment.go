package payment

import "context"

// Checkout é o pedido de pagamento entregue ao processador. O core não
// toca em dado de cartão nem em webhook: só pede o destino de redirect e
// depois observa as flags de retorno.
type Checkout struct {
	UserID    string
	Title     string
	Amount    float64
	Reference string
}

type Processor interface {
	CheckoutURL(ctx context.Context, ck Checkout) (string, error)
}
