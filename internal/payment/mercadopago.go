package payment

import (
	"context"
	"strings"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/EspacoVida/spa-portal/internal/apierr"
)

// MercadoPago cria uma preferência de checkout e devolve o init point —
// o destino de redirect que a UI abre para o pagamento avulso.
type MercadoPago struct {
	prefs   preference.Client
	backURL string
}

func NewMercadoPago(accessToken, portalBaseURL string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, apierr.New(0, "payment_config_failed", "Não foi possível configurar o processador de pagamento.")
	}

	return &MercadoPago{
		prefs:   preference.NewClient(cfg),
		backURL: strings.TrimRight(portalBaseURL, "/"),
	}, nil
}

func (p *MercadoPago) CheckoutURL(ctx context.Context, ck Checkout) (string, error) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     ck.Title,
				Quantity:  1,
				UnitPrice: ck.Amount,
			},
		},
		ExternalReference: ck.Reference,
		BackURLs: &preference.BackURLsRequest{
			Success: p.backURL + "/checkout/sucesso",
			Pending: p.backURL + "/checkout/pendente",
			Failure: p.backURL + "/checkout/erro",
		},
	}

	res, err := p.prefs.Create(ctx, req)
	if err != nil {
		return "", apierr.New(0, "payment_checkout_failed", "Não foi possível iniciar o pagamento.")
	}

	return res.InitPoint, nil
}
