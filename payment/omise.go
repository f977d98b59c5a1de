package payment

import (
	"context"
	"fmt"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

type OmiseGateway struct {
	createLink func(*omise.Link, *operations.CreateLink) error
}

func NewOmiseGateway(publicKey, secretKey string) (*OmiseGateway, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("omise client: %w", err)
	}
	return &OmiseGateway{
		createLink: func(link *omise.Link, op *operations.CreateLink) error {
			return client.Do(link, op)
		},
	}, nil
}

// CreateIntent opens a single-use Omise payment link; its URI is what the
// client uses to pay.
func (g *OmiseGateway) CreateIntent(_ context.Context, amountMinor int64) (string, error) {
	if amountMinor <= 0 {
		return "", ErrInvalidAmount
	}

	link := &omise.Link{}
	op := &operations.CreateLink{
		Amount:      amountMinor,
		Currency:    "thb",
		Title:       "PharmaPlace order",
		Description: "Medicine order checkout",
	}
	if err := g.createLink(link, op); err != nil {
		return "", fmt.Errorf("omise payment link: %w", err)
	}
	return link.PaymentURI, nil
}
