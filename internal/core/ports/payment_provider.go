package ports

import "context"

// PaymentProvider abstracts the payment gateway. The only contract the rest
// of the system depends on is: amount+currency in, client secret out.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}
