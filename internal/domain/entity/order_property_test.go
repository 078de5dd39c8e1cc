package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

// genOrderItems builds item lists from price seeds in cents; the quantity is
// derived from the seed so shrinking stays one-dimensional.
func genOrderItems() gopter.Gen {
	return gen.SliceOf(gen.Int64Range(1, 1_000_000)).Map(func(cents []int64) []OrderItem {
		items := make([]OrderItem, len(cents))
		for i, c := range cents {
			items[i] = OrderItem{
				ProductID:    uuid.New(),
				ProductPrice: decimal.New(c, -2),
				Quantity:     int(c%50) + 1,
			}
		}

		return items
	})
}

// TestOrderTotalsProperties checks totals are idempotent and never negative.
func TestOrderTotalsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("CalculateTotals is idempotent", prop.ForAll(
		func(items []OrderItem, discount, shipping, tax int64) bool {
			order := NewOrder(NewOrderParams{
				Items:          items,
				DiscountAmount: decimal.New(discount, -2),
				ShippingAmount: decimal.New(shipping, -2),
				TaxAmount:      decimal.New(tax, -2),
			}, orderTestNow)
			total, final := order.TotalAmount, order.FinalAmount

			order.CalculateTotals()

			return order.TotalAmount.Equal(total) && order.FinalAmount.Equal(final)
		},
		genOrderItems(),
		gen.Int64Range(0, 100_000_000),
		gen.Int64Range(0, 100_000),
		gen.Int64Range(0, 100_000),
	))

	properties.Property("FinalAmount is never negative", prop.ForAll(
		func(items []OrderItem, discount int64) bool {
			order := NewOrder(NewOrderParams{
				Items:          items,
				DiscountAmount: decimal.New(discount, -2),
			}, orderTestNow)

			return !order.FinalAmount.IsNegative()
		},
		genOrderItems(),
		gen.Int64Range(0, 1_000_000_000),
	))

	properties.TestingRun(t)
}

// TestTerminalOrderProperties checks that no transition leaves a terminal status.
func TestTerminalOrderProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("terminal orders refuse every transition", prop.ForAll(
		func(status OrderStatus, name string) bool {
			order := newTestOrder(status)
			err := transitions[name](order, orderTestNow)

			return err != nil && order.Status == status
		},
		gen.OneConstOf(OrderStatusDelivered, OrderStatusCancelled),
		gen.OneConstOf("confirm", "start_processing", "ship", "deliver", "cancel"),
	))

	properties.TestingRun(t)
}
