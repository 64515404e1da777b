package order

// Prices in whole currency units. The values form the complete pricing
// decision table of the station:
//
//	hasContainer  delivery  price
//	false         any       200  (new container included)
//	true          true      30   (refill, delivered)
//	true          false     25   (refill, picked up)
const (
	ContainerPurchasePrice = 200
	RefillDeliveryPrice    = 30
	RefillPickupPrice      = 25
)

// ComputePrice maps order attributes to a price per the decision table above.
// Pure and total over the boolean domain; it is evaluated exactly once per
// order, at creation, and the result is stored immutably on the order.
func ComputePrice(hasContainer bool, delivery bool) int {
	if !hasContainer {
		return ContainerPurchasePrice
	}
	if delivery {
		return RefillDeliveryPrice
	}
	return RefillPickupPrice
}
