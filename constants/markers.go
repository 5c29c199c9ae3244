package constants

// CurrencySymbol is the only currency the parser understands.
const CurrencySymbol = "₹"

// Marker labels used to anchor field extraction in normalized email text.
const (
	LabelRestaurant   = "Restaurant"
	LabelOrderPlaced  = "Order placed at:"
	LabelDelivered    = "Order delivered at:"
	LabelOrderTotal   = "Order Total:"
	LabelPaidVia      = "Paid Via"
	LabelTotalPayable = "Total Payable:"
	LabelDiscount     = "Discount Applied"
)

// RestaurantDenyList holds boilerplate lines that may sit between the
// "Restaurant" label and the actual restaurant name.
var RestaurantDenyList = []string{"Order", "Your Order Summary:", "Order No:"}

// DefaultContentMarkers is the default set for the provider-boundary
// validity check (a message must contain at least MinContentMarkers of
// these to be treated as an order confirmation).
var DefaultContentMarkers = []string{
	LabelRestaurant,
	LabelOrderPlaced,
	LabelDelivered,
	LabelOrderTotal,
	"Your Order Summary:",
}

// DefaultMinContentMarkers is the default threshold for the validity check.
const DefaultMinContentMarkers = 3
