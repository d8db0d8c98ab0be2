package constants

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment status constants
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment method constants
const (
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodCOD      = "cod"
)

// Product sort keys
const (
	ProductSortNewest    = "newest"
	ProductSortPriceLow  = "price-low"
	ProductSortPriceHigh = "price-high"
	ProductSortRating    = "rating"
	ProductSortName      = "name"
)

// Review rating bounds
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

// Queue constants
const (
	QueueDefault         = "default"
	TaskOrderStatusEmail = "order:status_email"
)

// Cache default configuration constants
const (
	RedisPrefixDefault = "vastra"
)

// Site currency constant
const (
	SiteCurrencyDefault = "INR"
)
