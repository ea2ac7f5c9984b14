package dto

// RsvpFormUpdateRequest is a partial update of the visitor's open RSVP form.
// GuestCount is raw text so out-of-range and non-numeric input can be
// clamped rather than rejected.
type RsvpFormUpdateRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	GuestCount *string `json:"guestCount"`
	Notes      *string `json:"notes"`
}

type CheckoutUpdateRequest struct {
	FirstName            *string `json:"firstName"`
	LastName             *string `json:"lastName"`
	Email                *string `json:"email"`
	Phone                *string `json:"phone"`
	Notes                *string `json:"notes"`
	PaymentMethod        *string `json:"paymentMethod"`
	TransactionReference *string `json:"transactionReference"`
	CardNumber           *string `json:"cardNumber"`
	CardExpiry           *string `json:"cardExpiry"`
	CardCvc              *string `json:"cardCvc"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MembershipStatusRequest struct {
	Status               string  `json:"status"`
	TransactionReference *string `json:"transactionReference"`
}
