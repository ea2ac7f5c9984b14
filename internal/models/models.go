package models

type MembershipPlan string

const (
	PlanChapter MembershipPlan = "chapter"
)

type MembershipStatus string

const (
	StatusPending   MembershipStatus = "pending"
	StatusPaid      MembershipStatus = "paid"
	StatusCancelled MembershipStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPaypal PaymentMethod = "paypal"
	PaymentCash   PaymentMethod = "cash"
)

// Event is owned and persisted by the content backend; the portal holds only
// render-scoped copies. Time is a free-text range like "6:00 PM - 8:00 PM".
type Event struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Spots       *int    `json:"spots,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	RsvpCount   *int    `json:"rsvpCount,omitempty"`
}

type EventRsvp struct {
	ID         string  `json:"id,omitempty"`
	EventID    string  `json:"eventId"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	GuestCount int     `json:"guestCount"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt,omitempty"`
}

type CreateEventRsvp struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	GuestCount int     `json:"guestCount"`
	Notes      *string `json:"notes,omitempty"`
}

type MembershipRegistration struct {
	ID                   string           `json:"id,omitempty"`
	FirstName            string           `json:"firstName"`
	LastName             string           `json:"lastName"`
	Email                string           `json:"email"`
	Phone                *string          `json:"phone,omitempty"`
	PlanType             MembershipPlan   `json:"planType"`
	PaymentMethod        PaymentMethod    `json:"paymentMethod"`
	Amount               int              `json:"amount"`
	Status               MembershipStatus `json:"status,omitempty"`
	TransactionReference *string          `json:"transactionReference,omitempty"`
	Notes                *string          `json:"notes,omitempty"`
	CreatedAt            string           `json:"createdAt,omitempty"`
	CheckoutCompletedAt  *string          `json:"checkoutCompletedAt,omitempty"`
}

// CreateMembership is the registration payload; Amount is always sourced
// from the plan catalog, never from user input.
type CreateMembership struct {
	FirstName            string         `json:"firstName"`
	LastName             string         `json:"lastName"`
	Email                string         `json:"email"`
	Phone                *string        `json:"phone,omitempty"`
	PlanType             MembershipPlan `json:"planType"`
	PaymentMethod        PaymentMethod  `json:"paymentMethod"`
	Amount               int            `json:"amount"`
	Notes                *string        `json:"notes,omitempty"`
	TransactionReference *string        `json:"transactionReference,omitempty"`
}

type PageSection struct {
	ID           string  `json:"id,omitempty"`
	Page         string  `json:"page"`
	Title        string  `json:"title"`
	Heading      string  `json:"heading"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

type TeamMember struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Major        *string `json:"major,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Email        *string `json:"email,omitempty"`
	LinkedIn     *string `json:"linkedin,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

type GalleryItem struct {
	ID           string  `json:"id,omitempty"`
	URL          string  `json:"url"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Caption      *string `json:"caption,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

// Setting is an arbitrary JSON-valued site setting keyed by string.
type Setting struct {
	Key   string         `json:"key"`
	Value map[string]any `json:"value"`
}

type Upload struct {
	Path         string `json:"path"`
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimetype"`
}

type AdminUser struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

type LoginResult struct {
	AccessToken string    `json:"accessToken"`
	User        AdminUser `json:"user"`
}
