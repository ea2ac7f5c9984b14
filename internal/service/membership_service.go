package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/ama-chapter/portal/internal/models"
)

var (
	ErrCheckoutInFlight       = errors.New("a checkout submission is already in progress")
	ErrUnknownPlan            = errors.New("unknown membership plan")
	ErrInvalidCardNumber      = errors.New("please enter a valid card number (only the last 4 digits are stored)")
	ErrInvalidCardExpiry      = errors.New("please enter card expiry in MM/YY format")
	ErrInvalidCardCvc         = errors.New("please enter a valid CVC")
	ErrMissingPaypalReference = errors.New("please provide your PayPal email or confirmation ID")
)

const checkoutFallbackError = "Something went wrong while saving your registration."

var (
	nonDigits     = regexp.MustCompile(`\D`)
	expiryPattern = regexp.MustCompile(`\d{2}/\d{2}`)
)

// IsCheckoutValidationError reports whether err is one of the client-side
// validation failures that short-circuit before any network call.
func IsCheckoutValidationError(err error) bool {
	return errors.Is(err, ErrUnknownPlan) ||
		errors.Is(err, ErrInvalidCardNumber) ||
		errors.Is(err, ErrInvalidCardExpiry) ||
		errors.Is(err, ErrInvalidCardCvc) ||
		errors.Is(err, ErrMissingPaypalReference)
}

// MembershipBackend is the slice of the backend client checkout submits
// through.
type MembershipBackend interface {
	CreateMembership(ctx context.Context, payload models.CreateMembership) (*models.MembershipRegistration, error)
}

type CheckoutForm struct {
	FirstName            string                `json:"firstName"`
	LastName             string                `json:"lastName"`
	Email                string                `json:"email"`
	Phone                string                `json:"phone"`
	PlanType             models.MembershipPlan `json:"planType"`
	Notes                string                `json:"notes"`
	PaymentMethod        models.PaymentMethod  `json:"paymentMethod"`
	TransactionReference string                `json:"transactionReference"`
	CardNumber           string                `json:"cardNumber"`
	CardExpiry           string                `json:"cardExpiry"`
	CardCvc              string                `json:"cardCvc"`
}

// CheckoutUpdate carries partial field updates; nil fields are untouched.
// Payment method changes go through SetPaymentMethod so stale method
// specific fields are reset.
type CheckoutUpdate struct {
	FirstName            *string
	LastName             *string
	Email                *string
	Phone                *string
	Notes                *string
	TransactionReference *string
	CardNumber           *string
	CardExpiry           *string
	CardCvc              *string
}

type CheckoutState struct {
	Form       CheckoutForm                   `json:"form"`
	Submitting bool                           `json:"submitting"`
	Error      string                         `json:"error,omitempty"`
	Success    *models.MembershipRegistration `json:"success,omitempty"`
}

// CheckoutSession is one visitor's membership checkout flow. Submission is
// single-flight guarded; validation failures surface inline without a
// network call and leave every entered value intact.
type CheckoutSession struct {
	mu         sync.Mutex
	form       CheckoutForm
	submitting bool
	errMsg     string
	success    *models.MembershipRegistration
}

func NewCheckoutSession(defaultPlan models.MembershipPlan) *CheckoutSession {
	if defaultPlan == "" {
		defaultPlan = models.PlanChapter
	}
	return &CheckoutSession{
		form: CheckoutForm{
			PlanType:      defaultPlan,
			PaymentMethod: models.PaymentCard,
		},
	}
}

// SetPaymentMethod switches methods and clears fields belonging to the
// other methods, so stale data from one method is never submitted under
// another: switching away from cash clears the reference note, away from
// card clears the card fields, away from paypal clears the reference.
func (s *CheckoutSession) SetPaymentMethod(method models.PaymentMethod) CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form.PaymentMethod = method
	if method != models.PaymentCash {
		s.form.TransactionReference = ""
	}
	if method != models.PaymentCard {
		s.form.CardNumber = ""
		s.form.CardExpiry = ""
		s.form.CardCvc = ""
	}
	return s.snapshotLocked()
}

func (s *CheckoutSession) Apply(update CheckoutUpdate) CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.FirstName != nil {
		s.form.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		s.form.LastName = *update.LastName
	}
	if update.Email != nil {
		s.form.Email = *update.Email
	}
	if update.Phone != nil {
		s.form.Phone = *update.Phone
	}
	if update.Notes != nil {
		s.form.Notes = *update.Notes
	}
	if update.TransactionReference != nil {
		s.form.TransactionReference = *update.TransactionReference
	}
	if update.CardNumber != nil {
		s.form.CardNumber = *update.CardNumber
	}
	if update.CardExpiry != nil {
		s.form.CardExpiry = *update.CardExpiry
	}
	if update.CardCvc != nil {
		s.form.CardCvc = *update.CardCvc
	}
	return s.snapshotLocked()
}

func (s *CheckoutSession) Snapshot() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *CheckoutSession) snapshotLocked() CheckoutState {
	return CheckoutState{
		Form:       s.form,
		Submitting: s.submitting,
		Error:      s.errMsg,
		Success:    s.success,
	}
}

// deriveReference validates method-specific inputs and produces the
// transaction reference. The full card number, expiry and CVC never leave
// the process; only CARD- plus the last 4 digits is submitted. This is
// deliberate data minimization, a placeholder for a real payment gateway,
// not PCI tokenization.
func deriveReference(form CheckoutForm) (*string, error) {
	switch form.PaymentMethod {
	case models.PaymentCard:
		digits := nonDigits.ReplaceAllString(form.CardNumber, "")
		if len(digits) < 12 {
			return nil, ErrInvalidCardNumber
		}
		if !expiryPattern.MatchString(form.CardExpiry) {
			return nil, ErrInvalidCardExpiry
		}
		if len(nonDigits.ReplaceAllString(form.CardCvc, "")) < 3 {
			return nil, ErrInvalidCardCvc
		}
		ref := "CARD-" + digits[len(digits)-4:]
		return &ref, nil

	case models.PaymentPaypal:
		ref := strings.TrimSpace(form.TransactionReference)
		if ref == "" {
			return nil, ErrMissingPaypalReference
		}
		return &ref, nil

	default: // cash: reference note is optional
		ref := strings.TrimSpace(form.TransactionReference)
		if ref == "" {
			return nil, nil
		}
		return &ref, nil
	}
}

// Submit validates the form, derives the transaction reference, and posts
// the registration. The amount is always looked up from the plan catalog.
func (s *CheckoutSession) Submit(ctx context.Context, api MembershipBackend) (CheckoutState, error) {
	s.mu.Lock()
	if s.submitting {
		state := s.snapshotLocked()
		s.mu.Unlock()
		return state, ErrCheckoutInFlight
	}
	s.submitting = true
	s.errMsg = ""
	form := s.form
	s.mu.Unlock()

	fail := func(err error) (CheckoutState, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.submitting = false
		msg := err.Error()
		if msg == "" {
			msg = checkoutFallbackError
		}
		s.errMsg = msg
		return s.snapshotLocked(), err
	}

	plan, ok := MembershipPlans[form.PlanType]
	if !ok {
		return fail(ErrUnknownPlan)
	}

	reference, err := deriveReference(form)
	if err != nil {
		return fail(err)
	}

	payload := models.CreateMembership{
		FirstName:            form.FirstName,
		LastName:             form.LastName,
		Email:                form.Email,
		PlanType:             form.PlanType,
		PaymentMethod:        form.PaymentMethod,
		Amount:               plan.AmountCents,
		TransactionReference: reference,
	}
	if form.Phone != "" {
		payload.Phone = &form.Phone
	}
	if form.Notes != "" {
		payload.Notes = &form.Notes
	}

	registration, err := api.CreateMembership(ctx, payload)
	if err != nil {
		return fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	s.success = registration
	return s.snapshotLocked(), nil
}
