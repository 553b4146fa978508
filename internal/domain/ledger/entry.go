package ledger

import (
	"errors"
	"strings"
	"time"

	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyReference = errors.New("funding reference is required")

type Kind string

const (
	KindPayment Kind = "payment"
	KindRefund  Kind = "refund"
	KindFunding Kind = "funding"
)

// Entry is one applied wallet mutation. Amount is signed: debits are negative.
type Entry struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Amount         money.Money
	IdempotencyKey string
	Kind           Kind
	RequestID      *uuid.UUID
	BalanceAfter   money.Money
	CreatedAt      time.Time
}

type Wallet struct {
	UserID    uuid.UUID
	Balance   money.Money
	UpdatedAt time.Time
}

// Mutation is a ledger change waiting to be applied.
type Mutation struct {
	UserID         uuid.UUID
	Amount         money.Money
	IdempotencyKey string
	Kind           Kind
	RequestID      *uuid.UUID
}

func PaymentKey(requestID uuid.UUID) string {
	return "pay:" + requestID.String()
}

func RefundKey(requestID uuid.UUID) string {
	return "refund:" + requestID.String()
}

func FundingKey(reference string) string {
	return "fund:" + strings.TrimSpace(reference)
}

func Payment(userID, requestID uuid.UUID, fee money.Money) Mutation {
	return Mutation{UserID: userID, Amount: fee.Neg(), IdempotencyKey: PaymentKey(requestID), Kind: KindPayment, RequestID: &requestID}
}

func Refund(userID, requestID uuid.UUID, fee money.Money) Mutation {
	return Mutation{UserID: userID, Amount: fee, IdempotencyKey: RefundKey(requestID), Kind: KindRefund, RequestID: &requestID}
}

func Funding(userID uuid.UUID, amount money.Money, reference string) (Mutation, error) {
	if strings.TrimSpace(reference) == "" {
		return Mutation{}, ErrEmptyReference
	}
	if !amount.IsPositive() {
		return Mutation{}, errs.Wrap(errs.ErrInvalidPayload, "funding amount must be positive")
	}
	return Mutation{UserID: userID, Amount: amount, IdempotencyKey: FundingKey(reference), Kind: KindFunding}, nil
}

// NextBalance applies amount to balance; a debit may not drive the balance below zero.
func NextBalance(balance, amount money.Money) (money.Money, error) {
	next := balance.Add(amount)
	if amount.Kobo() < 0 && next.Kobo() < 0 {
		return balance, errs.ErrInsufficientFunds
	}
	return next, nil
}
