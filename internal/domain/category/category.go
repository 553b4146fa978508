package category

import "errors"

var ErrUnknownCategory = errors.New("unknown service category")

type Category string

const (
	Identity      Category = "identity"
	BVN           Category = "bvn"
	Education     Category = "education"
	CAC           Category = "cac"
	AirtimeToCash Category = "airtime_to_cash"
	PinOrder      Category = "pin_order"
)

// Fulfillment names who completes a request: a human agent or the PIN inventory.
type Fulfillment string

const (
	FulfillmentAgent     Fulfillment = "agent"
	FulfillmentInventory Fulfillment = "inventory"
)

func All() []Category {
	return []Category{Identity, BVN, Education, CAC, AirtimeToCash, PinOrder}
}

func Parse(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case Identity, BVN, Education, CAC, AirtimeToCash, PinOrder:
		return true
	default:
		return false
	}
}

func (c Category) Fulfillment() Fulfillment {
	if c == PinOrder {
		return FulfillmentInventory
	}
	return FulfillmentAgent
}

func (c Category) IsAgentServiced() bool {
	return c.Fulfillment() == FulfillmentAgent
}

// AgentServiced lists the categories a human agent can be authorized for.
func AgentServiced() []Category {
	out := make([]Category, 0, len(All()))
	for _, c := range All() {
		if c.IsAgentServiced() {
			out = append(out, c)
		}
	}
	return out
}
