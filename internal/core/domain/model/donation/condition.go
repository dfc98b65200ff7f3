package donation

import (
	"fmt"
	"strings"

	"reco/internal/pkg/errs"
)

// Condition is the donor's assessment of the item.
type Condition int

const (
	ConditionUnknown Condition = iota
	ConditionNew
	ConditionGood
	ConditionNeedsRepair
)

var conditionNames = map[Condition]string{
	ConditionNew:         "new",
	ConditionGood:        "good",
	ConditionNeedsRepair: "needs_repair",
}

func ParseCondition(s string) (Condition, error) {
	needle := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for c, name := range conditionNames {
		if name == needle {
			return c, nil
		}
	}
	return ConditionUnknown, errs.NewValueIsInvalidErrorWithCause("condition", fmt.Errorf("%q is not a valid condition", s))
}

func (c Condition) String() string {
	if name, ok := conditionNames[c]; ok {
		return name
	}
	return "unknown"
}

func (c Condition) Validate() error {
	if _, ok := conditionNames[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("condition", fmt.Errorf("%d is not a valid condition", c))
	}
	return nil
}

// DeliveryType says how the item leaves the donor.
type DeliveryType int

const (
	DeliveryTypeUnknown DeliveryType = iota
	DeliveryTypeCollectionPoint
	DeliveryTypeHomePickup
)

var deliveryTypeNames = map[DeliveryType]string{
	DeliveryTypeCollectionPoint: "collection_point",
	DeliveryTypeHomePickup:      "home_pickup",
}

func ParseDeliveryType(s string) (DeliveryType, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for t, name := range deliveryTypeNames {
		if name == needle {
			return t, nil
		}
	}
	return DeliveryTypeUnknown, errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%q is not a valid delivery type", s))
}

func (t DeliveryType) String() string {
	if name, ok := deliveryTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

func (t DeliveryType) Validate() error {
	if _, ok := deliveryTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%d is not a valid delivery type", t))
	}
	return nil
}
