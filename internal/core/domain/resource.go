package domain

import "time"

// ResourceType groups financial-literacy resources.
type ResourceType string

const (
	ResourceCredit ResourceType = "credit"
	ResourceBudget ResourceType = "budget"
	ResourceInvest ResourceType = "invest"
)

var ResourceTypes = []ResourceType{ResourceCredit, ResourceBudget, ResourceInvest}

func ParseResourceType(s string) (ResourceType, error) {
	for _, t := range ResourceTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrInvalidResourceType
}

// FinancialResource is a curated external link. Likes always equals the
// number of ResourceLike rows pointing at it.
type FinancialResource struct {
	ID           int64        `json:"resource_id"`
	Name         string       `json:"name"`
	Website      string       `json:"website"`
	Description  string       `json:"description,omitempty"`
	ResourceType ResourceType `json:"resource_type"`
	Likes        int64        `json:"likes"`
	CreatedAt    time.Time    `json:"created_at"`
}
