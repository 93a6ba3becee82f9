package v1

import (
	"github.com/snapspend/backend/internal/types"
	ss_uuid "github.com/snapspend/backend/internal/uuid"
)

type URIID struct {
	ID ss_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month types.Month `uri:"month" example:"2024-06"` // Year and month in YYYY-MM format
}

// Pagination contains information about the pagination for collection endpoints.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
