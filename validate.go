package stockpile

import (
	"fmt"
	"strings"
)

// minNameLength applies to item names, supplier names and recipients.
const minNameLength = 2

// minSearchLength is the shortest search term that acts as a filter; anything
// shorter after trimming means "no filter".
const minSearchLength = 2

// ValidateCreateItem checks a creation request against the business rules and
// returns a ValidationError listing every failure, or nil.
//
// Creation requires a quantity of at least 1; the standing invariant only
// requires quantity >= 0, because issuance may legitimately drain a line to zero.
func ValidateCreateItem(req CreateItemRequest) error {
	var failures []string
	if len(strings.TrimSpace(req.Name)) < minNameLength {
		failures = append(failures, fmt.Sprintf("item name must be at least %d characters long", minNameLength))
	}
	if strings.TrimSpace(req.Category) == "" {
		failures = append(failures, "category is required")
	}
	if req.Quantity < 1 {
		failures = append(failures, "quantity must be at least 1")
	}
	if req.UnitCost.IsNegative() {
		failures = append(failures, "unit cost cannot be negative")
	}
	if len(strings.TrimSpace(req.Supplier)) < minNameLength {
		failures = append(failures, fmt.Sprintf("supplier name must be at least %d characters long", minNameLength))
	}
	if req.DateReceived.IsZero() {
		failures = append(failures, "date received is required")
	}
	if failures != nil {
		return &ValidationError{Failures: failures}
	}
	return nil
}

// ValidateUpdate checks the supplied fields of a partial update with the same
// rules as creation, except that quantity may be zero: a line drained by
// issuance stays legal.
func ValidateUpdate(fields UpdateItemFields) error {
	var failures []string
	if fields.Name != nil && len(strings.TrimSpace(*fields.Name)) < minNameLength {
		failures = append(failures, fmt.Sprintf("item name must be at least %d characters long", minNameLength))
	}
	if fields.Category != nil && strings.TrimSpace(*fields.Category) == "" {
		failures = append(failures, "category is required")
	}
	if fields.Quantity != nil && *fields.Quantity < 0 {
		failures = append(failures, "quantity cannot be negative")
	}
	if fields.UnitCost != nil && fields.UnitCost.IsNegative() {
		failures = append(failures, "unit cost cannot be negative")
	}
	if fields.Supplier != nil && len(strings.TrimSpace(*fields.Supplier)) < minNameLength {
		failures = append(failures, fmt.Sprintf("supplier name must be at least %d characters long", minNameLength))
	}
	if failures != nil {
		return &ValidationError{Failures: failures}
	}
	return nil
}

// ValidateIssue checks the caller-supplied metadata of an issuance request,
// collecting every failure. The ledger runs it on every issuance; it does not
// cover availability, which only the ledger can check against the live
// quantity at commit time (reported as the distinct InsufficientStockError).
func ValidateIssue(req IssueRequest) error {
	var failures []string
	if strings.TrimSpace(req.ItemID) == "" {
		failures = append(failures, "item id is required")
	}
	if req.Quantity < 1 {
		failures = append(failures, "issued quantity must be at least 1")
	}
	if len(strings.TrimSpace(req.IssuedTo)) < minNameLength {
		failures = append(failures, fmt.Sprintf("recipient must be at least %d characters long", minNameLength))
	}
	if strings.TrimSpace(req.Reason) == "" {
		failures = append(failures, "reason is required")
	}
	if req.Date.IsZero() {
		failures = append(failures, "date is required")
	}
	if failures != nil {
		return &ValidationError{Failures: failures}
	}
	return nil
}

// NormalizeSearchTerm trims a search term and returns it lowercased, or the
// empty string when it is too short to act as a filter.
func NormalizeSearchTerm(term string) string {
	term = strings.TrimSpace(term)
	if len(term) < minSearchLength {
		return ""
	}
	return strings.ToLower(term)
}
