package stockpile

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"stockpile/date"
)

// Ledger owns the read-modify-write cycle over the two stock partitions and
// the issue-history collection. It is the only writer; reports and the
// presentation layer consume the snapshots it returns.
//
// All operations are synchronous and run to completion. The mutex only
// serializes goroutines within this process: concurrent processes over the
// same data directory are outside the contract, as stated in the package doc.
type Ledger struct {
	mu       sync.Mutex
	repo     Repository
	currency string
	clock    func() time.Time
}

// NewLedger creates a ledger over the given repository. Monetary values read
// from storage are denominated in the given display currency.
func NewLedger(repo Repository, currency string) *Ledger {
	return &Ledger{repo: repo, currency: currency, clock: time.Now}
}

// Currency returns the ledger's display currency code.
func (l *Ledger) Currency() string { return l.currency }

// Items returns a snapshot of one stock partition.
func (l *Ledger) Items(t StockType) ([]StockItem, error) {
	items, err := l.repo.LoadItems(t)
	if err != nil {
		return nil, storageErr("load "+t.String()+" stock", err)
	}
	return l.denominateItems(items), nil
}

// AllItems returns snapshots of both partitions in scan order.
func (l *Ledger) AllItems() (internal, external []StockItem, err error) {
	if internal, err = l.Items(Internal); err != nil {
		return nil, nil, err
	}
	if external, err = l.Items(External); err != nil {
		return nil, nil, err
	}
	return internal, external, nil
}

// AddItem validates a creation request, constructs the item and appends it to
// the given partition.
func (l *Ledger) AddItem(req CreateItemRequest, t StockType) (StockItem, error) {
	if err := ValidateCreateItem(req); err != nil {
		return StockItem{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.repo.LoadItems(t)
	if err != nil {
		return StockItem{}, storageErr("load "+t.String()+" stock", err)
	}
	item := newStockItem(l.denominate(req), l.clock())
	items = append(items, item)
	if err := l.repo.SaveItems(t, items); err != nil {
		return StockItem{}, storageErr("save "+t.String()+" stock", err)
	}
	return item, nil
}

// UpdateItem merges the supplied fields over the existing item and stamps
// LastUpdated. Id, DateAdded and the stock type are never touched. The
// supplied fields are checked with the same rules as creation, except that a
// zero quantity stays legal after creation.
func (l *Ledger) UpdateItem(id string, fields UpdateItemFields, t StockType) (StockItem, error) {
	if err := ValidateUpdate(fields); err != nil {
		return StockItem{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.repo.LoadItems(t)
	if err != nil {
		return StockItem{}, storageErr("load "+t.String()+" stock", err)
	}
	idx := indexOf(items, id)
	if idx < 0 {
		return StockItem{}, &NotFoundError{ID: id}
	}
	items[idx] = fields.apply(l.denominateItem(items[idx]), l.clock())
	if err := l.repo.SaveItems(t, items); err != nil {
		return StockItem{}, storageErr("save "+t.String()+" stock", err)
	}
	return items[idx], nil
}

// DeleteItem removes the item with the given id from the partition. Deleting
// an absent id is a successful no-op; removed reports whether anything was
// actually deleted. Issue records referencing the item are never retracted.
func (l *Ledger) DeleteItem(id string, t StockType) (removed bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.repo.LoadItems(t)
	if err != nil {
		return false, storageErr("load "+t.String()+" stock", err)
	}
	idx := indexOf(items, id)
	if idx < 0 {
		return false, nil
	}
	items = append(items[:idx], items[idx+1:]...)
	if err := l.repo.SaveItems(t, items); err != nil {
		return false, storageErr("save "+t.String()+" stock", err)
	}
	return true, nil
}

// FindItem scans the internal partition first, then the external one, and
// returns the first item matching the id along with the partition it lives
// in. The partition is derived from where the item was found, never supplied
// by the caller.
func (l *Ledger) FindItem(id string) (StockItem, StockType, error) {
	for _, t := range StockTypes() {
		items, err := l.repo.LoadItems(t)
		if err != nil {
			return StockItem{}, t, storageErr("load "+t.String()+" stock", err)
		}
		if idx := indexOf(items, id); idx >= 0 {
			return l.denominateItem(items[idx]), t, nil
		}
	}
	return StockItem{}, Internal, &NotFoundError{ID: id}
}

// Issue runs the issuance transaction: it validates the request metadata,
// locates the item across both partitions, re-checks availability against
// the live quantity, decrements the stock, and only after the stock write
// has succeeded appends the audit record. A failed stock write aborts before
// any record is constructed, so no audit entry can claim a decrement that
// never happened.
func (l *Ledger) Issue(req IssueRequest) (IssueRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if req.Date.IsZero() {
		req.Date = date.Of(now)
	}
	if err := ValidateIssue(req); err != nil {
		return IssueRecord{}, err
	}

	var (
		item      StockItem
		items     []StockItem
		idx       = -1
		stockType StockType
	)
	for _, t := range StockTypes() {
		loaded, err := l.repo.LoadItems(t)
		if err != nil {
			return IssueRecord{}, storageErr("load "+t.String()+" stock", err)
		}
		i := indexOf(loaded, req.ItemID)
		if i < 0 {
			continue
		}
		if idx >= 0 {
			// The same id in both partitions can only come from a corrupted
			// or hand-edited data directory.
			return IssueRecord{}, storageErr("locate item",
				fmt.Errorf("item id %q present in both %s and %s stock", req.ItemID, stockType, t))
		}
		item, items, idx, stockType = l.denominateItem(loaded[i]), loaded, i, t
	}
	if idx < 0 {
		return IssueRecord{}, &NotFoundError{ID: req.ItemID}
	}

	if item.Quantity < req.Quantity {
		return IssueRecord{}, &InsufficientStockError{ID: item.ID, Requested: req.Quantity, Available: item.Quantity}
	}

	remaining := item.Quantity - req.Quantity

	updated := item
	updated.Quantity = remaining
	updated.LastUpdated = now
	items[idx] = updated

	// The stock write must land before the history write: the record's
	// remaining balance is a claim about the stored quantity.
	if err := l.repo.SaveItems(stockType, items); err != nil {
		return IssueRecord{}, storageErr("save "+stockType.String()+" stock", err)
	}

	record := newIssueRecord(req, item, stockType, remaining, now)
	history, err := l.repo.LoadHistory()
	if err != nil {
		return IssueRecord{}, storageErr("load issue history", err)
	}
	history = append(history, record)
	if err := l.repo.SaveHistory(history); err != nil {
		return IssueRecord{}, storageErr("save issue history", err)
	}
	return record, nil
}

// IssueHistory returns issue records matching the filter, sorted descending
// by timestamp (ties broken by record id so the order is stable). All set
// filter predicates are ANDed; a zero filter returns everything.
func (l *Ledger) IssueHistory(filter HistoryFilter) ([]IssueRecord, error) {
	records, err := l.repo.LoadHistory()
	if err != nil {
		return nil, storageErr("load issue history", err)
	}

	term := NormalizeSearchTerm(filter.SearchTerm)
	filtered := records[:0:0]
	for _, rec := range records {
		if !filter.StartDate.IsZero() && rec.Date.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && rec.Date.After(filter.EndDate) {
			continue
		}
		if filter.StockType != nil && rec.StockType != *filter.StockType {
			continue
		}
		if term != "" && !matchesTerm(rec, term) {
			continue
		}
		filtered = append(filtered, l.denominateRecord(rec))
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].Timestamp.Equal(filtered[j].Timestamp) {
			return filtered[i].Timestamp.After(filtered[j].Timestamp)
		}
		return filtered[i].ID > filtered[j].ID
	})
	return filtered, nil
}

func matchesTerm(rec IssueRecord, term string) bool {
	return strings.Contains(strings.ToLower(rec.ItemName), term) ||
		strings.Contains(strings.ToLower(rec.IssuedTo), term) ||
		strings.Contains(strings.ToLower(rec.Notes), term)
}

func indexOf(items []StockItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// denominate stamps the ledger's display currency on monetary values read
// from storage or from a request, where they arrive as bare decimals.
func (l *Ledger) denominate(req CreateItemRequest) CreateItemRequest {
	req.UnitCost.cur = l.currency
	return req
}

func (l *Ledger) denominateItem(item StockItem) StockItem {
	item.UnitCost.cur = l.currency
	return item
}

func (l *Ledger) denominateItems(items []StockItem) []StockItem {
	for i := range items {
		items[i].UnitCost.cur = l.currency
	}
	return items
}

func (l *Ledger) denominateRecord(rec IssueRecord) IssueRecord {
	rec.UnitCost.cur = l.currency
	rec.TotalValue.cur = l.currency
	return rec
}
