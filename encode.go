package stockpile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeItems decodes stock items from a stream of JSONL data, one item per line.
func DecodeItems(r io.Reader) ([]StockItem, error) {
	var items []StockItem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var item StockItem
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("could not parse stock item line %q: %w", string(line), err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read stock items: %w", err)
	}
	return items, nil
}

// EncodeItems writes stock items as JSONL, one item per line, preserving order.
func EncodeItems(w io.Writer, items []StockItem) error {
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("cannot marshal stock item %q: %w", item.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write stock item %q: %w", item.ID, err)
		}
	}
	return nil
}

// DecodeHistory decodes issue records from a stream of JSONL data.
func DecodeHistory(r io.Reader) ([]IssueRecord, error) {
	var records []IssueRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec IssueRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not parse issue record line %q: %w", string(line), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read issue records: %w", err)
	}
	return records, nil
}

// EncodeHistory writes issue records as JSONL, one record per line.
func EncodeHistory(w io.Writer, records []IssueRecord) error {
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("cannot marshal issue record %q: %w", rec.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write issue record %q: %w", rec.ID, err)
		}
	}
	return nil
}
