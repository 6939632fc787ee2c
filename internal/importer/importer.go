// Package importer reads ledger files written as YAML or JSON.
//
// A file is either a bare list of records or a mapping with a
// "transactions" list:
//
//	transactions:
//	  - date: 2024-03-01
//	    type: Tithes
//	    amount: 5000
package importer

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"cfcs/internal/ledger"
	"cfcs/internal/models"
	cfcsvalidator "cfcs/internal/validator"
)

// Record is one transaction as written in a ledger file. ID and Flow are
// optional: missing IDs are assigned in file order and the flow is derived
// from the type.
type Record struct {
	ID     int64  `yaml:"id" validate:"gte=0"`
	Date   string `yaml:"date" validate:"required,iso_date"`
	Type   string `yaml:"type" validate:"required,category"`
	Flow   string `yaml:"flow" validate:"omitempty,flow"`
	Amount int64  `yaml:"amount" validate:"gt=0"`
}

type document struct {
	Transactions []Record `yaml:"transactions"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	cfcsvalidator.RegisterOn(v)
	return v
}

// ReadFile parses the ledger file at path. See Parse for startAfter.
func ReadFile(path string, startAfter int64) ([]models.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data, startAfter)
}

// Parse decodes and validates a ledger document. The result is in file
// order and passes ledger.Check. Records without an id are numbered after
// both startAfter and the largest id in the file, so a file appended to a
// ledger whose largest id is startAfter gets fresh ids.
func Parse(data []byte, startAfter int64) ([]models.Transaction, error) {
	records, err := decode(data)
	if err != nil {
		return nil, err
	}

	next := startAfter
	for _, r := range records {
		if r.ID > next {
			next = r.ID
		}
	}

	out := make([]models.Transaction, 0, len(records))
	seen := make(map[int64]int, len(records))
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		flow, _ := models.FlowOf(r.Type)
		if r.Flow != "" && models.Flow(r.Flow) != flow {
			return nil, fmt.Errorf("record %d: flow %s does not match type %q", i+1, r.Flow, r.Type)
		}
		id := r.ID
		if id == 0 {
			next++
			id = next
		}
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("record %d: id %d already used by record %d", i+1, id, prev)
		}
		seen[id] = i + 1

		tx := models.Transaction{ID: id, Date: r.Date, Type: r.Type, Flow: flow, Amount: r.Amount}
		if err := ledger.Check(tx); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		out = append(out, tx)
	}
	return out, nil
}

func decode(data []byte) ([]Record, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse ledger file: %w", err)
	}
	if len(node.Content) == 0 {
		return []Record{}, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var records []Record
		if err := root.Decode(&records); err != nil {
			return nil, fmt.Errorf("parse ledger file: %w", err)
		}
		return records, nil
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse ledger file: %w", err)
		}
		return doc.Transactions, nil
	}
	return nil, fmt.Errorf("parse ledger file: expected a list or a mapping, got %s", root.Tag)
}

// Marshal writes ts as a YAML ledger document that Parse reads back.
func Marshal(ts []models.Transaction) ([]byte, error) {
	records := make([]Record, len(ts))
	for i, t := range ts {
		records[i] = Record{ID: t.ID, Date: t.Date, Type: t.Type, Flow: string(t.Flow), Amount: t.Amount}
	}
	return yaml.Marshal(document{Transactions: records})
}
