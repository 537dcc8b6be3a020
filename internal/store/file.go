package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/erazemk/prodajalna/internal/jsonfile"
	"github.com/erazemk/prodajalna/internal/model"
)

// document is the on-disk layout of the inventory file.
type document struct {
	Products     map[uuid.UUID]model.Product `json:"products"`
	Transactions []model.Transaction         `json:"transactions"`
}

// CorruptSuffix is appended, together with a UTC timestamp, to an unreadable
// inventory file before it is replaced.
const CorruptSuffix = ".corrupt"

// Save writes products and transactions to path as one JSON document.
func (s *Inventory) Save(path string) error {
	doc := document{
		Products:     s.products,
		Transactions: s.transactions,
	}
	if err := jsonfile.Write(path, doc, false, 0o644); err != nil {
		return fmt.Errorf("%w: saving inventory: %w", model.ErrDatabase, err)
	}
	return nil
}

// Load replaces the in-memory state with the document at path. If the file
// is missing or cannot be decoded, the current state is written to path
// instead and Load succeeds; only a failure of that write is returned. An
// undecodable file is moved aside to path+CorruptSuffix+".<timestamp>" first.
func (s *Inventory) Load(path string) error {
	var doc document
	err := jsonfile.Read(path, &doc)
	if err == nil {
		if doc.Products == nil {
			doc.Products = make(map[uuid.UUID]model.Product)
		}
		if doc.Transactions == nil {
			doc.Transactions = []model.Transaction{}
		}
		s.products = doc.Products
		s.transactions = doc.Transactions
		slog.Info("inventory loaded", "path", path,
			"products", len(s.products), "transactions", len(s.transactions))
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		slog.Info("inventory file not found, creating", "path", path)
	} else {
		slog.Warn("inventory file unreadable, reinitializing", "path", path, "error", err)
		backup := s.backupName(path)
		if err := os.Rename(path, backup); err != nil {
			slog.Warn("could not preserve unreadable inventory file", "path", path, "error", err)
		} else {
			slog.Warn("unreadable inventory file preserved", "backup", backup)
		}
	}

	return s.Save(path)
}

// backupName returns a name for an unreadable inventory file that does not
// collide with an earlier backup.
func (s *Inventory) backupName(path string) string {
	base := path + CorruptSuffix + "." + s.now().UTC().Format("20060102T150405Z")
	name := base
	for i := 1; ; i++ {
		if _, err := os.Lstat(name); err != nil {
			return name
		}
		name = fmt.Sprintf("%s-%d", base, i)
	}
}
