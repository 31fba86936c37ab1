// Package board holds the loaded contact files, one column per file.
//
// The board is the only shared mutable state of the program: the watcher
// reloads columns from its own goroutine while commands read and edit them,
// so every access goes through the board's lock.
package board

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/aidanlsb/cardboard/internal/atomicfile"
	"github.com/aidanlsb/cardboard/internal/merge"
	"github.com/aidanlsb/cardboard/internal/vcard"
)

// ErrColumnNotFound is returned for an unknown column id or path.
var ErrColumnNotFound = errors.New("column not found")

// ErrContactNotFound is returned for an unknown contact id.
var ErrContactNotFound = errors.New("contact not found")

// Options control how columns are written back to disk.
type Options struct {
	// FoldWidth is the line width used on export. Zero means
	// vcard.DefaultFoldWidth.
	FoldWidth int

	// Backup keeps the previous file content next to it on save.
	Backup bool
}

// Column is one loaded file.
type Column struct {
	Path     string
	Document *vcard.Document
}

// ID returns the column id, which is the document id.
func (c *Column) ID() string { return c.Document.ID }

// Board is the set of loaded columns, in load order.
type Board struct {
	mu      sync.RWMutex
	columns []*Column
	logger  *zap.Logger
	opts    Options
}

// New returns an empty board. A nil logger discards log output.
func New(logger *zap.Logger, opts Options) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.FoldWidth == 0 {
		opts.FoldWidth = vcard.DefaultFoldWidth
	}
	return &Board{logger: logger, opts: opts}
}

// LoadFile reads and parses a file into a new column. Loading a path that is
// already on the board replaces that column, keeping its id.
func (b *Board) LoadFile(ctx context.Context, path string) (*Column, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	doc, err := b.read(ctx, abs)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	col := &Column{Path: abs, Document: doc}

	// Columns handed out earlier keep their old document.
	for i, existing := range b.columns {
		if existing.Path == abs {
			doc.ID = existing.Document.ID
			b.columns[i] = col
			return col, nil
		}
	}

	b.columns = append(b.columns, col)
	return col, nil
}

// Reload re-reads the file behind an existing column, keeping its id.
func (b *Board) Reload(ctx context.Context, path string) (*Column, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	b.mu.RLock()
	known := b.byPath(abs) != nil
	b.mu.RUnlock()
	if !known {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, path)
	}

	return b.LoadFile(ctx, abs)
}

func (b *Board) read(ctx context.Context, path string) (*vcard.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := vcard.ParseDocument(filepath.Base(path), string(data))
	for _, w := range doc.Warnings() {
		b.logger.Warn("unhandled vCard line",
			zap.String("file", path),
			zap.String("code", w.Code),
			zap.String("contact", w.Contact),
			zap.Int("line", w.Line),
			zap.String("text", w.Text),
		)
	}
	b.logger.Debug("loaded contacts",
		zap.String("file", path),
		zap.Int("contacts", doc.Len()),
	)
	return doc, nil
}

func (b *Board) byPath(abs string) *Column {
	for _, col := range b.columns {
		if col.Path == abs {
			return col
		}
	}
	return nil
}

func (b *Board) byID(id string) (*Column, error) {
	for _, col := range b.columns {
		if col.Document.ID == id {
			return col, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, id)
}

// Column returns the column with the given id.
func (b *Board) Column(id string) (*Column, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	col, err := b.byID(id)
	return col, err == nil
}

// ColumnByPath returns the column loaded from path.
func (b *Board) ColumnByPath(path string) (*Column, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	col := b.byPath(abs)
	return col, col != nil
}

// Columns returns the columns in load order.
func (b *Board) Columns() []*Column {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*Column, len(b.columns))
	copy(out, b.columns)
	return out
}

// Paths returns the file paths of every column.
func (b *Board) Paths() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.columns))
	for _, col := range b.columns {
		out = append(out, col.Path)
	}
	return out
}

// RemoveColumn drops a column from the board. The file is not touched.
func (b *Board) RemoveColumn(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, col := range b.columns {
		if col.Document.ID == id {
			b.columns = append(b.columns[:i], b.columns[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrColumnNotFound, id)
}

// TransferContact moves a whole contact from one column to another. The
// contact keeps its id unless the target column already uses it; the id it
// ends up with is returned.
func (b *Board) TransferContact(fromColumn, toColumn, contactID string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	from, err := b.byID(fromColumn)
	if err != nil {
		return "", err
	}
	to, err := b.byID(toColumn)
	if err != nil {
		return "", err
	}
	if from == to {
		return contactID, nil
	}

	c, ok := from.Document.Remove(contactID)
	if !ok {
		return "", fmt.Errorf("%w: %s in %s", ErrContactNotFound, contactID, from.Document.Name)
	}
	return to.Document.Add(c), nil
}

// MoveProperty moves one property between two contacts, which may live in
// different columns.
func (b *Board) MoveProperty(fromColumn, fromContact, toColumn, toContact string, name vcard.PropertyName, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	source, err := b.contact(fromColumn, fromContact)
	if err != nil {
		return err
	}
	target, err := b.contact(toColumn, toContact)
	if err != nil {
		return err
	}
	return vcard.MoveProperty(source, target, name, value)
}

func (b *Board) contact(columnID, contactID string) (*vcard.Contact, error) {
	col, err := b.byID(columnID)
	if err != nil {
		return nil, err
	}
	c, ok := col.Document.Get(contactID)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrContactNotFound, contactID, col.Document.Name)
	}
	return c, nil
}

// Merge runs fn on a merge session of two contacts of one column and commits
// the result. fn can return an error to abandon the merge.
func (b *Board) Merge(columnID, leftID, rightID string, dropEmptied bool, fn func(*merge.Session) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	left, err := b.contact(columnID, leftID)
	if err != nil {
		return err
	}
	right, err := b.contact(columnID, rightID)
	if err != nil {
		return err
	}

	s := merge.NewSession(left, right)
	if err := fn(s); err != nil {
		return err
	}

	col, _ := b.byID(columnID)
	return s.Commit(col.Document, leftID, rightID, dropEmptied)
}

// Export returns the wire text of a column.
func (b *Board) Export(id string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	col, err := b.byID(id)
	if err != nil {
		return "", err
	}
	return col.Document.ExportWidth(b.opts.FoldWidth)
}

// Save writes a column to path, or to the file it was loaded from when path
// is empty. It returns the backup path when one was written.
func (b *Board) Save(id, path string) (string, error) {
	b.mu.RLock()
	col, err := b.byID(id)
	if err != nil {
		b.mu.RUnlock()
		return "", err
	}
	if path == "" {
		path = col.Path
	}
	text, err := col.Document.ExportWidth(b.opts.FoldWidth)
	name, count := col.Document.Name, col.Document.Len()
	b.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("export %s: %w", name, err)
	}

	var backup string
	if b.opts.Backup {
		backup, err = atomicfile.WriteFileBackup(path, []byte(text), 0)
	} else {
		err = atomicfile.WriteFile(path, []byte(text), 0)
	}
	if err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}

	b.logger.Info("saved contacts",
		zap.String("file", path),
		zap.Int("contacts", count),
		zap.String("backup", backup),
	)
	return backup, nil
}
