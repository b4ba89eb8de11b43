package preferences

import (
	"context"
	"log/slog"

	"itemlists/internal/logging"
)

// Converter moves the active item list between a preferences file and the
// transfer CSV.
type Converter struct {
	store        *Store
	transferPath string
	names        NameResolver
	logger       *slog.Logger
}

// ExportResult describes a finished export.
type ExportResult struct {
	PreferencesPath string
	CSVPath         string
	Mode            Mode
	Rows            int
}

// ImportResult describes a finished import.
type ImportResult struct {
	PreferencesPath string
	CSVPath         string
	ListKey         string
	Count           int
}

// NewConverter wires a converter. names may be nil.
func NewConverter(store *Store, transferPath string, names NameResolver, logger *slog.Logger) *Converter {
	return &Converter{
		store:        store,
		transferPath: transferPath,
		names:        names,
		logger:       logging.NewComponentLogger(logger, "converter"),
	}
}

// Export writes the active list of the newest preferences file to the
// transfer CSV.
func (c *Converter) Export(ctx context.Context) (ExportResult, error) {
	doc, path, err := c.store.Load()
	if err != nil {
		return ExportResult{}, err
	}
	rows, err := ExportFile(c.transferPath, doc, c.names)
	if err != nil {
		return ExportResult{}, err
	}
	c.logger.Info("exported preferences list",
		logging.String(logging.FieldPath, path),
		logging.String("csv", c.transferPath),
		logging.String("mode", string(doc.Mode())),
		logging.Int("rows", rows))
	return ExportResult{
		PreferencesPath: path,
		CSVPath:         c.transferPath,
		Mode:            doc.Mode(),
		Rows:            rows,
	}, nil
}

// Import replaces the active list of the newest preferences file with the
// filtered rows of the transfer CSV.
func (c *Converter) Import(ctx context.Context) (ImportResult, error) {
	result := ImportResult{CSVPath: c.transferPath}
	path, err := c.store.Update(ctx, func(doc *Document) error {
		ids, err := ImportFile(c.transferPath)
		if err != nil {
			return err
		}
		result.ListKey = doc.ActiveKey()
		result.Count = len(ids)
		doc.SetActiveIDs(ids)
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	result.PreferencesPath = path
	c.logger.Info("imported preferences list",
		logging.String(logging.FieldPath, path),
		logging.String("csv", c.transferPath),
		logging.String("list", result.ListKey),
		logging.Int("count", result.Count))
	return result, nil
}
