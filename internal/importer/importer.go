// Package importer loads GPU catalog rows from CSV exports into the
// inventory.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gpupos/internal/domain"
	"gpupos/internal/ident"
)

type GPUWriter interface {
	Add(g domain.GPU) error
}

// CSVImporter reads catalog CSV rows and appends them to the inventory.
// Expected headers: id, name, manufacturer, model, memory, price_cents,
// stock, image. The id column may be empty; a fresh id is generated then.
type CSVImporter struct {
	reader    *csv.Reader
	inventory GPUWriter
}

func NewCSVImporter(r io.Reader, inventory GPUWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, inventory: inventory}
}

// Run parses CSV rows and adds each GPU, returning the number imported.
func (i *CSVImporter) Run() (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"name", "price_cents", "stock"} {
		if _, ok := index[required]; !ok {
			return 0, fmt.Errorf("missing column %q", required)
		}
	}

	imported := 0
	for {
		row, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		gpu, err := rowToGPU(index, row)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+2, err)
		}
		if err := i.inventory.Add(gpu); err != nil {
			return imported, fmt.Errorf("add %s: %w", gpu.Name, err)
		}
		imported++
	}
	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func rowToGPU(index map[string]int, row []string) (domain.GPU, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	name := field("name")
	if name == "" {
		return domain.GPU{}, errors.New("name required")
	}
	priceCents, err := strconv.ParseInt(field("price_cents"), 10, 64)
	if err != nil || priceCents < 0 {
		return domain.GPU{}, fmt.Errorf("invalid price_cents %q", field("price_cents"))
	}
	stock, err := strconv.Atoi(field("stock"))
	if err != nil || stock < 0 {
		return domain.GPU{}, fmt.Errorf("invalid stock %q", field("stock"))
	}

	id := field("id")
	if id == "" {
		id = ident.New("gpu")
	}

	return domain.GPU{
		ID:           id,
		Name:         name,
		Manufacturer: field("manufacturer"),
		Model:        field("model"),
		Memory:       field("memory"),
		PriceCents:   priceCents,
		Stock:        stock,
		Image:        field("image"),
	}, nil
}
