package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpupos/internal/domain"
)

type collectingWriter struct {
	gpus []domain.GPU
}

func (w *collectingWriter) Add(g domain.GPU) error {
	w.gpus = append(w.gpus, g)
	return nil
}

func TestRunImportsRows(t *testing.T) {
	csv := strings.Join([]string{
		"id,name,manufacturer,model,memory,price_cents,stock,image",
		`7,GeForce RTX 4090,NVIDIA,RTX 4090,24GB GDDR6X,159900,15,/GeForce RTX 4090.png`,
		`,Radeon RX 7800 XT,AMD,RX 7800 XT,16GB GDDR6,64900,25,`,
	}, "\n")

	writer := &collectingWriter{}
	count, err := NewCSVImporter(strings.NewReader(csv), writer).Run()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, writer.gpus, 2)

	first := writer.gpus[0]
	assert.Equal(t, "7", first.ID)
	assert.Equal(t, "GeForce RTX 4090", first.Name)
	assert.Equal(t, "NVIDIA", first.Manufacturer)
	assert.Equal(t, int64(159900), first.PriceCents)
	assert.Equal(t, 15, first.Stock)

	// Empty id column gets a generated one.
	assert.Regexp(t, `^gpu_\d+`, writer.gpus[1].ID)
}

func TestRunRejectsMissingColumns(t *testing.T) {
	csv := "id,name\n1,GeForce RTX 4090"
	_, err := NewCSVImporter(strings.NewReader(csv), &collectingWriter{}).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price_cents")
}

func TestRunRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"negative price", `1,GeForce RTX 4090,NVIDIA,RTX 4090,24GB,-5,10,`},
		{"non-numeric stock", `1,GeForce RTX 4090,NVIDIA,RTX 4090,24GB,159900,many,`},
		{"missing name", `1,,NVIDIA,RTX 4090,24GB,159900,10,`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			csv := "id,name,manufacturer,model,memory,price_cents,stock,image\n" + tc.row
			count, err := NewCSVImporter(strings.NewReader(csv), &collectingWriter{}).Run()
			require.Error(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestRunToleratesShortRows(t *testing.T) {
	csv := "name,price_cents,stock\nGeForce RTX 4060 Ti,49900,40"
	writer := &collectingWriter{}
	count, err := NewCSVImporter(strings.NewReader(csv), writer).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "GeForce RTX 4060 Ti", writer.gpus[0].Name)
	assert.Empty(t, writer.gpus[0].Manufacturer)
}
