package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/langradar/langradar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subjectsResult() schema.SubjectsResult {
	return schema.SubjectsResult{Subjects: schema.Subjects, Scale: schema.DefaultScale()}
}

func TestWriteSubjectResultsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSubjectResults(&buf, subjectsResult(), testConfig(schema.TextOut)))

	output := buf.String()
	assert.Contains(t, output, defaultSortLabel)
	assert.Contains(t, output, "En Kolay Öğrenme")
	assert.Contains(t, output, "devspeed")
	assert.Contains(t, output, "highest first")
	assert.Contains(t, output, "Scale: 0-10 on 6 axes\n")
}

func TestWriteSubjectResultsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSubjectResults(&buf, subjectsResult(), testConfig(schema.CSVOut)))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, []string{"Performans", "performance", "En Yüksek Performans", "true", "Runtime performance", "0", "10"}, records[1])
}

func TestWriteSubjectResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSubjectResults(&buf, subjectsResult(), testConfig(schema.JSONOut)))

	var decoded schema.SubjectsResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, subjectsResult(), decoded)
}

func TestWriteSubjectResultsUnsupported(t *testing.T) {
	for _, mode := range []schema.OutputMode{schema.ParquetOut, schema.SVGOut} {
		err := WriteSubjectResults(&bytes.Buffer{}, subjectsResult(), testConfig(mode))
		assert.Error(t, err, string(mode))
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "highest first", direction(true))
	assert.Equal(t, "lowest first", direction(false))
}
