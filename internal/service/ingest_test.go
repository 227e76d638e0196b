package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

func buildXLSX(t *testing.T, cells map[string]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, value))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestIngestService_Ingest_RegistersAndIndexes(t *testing.T) {
	index := NewChunkIndex()
	registry := NewDocumentRegistry()
	svc := NewIngestService(index, registry, NewHashEmbedder())

	content := buildXLSX(t, map[string]interface{}{
		"A1": "Revenue",
		"B1": 100,
		"A2": "EBITDA",
		"B2": 25,
	})

	doc, err := svc.Ingest(context.Background(), "financials.xlsx", content)

	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "financials.xlsx", doc.Filename)
	assert.Equal(t, 1, doc.Pages)
	assert.Equal(t, doc.Chunks, index.Count(doc.ID))
	assert.True(t, registry.Exists(doc.ID))

	chunks, err := index.TopK(context.Background(), doc.ID, "", 5, NewHashEmbedder())
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	assert.Contains(t, chunks[0].Text, "Revenue")
	assert.Equal(t, 1, chunks[0].Page)
}

func TestIngestService_Ingest_UnsupportedExtension(t *testing.T) {
	index := NewChunkIndex()
	registry := NewDocumentRegistry()
	svc := NewIngestService(index, registry, NewHashEmbedder())

	doc, err := svc.Ingest(context.Background(), "notes.txt", []byte("plain text"))

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestIngestService_Ingest_DistinctUploadsGetDistinctIDs(t *testing.T) {
	index := NewChunkIndex()
	registry := NewDocumentRegistry()
	svc := NewIngestService(index, registry, NewHashEmbedder())

	content := buildXLSX(t, map[string]interface{}{"A1": "Pipeline coverage 3.2x"})

	first, err := svc.Ingest(context.Background(), "deck.xlsx", content)
	require.NoError(t, err)
	second, err := svc.Ingest(context.Background(), "deck.xlsx", content)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, registry.Exists(first.ID))
	assert.True(t, registry.Exists(second.ID))
}
