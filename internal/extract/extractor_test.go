package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF assembles a minimal PDF with one page per entry in texts. The
// xref offsets are computed from the actual body, so the file is
// structurally valid and parseable.
func buildPDF(t *testing.T, texts []string) []byte {
	t.Helper()

	var body bytes.Buffer
	var offsets []int
	writeObj := func(content string) {
		offsets = append(offsets, body.Len())
		body.WriteString(content)
	}

	body.WriteString("%PDF-1.4\n")

	n := len(texts)
	fontNum := 3 + 2*n

	kids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), n))

	for i, text := range texts {
		pageNum := 3 + 2*i
		contentNum := pageNum + 1
		writeObj(fmt.Sprintf(
			"%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			pageNum, fontNum, contentNum))

		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentNum, len(stream), stream))
	}

	writeObj(fmt.Sprintf(
		"%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n",
		fontNum))

	xrefOffset := body.Len()
	size := fontNum + 1
	body.WriteString(fmt.Sprintf("xref\n0 %d\n", size))
	body.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		body.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	body.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		size, xrefOffset))

	return body.Bytes()
}

func TestPDFExtractor_Extract(t *testing.T) {
	ctx := context.Background()
	ex := NewPDFExtractor()

	t.Run("joins page texts in page order", func(t *testing.T) {
		raw := buildPDF(t, []string{"Project X", "Goals", "Budget"})

		res, err := ex.Extract(ctx, bytes.NewReader(raw), int64(len(raw)))
		require.NoError(t, err)
		assert.Equal(t, "Project X\nGoals\nBudget", res.Text)
		assert.Equal(t, 3, res.PageCount)
		assert.Equal(t, 0, res.PagesSkipped)
	})

	t.Run("single page", func(t *testing.T) {
		raw := buildPDF(t, []string{"Only page"})

		res, err := ex.Extract(ctx, bytes.NewReader(raw), int64(len(raw)))
		require.NoError(t, err)
		assert.Equal(t, "Only page", res.Text)
		assert.Equal(t, 1, res.PageCount)
	})

	t.Run("skips empty pages without separator buildup", func(t *testing.T) {
		raw := buildPDF(t, []string{"First", "", "Last"})

		res, err := ex.Extract(ctx, bytes.NewReader(raw), int64(len(raw)))
		require.NoError(t, err)
		assert.Equal(t, "First\nLast", res.Text)
		assert.Equal(t, 3, res.PageCount)
		assert.Equal(t, 1, res.PagesSkipped)
	})

	t.Run("document with no extractable text is not an error", func(t *testing.T) {
		raw := buildPDF(t, []string{"", ""})

		res, err := ex.Extract(ctx, bytes.NewReader(raw), int64(len(raw)))
		require.NoError(t, err)
		assert.Equal(t, "", res.Text)
		assert.Equal(t, 2, res.PageCount)
		assert.Equal(t, 2, res.PagesSkipped)
	})

	t.Run("not a pdf", func(t *testing.T) {
		raw := []byte("plain text, definitely not a pdf")

		res, err := ex.Extract(ctx, bytes.NewReader(raw), int64(len(raw)))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrDocumentParse)
	})

	t.Run("truncated pdf", func(t *testing.T) {
		raw := buildPDF(t, []string{"Hello"})
		raw = raw[:len(raw)/3]

		res, err := ex.Extract(ctx, bytes.NewReader(raw), int64(len(raw)))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrDocumentParse)
	})

	t.Run("nil reader", func(t *testing.T) {
		res, err := ex.Extract(ctx, nil, 0)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrDocumentParse)
	})

	t.Run("cancelled context stops page walk", func(t *testing.T) {
		raw := buildPDF(t, []string{"Hello"})
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		res, err := ex.Extract(cctx, bytes.NewReader(raw), int64(len(raw)))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
