package database

import (
	"strconv"
	"strings"

	"github.com/doug-martin/goqu/v9"
)

// formatVector renders an embedding as the pgvector text literal
// "[f1,f2,...]".
func formatVector(v []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(f), 'f', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}

// embeddingValue converts an embedding into an insert/update value; an
// empty embedding stores NULL so the row drops out of similarity search.
func embeddingValue(v []float32) interface{} {
	if len(v) == 0 {
		return nil
	}
	return goqu.L("?::vector", formatVector(v))
}
