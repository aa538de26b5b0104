package repository

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/vfg2006/subscription-reports-api/pkg/log"
	"github.com/vfg2006/subscription-reports-api/pkg/utils"
)

// Quantidade máxima de linhas por INSERT em lote
const batchSize = 500

func chunk[T any](items []T, size int) [][]T {
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// minorUnitsText converte um valor em unidades mínimas para o texto armazenado nas colunas monetárias
func minorUnitsText(v *int64) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: strconv.FormatInt(*v, 10), Valid: true}
}

// parseMinorUnits interpreta uma coluna monetária armazenada como texto.
// Valores malformados viram nil e geram um aviso, nunca um erro.
func parseMinorUnits(ctx context.Context, raw sql.NullString, field, recordID string) *int64 {
	value, err := utils.ParseOptionalMinorUnits(nullStringPtr(raw))
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"field":  field,
			"record": recordID,
			"value":  raw.String,
		}).Warn("Valor monetário inválido, tratado como ausente")
		return nil
	}
	return value
}
