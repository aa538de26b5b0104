package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
)

func TestTransactionLookup(t *testing.T) {
	failed := paidTxn(t, "txn_failed", "sub_1", "ctm_1", "2024-02-10T00:00:00Z", 5000)
	failed.Status = domain.TransactionStatusFailed

	oneOff := paidTxn(t, "txn_oneoff", "", "ctm_1", "2024-01-20T00:00:00Z", 300)

	lookup := NewTransactionLookup([]*domain.Transaction{
		paidTxn(t, "txn_mar", "sub_1", "ctm_1", "2024-03-15T00:00:00Z", 1000),
		paidTxn(t, "txn_jan", "sub_1", "ctm_1", "2024-01-15T00:00:00Z", 999),
		failed,
		oneOff,
		paidTxn(t, "txn_other", "sub_2", "ctm_2", "2024-02-01T00:00:00Z", 700),
	})

	t.Run("mais recente até o instante", func(t *testing.T) {
		txn := lookup.LatestPaid("sub_1", *ts(t, "2024-03-01T00:00:00Z"))
		require.NotNil(t, txn)
		assert.Equal(t, "txn_jan", txn.ID)
	})

	t.Run("instante igual ao billed_at é incluído", func(t *testing.T) {
		txn := lookup.LatestPaid("sub_1", *ts(t, "2024-03-15T00:00:00Z"))
		require.NotNil(t, txn)
		assert.Equal(t, "txn_mar", txn.ID)
	})

	t.Run("nenhuma transação anterior", func(t *testing.T) {
		assert.Nil(t, lookup.LatestPaid("sub_1", *ts(t, "2024-01-01T00:00:00Z")))
	})

	t.Run("primeira a partir do instante", func(t *testing.T) {
		txn := lookup.FirstPaid("sub_1", *ts(t, "2024-01-15T00:00:00Z"))
		require.NotNil(t, txn)
		assert.Equal(t, "txn_jan", txn.ID)

		txn = lookup.FirstPaid("sub_1", *ts(t, "2024-01-16T00:00:00Z"))
		require.NotNil(t, txn)
		assert.Equal(t, "txn_mar", txn.ID)
	})

	t.Run("nenhuma transação posterior", func(t *testing.T) {
		assert.Nil(t, lookup.FirstPaid("sub_1", *ts(t, "2024-04-01T00:00:00Z")))
	})

	t.Run("assinatura desconhecida", func(t *testing.T) {
		assert.Nil(t, lookup.LatestPaid("sub_x", *ts(t, "2030-01-01T00:00:00Z")))
		assert.Nil(t, lookup.FirstPaid("sub_x", *ts(t, "2000-01-01T00:00:00Z")))
	})
}
