package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/subscription-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &postgres.Connection{DB: db}, mock
}

var transactionRowColumns = []string{"id", "subscription_id", "customer_id", "status", "billed_at", "earnings", "total", "currency_code", "created_at", "updated_at"}

func TestTransactionRepository_ListTransactions(t *testing.T) {
	billed := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	created := billed.Add(-time.Hour)

	t.Run("filtra por status e assinatura e converte valores", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewTransactionRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("FROM transactions t WHERE t.status = ANY($1) AND t.subscription_id IS NOT NULL ORDER BY t.billed_at ASC NULLS FIRST, t.id ASC")).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(transactionRowColumns).
				AddRow("txn_1", "sub_1", "ctm_1", "paid", billed, "1900", "1990", "USD", created, created).
				AddRow("txn_2", "sub_1", "ctm_1", "paid", nil, "abc", nil, "", created, created))

		txns, err := repo.ListTransactions(context.Background(), &domain.TransactionFilter{
			Statuses:             []domain.TransactionStatus{domain.TransactionStatusPaid},
			OnlyWithSubscription: true,
		})

		require.NoError(t, err)
		require.Len(t, txns, 2)

		assert.Equal(t, "sub_1", *txns[0].SubscriptionID)
		assert.Equal(t, domain.TransactionStatusPaid, txns[0].Status)
		assert.Equal(t, billed, *txns[0].BilledAt)
		assert.Equal(t, int64(1900), *txns[0].Earnings)
		assert.Equal(t, int64(1990), *txns[0].Total)

		assert.Nil(t, txns[1].BilledAt)
		assert.Nil(t, txns[1].Earnings, "valor malformado vira ausente")
		assert.Nil(t, txns[1].Total)
		assert.Empty(t, txns[1].CurrencyCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("erro do banco", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewTransactionRepository(conn)

		mock.ExpectQuery("FROM transactions t").WillReturnError(errors.New("conexão perdida"))

		txns, err := repo.ListTransactions(context.Background(), nil)

		assert.Nil(t, txns)
		assert.ErrorContains(t, err, "conexão perdida")
	})
}

func TestTransactionRepository_SaveOrUpdate(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTransactionRepository(conn)

	total := int64(1990)
	subID := "sub_1"
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions (id,subscription_id,customer_id,status,billed_at,earnings,total,currency_code,updated_at)")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.SaveOrUpdate(context.Background(), []*domain.Transaction{
		{ID: "txn_1", SubscriptionID: &subID, CustomerID: "ctm_1", Status: domain.TransactionStatusPaid, Total: &total},
		{ID: "txn_2", CustomerID: "ctm_2", Status: domain.TransactionStatusBilled},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.NoError(t, repo.SaveOrUpdate(context.Background(), nil), "lista vazia não executa nada")
}

func TestSubscriptionRepository_ListSubscriptions(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSubscriptionRepository(conn)

	started := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "customer_id", "status", "started_at", "canceled_at", "billing_interval", "billing_frequency",
		"price_id", "glt_key", "group_id", "number", "name", "level", "tier", "created_at", "updated_at"}

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN plan_groups pg ON pg.id = s.group_id WHERE s.group_id = $1 AND s.level = $2")).
		WithArgs("grp_1", 2).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("sub_1", "ctm_1", "active", started, nil, "month", 1, "pri_1", "", "grp_1", 1, "Essencial", 2, "T1", started, started))

	group, level := "grp_1", 2
	subs, err := repo.ListSubscriptions(context.Background(), &domain.SubscriptionFilter{GroupID: &group, Level: &level})

	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, started, *subs[0].StartedAt)
	assert.Nil(t, subs[0].CanceledAt)
	assert.Equal(t, "Essencial", subs[0].Plan.GroupName)
	assert.Equal(t, "G1-L2-T1", subs[0].Plan.Key())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportSnapshotRepository(t *testing.T) {
	created := time.Date(2024, 5, 1, 5, 0, 0, 0, time.UTC)
	columns := []string{"id", "report", "period", "payload", "created_at", "updated_at"}

	t.Run("snapshot inexistente", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewReportSnapshotRepository(conn)

		mock.ExpectQuery("FROM report_snapshots rs").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(sql.ErrNoRows)

		snapshot, err := repo.GetByReportAndPeriod(context.Background(), domain.ReportRevenueTrend, "2024-04")

		assert.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("lista por relatório", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewReportSnapshotRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE rs.report = $1 ORDER BY rs.period ASC")).
			WithArgs(domain.ReportCustomerChurn).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("snp_1", domain.ReportCustomerChurn, "2024-03", []byte(`[]`), created, created).
				AddRow("snp_2", domain.ReportCustomerChurn, "2024-04", []byte(`[{"churn_rate_percent":5}]`), created, created))

		snapshots, err := repo.ListByReport(context.Background(), domain.ReportCustomerChurn)

		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.Equal(t, "2024-04", snapshots[1].Period)
		assert.JSONEq(t, `[{"churn_rate_percent":5}]`, string(snapshots[1].Payload))
	})

	t.Run("gera id ao salvar", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewReportSnapshotRepository(conn)

		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (report, period) DO UPDATE")).
			WithArgs(sqlmock.AnyArg(), domain.ReportRevenueTrend, "2024-04", []byte(`[]`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		snapshot := &domain.ReportSnapshot{Report: domain.ReportRevenueTrend, Period: "2024-04", Payload: []byte(`[]`)}
		require.NoError(t, repo.SaveOrUpdate(context.Background(), snapshot))

		assert.Len(t, snapshot.ID, 12)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("períodos distintos", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewReportSnapshotRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT period FROM report_snapshots ORDER BY period ASC")).
			WillReturnRows(sqlmock.NewRows([]string{"period"}).AddRow("2024-03").AddRow("2024-04"))

		periods, err := repo.GetAllPeriods(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"2024-03", "2024-04"}, periods)
	})
}

func TestUserRepository(t *testing.T) {
	t.Run("usuário não encontrado", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewUserRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("ninguem@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByEmail(context.Background(), "ninguem@example.com")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("cria usuário e devolve o id", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewUserRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name,lastname,email,password_hash,active,role_id) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id")).
			WithArgs("Ana", "Lima", "ana@example.com", "hash", true, domain.RoleAnalyst).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		user, err := repo.CreateUser(context.Background(), &domain.User{
			Name: "Ana", Lastname: "Lima", Email: "ana@example.com", PasswordHash: "hash", Active: true, RoleID: domain.RoleAnalyst,
		})

		require.NoError(t, err)
		assert.Equal(t, 42, user.ID)
	})
}

func TestCustomerRepository_CountCustomers(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewCustomerRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM customers")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(24))

	count, err := repo.CountCustomers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 24, count)
}

func TestChunk(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunk(items, 2))
	assert.Empty(t, chunk([]int{}, 2))
}
