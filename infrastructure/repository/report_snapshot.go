package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/subscription-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/utils"
)

const (
	reportSnapshotsTable  = "report_snapshots rs"
	reportSnapshotColumns = "rs.id, rs.report, rs.period, rs.payload, rs.created_at, rs.updated_at"
)

type ReportSnapshotRepository interface {
	GetByReportAndPeriod(ctx context.Context, report, period string) (*domain.ReportSnapshot, error)
	ListByReport(ctx context.Context, report string) ([]*domain.ReportSnapshot, error)
	SaveOrUpdate(ctx context.Context, snapshot *domain.ReportSnapshot) error
	GetAllPeriods(ctx context.Context) ([]string, error)
}

type reportSnapshotRepository struct {
	conn *postgres.Connection
}

func NewReportSnapshotRepository(conn *postgres.Connection) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

func (r *reportSnapshotRepository) GetByReportAndPeriod(ctx context.Context, report, period string) (*domain.ReportSnapshot, error) {
	query, args, err := squirrel.
		Select(reportSnapshotColumns).
		From(reportSnapshotsTable).
		Where(squirrel.Eq{"rs.report": report, "rs.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var snapshot domain.ReportSnapshot
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.ID,
		&snapshot.Report,
		&snapshot.Period,
		&snapshot.Payload,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return &snapshot, nil
}

// ListByReport retorna os snapshots de um relatório ordenados por período
func (r *reportSnapshotRepository) ListByReport(ctx context.Context, report string) ([]*domain.ReportSnapshot, error) {
	query, args, err := squirrel.
		Select(reportSnapshotColumns).
		From(reportSnapshotsTable).
		Where(squirrel.Eq{"rs.report": report}).
		OrderBy("rs.period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.ReportSnapshot, 0)
	for rows.Next() {
		var snapshot domain.ReportSnapshot
		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.Report,
			&snapshot.Period,
			&snapshot.Payload,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, &snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *reportSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.ReportSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	query, args, err := squirrel.
		Insert("report_snapshots").
		Columns("id", "report", "period", "payload").
		Values(snapshot.ID, snapshot.Report, snapshot.Period, []byte(snapshot.Payload)).
		Suffix(`
			ON CONFLICT (report, period) DO UPDATE SET
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	return nil
}

func (r *reportSnapshotRepository) GetAllPeriods(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT period").
		From("report_snapshots").
		OrderBy("period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}
