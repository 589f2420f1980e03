package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/database/postgres"
	"github.com/vfg2006/cogs-reconciler-api/internal/domain"
)

const runsTable = "reconciliation_runs"

// RunRepository guarda o histórico de execuções do job, uma linha por
// execução, com o desfecho e os números dos lançamentos criados.
type RunRepository interface {
	Save(summary *domain.RunSummary) error
	LastRun() (*domain.RunSummary, error)
}

type runRepository struct {
	conn postgres.Queryer
}

func NewRunRepository(conn postgres.Queryer) RunRepository {
	return &runRepository{
		conn: conn,
	}
}

func (r *runRepository) Save(summary *domain.RunSummary) error {
	query, args, err := squirrel.
		Insert(runsTable).
		Columns("run_id", "started_at", "finished_at", "status", "journal_docs", "total_amount").
		Values(
			summary.RunID,
			summary.StartedAt,
			summary.FinishedAt,
			string(summary.Status),
			pq.Array(summary.JournalDocs),
			summary.TotalAmount,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao gravar histórico da execução")
	}

	return nil
}

func (r *runRepository) LastRun() (*domain.RunSummary, error) {
	query, args, err := squirrel.
		Select("run_id", "started_at", "finished_at", "status", "journal_docs", "total_amount").
		From(runsTable).
		OrderBy("id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	summary := &domain.RunSummary{}
	var status string

	err = r.conn.QueryRow(query, args...).Scan(
		&summary.RunID,
		&summary.StartedAt,
		&summary.FinishedAt,
		&status,
		pq.Array(&summary.JournalDocs),
		&summary.TotalAmount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao ler histórico de execuções")
	}

	summary.Status = domain.RunStatus(status)
	return summary, nil
}
