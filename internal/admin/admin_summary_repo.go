package admin

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=admin_summary_repo.go -destination=mock/admin_summary_repo_mock.go -package=mock

// SummaryRepository reads the dashboard snapshot. All counters and recent
// lists come from one read-only transaction so the numbers are consistent
// with each other.
type SummaryRepository interface {
	Counts(ctx context.Context) (*SummaryCounts, error)
	Activity(ctx context.Context) (*SummaryActivity, error)
	Snapshot(ctx context.Context) (*SummaryResponse, error)
}

type summaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

const recentLimit = 8

func (r *summaryRepository) Snapshot(ctx context.Context) (*SummaryResponse, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	counts, err := loadCounts(ctx, tx)
	if err != nil {
		return nil, err
	}
	activity, err := loadActivity(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &SummaryResponse{Contadores: *counts, SummaryActivity: *activity}, nil
}

func (r *summaryRepository) Counts(ctx context.Context) (*SummaryCounts, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	counts, err := loadCounts(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *summaryRepository) Activity(ctx context.Context) (*SummaryActivity, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	activity, err := loadActivity(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return activity, nil
}

func loadCounts(ctx context.Context, tx *sql.Tx) (*SummaryCounts, error) {
	var c SummaryCounts

	queries := []struct {
		dest  *int64
		query string
	}{
		{&c.TotalUsuarios, `SELECT COUNT(*) FROM users`},
		{&c.TotalCandidatos, `SELECT COUNT(*) FROM users WHERE role = 'CANDIDATO'`},
		{&c.TotalEmpresas, `SELECT COUNT(*) FROM users WHERE role = 'EMPRESA'`},
		{&c.VagasAtivas, `SELECT COUNT(*) FROM jobs WHERE status = 'ATIVA'`},
		{&c.VagasPendentes, `SELECT COUNT(*) FROM jobs WHERE status = 'PENDENTE_APROVACAO'`},
		{&c.VagasReprovadas, `SELECT COUNT(*) FROM jobs WHERE status = 'REPROVADA'`},
		{&c.TotalVagas, `SELECT COUNT(*) FROM jobs`},
		{&c.AlugueisAtivos, `SELECT COUNT(*) FROM rentals WHERE status = 'ATIVO'`},
		{&c.AlugueisPendentes, `SELECT COUNT(*) FROM rentals WHERE status = 'PENDENTE_APROVACAO'`},
		{&c.TotalAlugueis, `SELECT COUNT(*) FROM rentals`},
		{&c.TotalCandidaturas, `SELECT COUNT(*) FROM applications`},
		{&c.CandidaturasEmAnalise, `SELECT COUNT(*) FROM applications WHERE status = 'EM_ANALISE'`},
		{&c.TotalMensagens, `SELECT COUNT(*) FROM contact_messages`},
		{&c.NovosUsuarios7d, `SELECT COUNT(*) FROM users WHERE created_at >= NOW() - INTERVAL '7 days'`},
	}

	for _, q := range queries {
		if err := tx.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func loadActivity(ctx context.Context, tx *sql.Tx) (*SummaryActivity, error) {
	a := SummaryActivity{
		UsuariosRecentes:     []RecentUser{},
		VagasRecentes:        []RecentJob{},
		CandidaturasRecentes: []RecentApplication{},
	}

	rows, err := tx.QueryContext(ctx, `
SELECT id::text, nome, email, role, created_at
FROM users
ORDER BY created_at DESC
LIMIT $1
`, recentLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var u RecentUser
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		a.UsuariosRecentes = append(a.UsuariosRecentes, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = tx.QueryContext(ctx, `
SELECT j.id::text, j.titulo, j.status, COALESCE(cp.nome_empresa, ''), j.created_at
FROM jobs j
LEFT JOIN company_profiles cp ON cp.id = j.company_id
ORDER BY j.created_at DESC
LIMIT $1
`, recentLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var j RecentJob
		if err := rows.Scan(&j.ID, &j.Titulo, &j.Status, &j.Empresa, &j.CreatedAt); err != nil {
			return nil, err
		}
		a.VagasRecentes = append(a.VagasRecentes, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = tx.QueryContext(ctx, `
SELECT a.id::text, COALESCE(u.nome, ''), COALESCE(j.titulo, ''), a.status, a.created_at
FROM applications a
LEFT JOIN candidate_profiles cand ON cand.id = a.candidate_id
LEFT JOIN users u ON u.id = cand.user_id
LEFT JOIN jobs j ON j.id = a.job_id
ORDER BY a.created_at DESC
LIMIT $1
`, recentLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var app RecentApplication
		if err := rows.Scan(&app.ID, &app.Candidato, &app.Vaga, &app.Status, &app.CreatedAt); err != nil {
			return nil, err
		}
		a.CandidaturasRecentes = append(a.CandidaturasRecentes, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &a, nil
}
