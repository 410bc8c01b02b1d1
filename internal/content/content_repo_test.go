package content

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newRepoTestDB(t *testing.T) (Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return NewRepository(gdb), mock, db
}

func newsRow(id uuid.UUID, titulo string, destaque bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "titulo", "conteudo", "imagem_url", "destaque_principal", "ativo", "created_at", "updated_at",
	}).AddRow(id, titulo, "Conteúdo da notícia.", "", destaque, true, now, now)
}

func expectSetHeadline(mock sqlmock.Sqlmock, id uuid.UUID, titulo string, cleared int64) {
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "news_articles" WHERE id = \$1 ORDER BY "news_articles"\."id" LIMIT \$2`).
		WithArgs(id, 1).
		WillReturnRows(newsRow(id, titulo, false))
	mock.ExpectExec(`UPDATE "news_articles" SET "destaque_principal"=\$1,"updated_at"=\$2 WHERE destaque_principal = \$3`).
		WithArgs(false, sqlmock.AnyArg(), true).
		WillReturnResult(sqlmock.NewResult(0, cleared))
	mock.ExpectExec(`UPDATE "news_articles" SET "titulo"=\$1,"conteudo"=\$2,"imagem_url"=\$3,"destaque_principal"=\$4,"ativo"=\$5,"created_at"=\$6,"updated_at"=\$7 WHERE "id" = \$8`).
		WithArgs(titulo, "Conteúdo da notícia.", "", true, true, sqlmock.AnyArg(), sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestRepository_SetHeadline_ClearsPreviousBeforePromoting(t *testing.T) {
	repo, mock, db := newRepoTestDB(t)
	defer db.Close()

	id := uuid.New()
	expectSetHeadline(mock, id, "Nova obra no centro", 1)

	article, err := repo.SetHeadline(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, article.DestaquePrincipal)
	assert.Equal(t, "Nova obra no centro", article.Titulo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetHeadline_Idempotent(t *testing.T) {
	repo, mock, db := newRepoTestDB(t)
	defer db.Close()

	id := uuid.New()
	// First call clears the previous headline; the repeat clears the row it
	// just promoted and promotes it again, so exactly one headline remains.
	expectSetHeadline(mock, id, "Festival de inverno", 1)
	expectSetHeadline(mock, id, "Festival de inverno", 1)

	first, err := repo.SetHeadline(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, first.DestaquePrincipal)

	second, err := repo.SetHeadline(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, second.DestaquePrincipal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetHeadline_UnknownArticleRollsBack(t *testing.T) {
	repo, mock, db := newRepoTestDB(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "news_articles" WHERE id = \$1 ORDER BY "news_articles"\."id" LIMIT \$2`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	article, err := repo.SetHeadline(context.Background(), id)
	assert.Nil(t, article)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
