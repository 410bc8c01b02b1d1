package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gabrieldacena/emprega-sapezal/internal/auth"
	autherrors "github.com/gabrieldacena/emprega-sapezal/internal/auth/errors"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

type fakeUserRepo struct {
	byEmail   map[string]*user.User
	byID      map[uuid.UUID]*user.User
	createErr error
	created   *user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*user.User{},
		byID:    map[uuid.UUID]*user.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = uuid.New()
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	f.created = u
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(context.Context, *user.User) error { return nil }
func (f *fakeUserRepo) UpdateCandidateProfile(context.Context, *user.CandidateProfile) error {
	return nil
}
func (f *fakeUserRepo) UpdateCompanyProfile(context.Context, *user.CompanyProfile) error {
	return nil
}
func (f *fakeUserRepo) FindCandidateProfileByUserID(context.Context, uuid.UUID) (*user.CandidateProfile, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindCompanyProfileByUserID(context.Context, uuid.UUID) (*user.CompanyProfile, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestAuthService_RegisterCandidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("cria conta com perfil de candidato", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := auth.NewService(repo)

		resp, err := svc.RegisterCandidate(ctx, auth.RegisterCandidateRequest{
			Nome:   "Maria Souza",
			Email:  "maria@example.com",
			Senha:  "segredo123",
			Cidade: "Sapezal",
			Estado: "MT",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "CANDIDATO", resp.User.Role)
		assert.NotNil(t, repo.created.CandidateProfile)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.SenhaHash), []byte("segredo123")))
	})

	t.Run("e-mail duplicado mapeia para 409", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "uq_user_email"}
		svc := auth.NewService(repo)

		_, err := svc.RegisterCandidate(ctx, auth.RegisterCandidateRequest{
			Nome:  "Maria Souza",
			Email: "maria@example.com",
			Senha: "segredo123",
		})

		assert.ErrorIs(t, err, autherrors.ErrDuplicateEmail)
	})
}

func TestAuthService_RegisterCompany(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	svc := auth.NewService(repo)

	resp, err := svc.RegisterCompany(context.Background(), auth.RegisterCompanyRequest{
		Nome:        "João Pereira",
		Email:       "contato@boasafra.com.br",
		Senha:       "segredo123",
		NomeEmpresa: "Fazenda Boa Safra",
		Cnpj:        "12.345.678/0001-90",
	})

	assert.NoError(t, err)
	assert.Equal(t, "EMPRESA", resp.User.Role)
	if assert.NotNil(t, repo.created.CompanyProfile) {
		assert.Equal(t, "Fazenda Boa Safra", repo.created.CompanyProfile.NomeEmpresa)
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	seed := func(repo *fakeUserRepo, ativo bool) *user.User {
		hash, _ := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
		u := &user.User{
			ID:        uuid.New(),
			Nome:      "Maria Souza",
			Email:     "maria@example.com",
			SenhaHash: string(hash),
			Role:      user.RoleCandidato,
			Ativo:     ativo,
		}
		repo.byEmail[u.Email] = u
		repo.byID[u.ID] = u
		return u
	}

	t.Run("credenciais válidas", func(t *testing.T) {
		repo := newFakeUserRepo()
		seed(repo, true)
		svc := auth.NewService(repo)

		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "maria@example.com", Senha: "segredo123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		repo := newFakeUserRepo()
		seed(repo, true)
		svc := auth.NewService(repo)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "maria@example.com", Senha: "errada"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("e-mail desconhecido responde igual a senha errada", func(t *testing.T) {
		svc := auth.NewService(newFakeUserRepo())

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "naoexiste@example.com", Senha: "qualquer"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("conta desativada", func(t *testing.T) {
		repo := newFakeUserRepo()
		seed(repo, false)
		svc := auth.NewService(repo)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "maria@example.com", Senha: "segredo123"})

		assert.ErrorIs(t, err, autherrors.ErrAccountDisabled)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	repo := newFakeUserRepo()
	u := &user.User{ID: uuid.New(), Nome: "Maria Souza", Email: "maria@example.com", Role: user.RoleCandidato, Ativo: true}
	repo.byID[u.ID] = u
	svc := auth.NewService(repo)

	t.Run("retorna o perfil do usuário autenticado", func(t *testing.T) {
		resp, err := svc.GetMe(context.Background(), u.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, "maria@example.com", resp.Email)
	})

	t.Run("usuário removido", func(t *testing.T) {
		_, err := svc.GetMe(context.Background(), uuid.New().String())
		assert.Error(t, err)
	})
}
