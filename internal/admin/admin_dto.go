package admin

import (
	"time"

	"github.com/gabrieldacena/emprega-sapezal/internal/rental"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// PageFilters is the plain page/limit pair used by lists without a search box.
type PageFilters struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (f *PageFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
}

func (f PageFilters) Offset() int {
	return (f.Page - 1) * f.Limit
}

type UserFilters struct {
	Tipo  string `form:"tipo" binding:"omitempty,oneof=CANDIDATO EMPRESA ADMIN"`
	Busca string `form:"busca"`
	PageFilters
}

type ListingFilters struct {
	Status string `form:"status"`
	Busca  string `form:"busca"`
	PageFilters
}

type ModerateRequest struct {
	Action string `json:"action" binding:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Ativo     bool      `json:"ativo"`
	Cidade    string    `json:"cidade,omitempty"`
	Estado    string    `json:"estado,omitempty"`
	Telefone  string    `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func MapUserToResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Nome:      u.Nome,
		Email:     u.Email,
		Role:      string(u.Role),
		Ativo:     u.Ativo,
		Cidade:    u.Cidade,
		Estado:    u.Estado,
		Telefone:  u.Telefone,
		CreatedAt: u.CreatedAt,
	}
}

func MapUsersToResponse(users []user.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = MapUserToResponse(u)
	}
	return res
}

type MessageResponse struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	Telefone    string    `json:"telefone,omitempty"`
	Mensagem    string    `json:"mensagem"`
	ImovelTitle string    `json:"imovelTitulo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func MapMessageToResponse(m rental.ContactMessage) MessageResponse {
	resp := MessageResponse{
		ID:        m.ID.String(),
		Nome:      m.Nome,
		Email:     m.Email,
		Telefone:  m.Telefone,
		Mensagem:  m.Mensagem,
		CreatedAt: m.CreatedAt,
	}
	if m.Rental != nil {
		resp.ImovelTitle = m.Rental.Titulo
	}
	return resp
}

// SummaryCounts mirrors the dashboard counters shown on the admin home.
type SummaryCounts struct {
	TotalUsuarios         int64 `json:"totalUsuarios"`
	TotalCandidatos       int64 `json:"totalCandidatos"`
	TotalEmpresas         int64 `json:"totalEmpresas"`
	VagasAtivas           int64 `json:"vagasAtivas"`
	VagasPendentes        int64 `json:"vagasPendentes"`
	VagasReprovadas       int64 `json:"vagasReprovadas"`
	TotalVagas            int64 `json:"totalVagas"`
	AlugueisAtivos        int64 `json:"alugueisAtivos"`
	AlugueisPendentes     int64 `json:"alugueisPendentes"`
	TotalAlugueis         int64 `json:"totalAlugueis"`
	TotalCandidaturas     int64 `json:"totalCandidaturas"`
	CandidaturasEmAnalise int64 `json:"candidaturasEmAnalise"`
	TotalMensagens        int64 `json:"totalMensagens"`
	NovosUsuarios7d       int64 `json:"novosUsuarios7d"`
}

type RecentUser struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type RecentJob struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Status    string    `json:"status"`
	Empresa   string    `json:"empresa,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type RecentApplication struct {
	ID        string    `json:"id"`
	Candidato string    `json:"candidato,omitempty"`
	Vaga      string    `json:"vaga,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// SummaryActivity groups the recent lists shown beside the counters.
type SummaryActivity struct {
	UsuariosRecentes     []RecentUser        `json:"usuariosRecentes"`
	VagasRecentes        []RecentJob         `json:"vagasRecentes"`
	CandidaturasRecentes []RecentApplication `json:"candidaturasRecentes"`
}

type SummaryResponse struct {
	Contadores SummaryCounts `json:"contadores"`
	SummaryActivity
}
