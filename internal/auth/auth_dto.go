package auth

import "github.com/gabrieldacena/emprega-sapezal/internal/user"

type RegisterCandidateRequest struct {
	Nome     string `json:"nome" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Senha    string `json:"senha" binding:"required,min=6"`
	Cidade   string `json:"cidade"`
	Estado   string `json:"estado" binding:"omitempty,len=2"`
	Telefone string `json:"telefone"`
}

type RegisterCompanyRequest struct {
	Nome        string `json:"nome" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Senha       string `json:"senha" binding:"required,min=6"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado" binding:"omitempty,len=2"`
	Telefone    string `json:"telefone"`
	NomeEmpresa string `json:"nomeEmpresa" binding:"required,min=2"`
	Cnpj        string `json:"cnpj"`
	AreaAtuacao string `json:"areaAtuacao"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type SessionResponse struct {
	User  user.UserResponse `json:"user"`
	Token string            `json:"token"`
}
