package job

import "time"

const (
	defaultPublicLimit = 12
	maxPublicLimit     = 50
)

type CreateJobRequest struct {
	Titulo         string `json:"titulo" binding:"required,min=3,max=200"`
	Descricao      string `json:"descricao" binding:"required,min=10"`
	Requisitos     string `json:"requisitos"`
	Beneficios     string `json:"beneficios"`
	TipoContrato   string `json:"tipoContrato" binding:"required,oneof=CLT PJ ESTAGIO TEMPORARIO FREELANCER"`
	FaixaSalarial  string `json:"faixaSalarial"`
	ModeloTrabalho string `json:"modeloTrabalho" binding:"required,oneof=PRESENCIAL HIBRIDO REMOTO"`
	Cidade         string `json:"cidade" binding:"required,min=2"`
	Estado         string `json:"estado" binding:"required,len=2"`
}

type UpdateJobRequest struct {
	Titulo         *string `json:"titulo" binding:"omitempty,min=3,max=200"`
	Descricao      *string `json:"descricao" binding:"omitempty,min=10"`
	Requisitos     *string `json:"requisitos"`
	Beneficios     *string `json:"beneficios"`
	TipoContrato   *string `json:"tipoContrato" binding:"omitempty,oneof=CLT PJ ESTAGIO TEMPORARIO FREELANCER"`
	FaixaSalarial  *string `json:"faixaSalarial"`
	ModeloTrabalho *string `json:"modeloTrabalho" binding:"omitempty,oneof=PRESENCIAL HIBRIDO REMOTO"`
	Cidade         *string `json:"cidade" binding:"omitempty,min=2"`
	Estado         *string `json:"estado" binding:"omitempty,len=2"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PublicFilters are conjunctive; Busca is an OR over titulo/descricao.
type PublicFilters struct {
	Cidade         string `form:"cidade"`
	Estado         string `form:"estado"`
	ModeloTrabalho string `form:"modeloTrabalho"`
	TipoContrato   string `form:"tipoContrato"`
	Busca          string `form:"busca"`
	Page           int    `form:"page"`
	Limit          int    `form:"limit"`
}

// Normalize clamps pagination: 1-indexed page, public limit capped at 50.
func (f *PublicFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPublicLimit
	}
	if f.Limit > maxPublicLimit {
		f.Limit = maxPublicLimit
	}
}

type CompanySummary struct {
	ID          string `json:"id,omitempty"`
	NomeEmpresa string `json:"nomeEmpresa"`
	AreaAtuacao string `json:"areaAtuacao,omitempty"`
	Descricao   string `json:"descricao,omitempty"`
	Site        string `json:"site,omitempty"`
	LogoUrl     string `json:"logoUrl,omitempty"`
}

type JobResponse struct {
	ID             string          `json:"id"`
	Titulo         string          `json:"titulo"`
	Descricao      string          `json:"descricao"`
	Requisitos     string          `json:"requisitos,omitempty"`
	Beneficios     string          `json:"beneficios,omitempty"`
	TipoContrato   string          `json:"tipoContrato"`
	FaixaSalarial  string          `json:"faixaSalarial,omitempty"`
	ModeloTrabalho string          `json:"modeloTrabalho"`
	Cidade         string          `json:"cidade"`
	Estado         string          `json:"estado"`
	Status         string          `json:"status"`
	Destaque       bool            `json:"destaque"`
	CreatedAt      time.Time       `json:"createdAt"`
	Company        *CompanySummary `json:"company,omitempty"`
	Applications   *int64          `json:"applicationsCount,omitempty"`
}

func MapToResponse(j Job) JobResponse {
	resp := JobResponse{
		ID:             j.ID.String(),
		Titulo:         j.Titulo,
		Descricao:      j.Descricao,
		Requisitos:     j.Requisitos,
		Beneficios:     j.Beneficios,
		TipoContrato:   j.TipoContrato,
		FaixaSalarial:  j.FaixaSalarial,
		ModeloTrabalho: j.ModeloTrabalho,
		Cidade:         j.Cidade,
		Estado:         j.Estado,
		Status:         string(j.Status),
		Destaque:       j.Destaque,
		CreatedAt:      j.CreatedAt,
	}
	if j.Company != nil {
		resp.Company = &CompanySummary{
			ID:          j.Company.ID.String(),
			NomeEmpresa: j.Company.NomeEmpresa,
			AreaAtuacao: j.Company.AreaAtuacao,
			Descricao:   j.Company.Descricao,
			Site:        j.Company.Site,
			LogoUrl:     j.Company.LogoUrl,
		}
	}
	return resp
}

func MapToListResponse(jobs []Job) []JobResponse {
	res := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		res[i] = MapToResponse(j)
	}
	return res
}
