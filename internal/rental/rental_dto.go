package rental

import (
	"time"

	"github.com/gabrieldacena/emprega-sapezal/internal/job"
)

const (
	defaultPublicLimit = 12
	maxPublicLimit     = 50
)

type CreateRentalRequest struct {
	Titulo       string   `json:"titulo" binding:"required,min=3,max=200"`
	TipoImovel   string   `json:"tipoImovel" binding:"required,oneof=CASA APARTAMENTO SALA_COMERCIAL KITNET TERRENO CHACARA OUTRO"`
	ValorAluguel float64  `json:"valorAluguel" binding:"required,gt=0"`
	Cidade       string   `json:"cidade" binding:"required,min=2"`
	Estado       string   `json:"estado" binding:"required,len=2"`
	Descricao    string   `json:"descricao" binding:"required,min=10"`
	Imagens      []string `json:"imagens" binding:"omitempty,dive,url"`
}

type UpdateRentalRequest struct {
	Titulo       *string  `json:"titulo" binding:"omitempty,min=3,max=200"`
	TipoImovel   *string  `json:"tipoImovel" binding:"omitempty,oneof=CASA APARTAMENTO SALA_COMERCIAL KITNET TERRENO CHACARA OUTRO"`
	ValorAluguel *float64 `json:"valorAluguel" binding:"omitempty,gt=0"`
	Cidade       *string  `json:"cidade" binding:"omitempty,min=2"`
	Estado       *string  `json:"estado" binding:"omitempty,len=2"`
	Descricao    *string  `json:"descricao" binding:"omitempty,min=10"`
	Imagens      []string `json:"imagens" binding:"omitempty,dive,url"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ContactMessageRequest struct {
	Nome     string `json:"nome" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Telefone string `json:"telefone"`
	Mensagem string `json:"mensagem" binding:"required,min=5"`
}

type PublicFilters struct {
	Cidade     string   `form:"cidade"`
	Estado     string   `form:"estado"`
	TipoImovel string   `form:"tipoImovel"`
	ValorMin   *float64 `form:"valorMin"`
	ValorMax   *float64 `form:"valorMax"`
	Busca      string   `form:"busca"`
	Page       int      `form:"page"`
	Limit      int      `form:"limit"`
}

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

type ImageResponse struct {
	ID    string `json:"id"`
	Url   string `json:"url"`
	Ordem int    `json:"ordem"`
}

type RentalResponse struct {
	ID           string              `json:"id"`
	Titulo       string              `json:"titulo"`
	TipoImovel   string              `json:"tipoImovel"`
	ValorAluguel float64             `json:"valorAluguel"`
	Cidade       string              `json:"cidade"`
	Estado       string              `json:"estado"`
	Descricao    string              `json:"descricao"`
	Status       string              `json:"status"`
	Destaque     bool                `json:"destaque"`
	CreatedAt    time.Time           `json:"createdAt"`
	Imagens      []ImageResponse     `json:"imagens"`
	Company      *job.CompanySummary `json:"company,omitempty"`
}

type ContactMessageResponse struct {
	ID        string    `json:"id"`
	RentalID  string    `json:"rentalId,omitempty"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone,omitempty"`
	Mensagem  string    `json:"mensagem"`
	CreatedAt time.Time `json:"createdAt"`
}

func MapToResponse(r Rental) RentalResponse {
	resp := RentalResponse{
		ID:           r.ID.String(),
		Titulo:       r.Titulo,
		TipoImovel:   r.TipoImovel,
		ValorAluguel: r.ValorAluguel,
		Cidade:       r.Cidade,
		Estado:       r.Estado,
		Descricao:    r.Descricao,
		Status:       string(r.Status),
		Destaque:     r.Destaque,
		CreatedAt:    r.CreatedAt,
		Imagens:      make([]ImageResponse, len(r.Imagens)),
	}
	for i, img := range r.Imagens {
		resp.Imagens[i] = ImageResponse{ID: img.ID.String(), Url: img.Url, Ordem: img.Ordem}
	}
	if r.Company != nil {
		resp.Company = &job.CompanySummary{
			ID:          r.Company.ID.String(),
			NomeEmpresa: r.Company.NomeEmpresa,
			AreaAtuacao: r.Company.AreaAtuacao,
			Descricao:   r.Company.Descricao,
			Site:        r.Company.Site,
			LogoUrl:     r.Company.LogoUrl,
		}
	}
	return resp
}

func MapToListResponse(rentals []Rental) []RentalResponse {
	res := make([]RentalResponse, len(rentals))
	for i, r := range rentals {
		res[i] = MapToResponse(r)
	}
	return res
}

func MapContactToResponse(m ContactMessage) ContactMessageResponse {
	resp := ContactMessageResponse{
		ID:        m.ID.String(),
		Nome:      m.Nome,
		Email:     m.Email,
		Telefone:  m.Telefone,
		Mensagem:  m.Mensagem,
		CreatedAt: m.CreatedAt,
	}
	if m.RentalID != nil {
		resp.RentalID = m.RentalID.String()
	}
	return resp
}
