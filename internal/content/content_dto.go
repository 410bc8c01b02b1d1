package content

import "time"

type CreateAdRequest struct {
	Titulo    string `json:"titulo" binding:"required,min=2,max=200"`
	ImagemUrl string `json:"imagemUrl" binding:"required,url"`
	LinkUrl   string `json:"linkUrl" binding:"omitempty,url"`
	Posicao   string `json:"posicao"`
	Ordem     int    `json:"ordem"`
}

type UpdateAdRequest struct {
	Titulo    *string `json:"titulo" binding:"omitempty,min=2,max=200"`
	ImagemUrl *string `json:"imagemUrl" binding:"omitempty,url"`
	LinkUrl   *string `json:"linkUrl" binding:"omitempty,url"`
	Posicao   *string `json:"posicao"`
	Ativo     *bool   `json:"ativo"`
	Ordem     *int    `json:"ordem"`
}

type CreateNewsRequest struct {
	Titulo            string `json:"titulo" binding:"required,min=3,max=200"`
	Conteudo          string `json:"conteudo" binding:"required,min=10"`
	ImagemUrl         string `json:"imagemUrl" binding:"omitempty,url"`
	DestaquePrincipal bool   `json:"destaquePrincipal"`
}

type UpdateNewsRequest struct {
	Titulo            *string `json:"titulo" binding:"omitempty,min=3,max=200"`
	Conteudo          *string `json:"conteudo" binding:"omitempty,min=10"`
	ImagemUrl         *string `json:"imagemUrl" binding:"omitempty,url"`
	DestaquePrincipal *bool   `json:"destaquePrincipal"`
	Ativo             *bool   `json:"ativo"`
}

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

type AdResponse struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	ImagemUrl string    `json:"imagemUrl"`
	LinkUrl   string    `json:"linkUrl,omitempty"`
	Posicao   string    `json:"posicao,omitempty"`
	Ativo     bool      `json:"ativo"`
	Ordem     int       `json:"ordem"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewsResponse struct {
	ID                string    `json:"id"`
	Titulo            string    `json:"titulo"`
	Conteudo          string    `json:"conteudo"`
	ImagemUrl         string    `json:"imagemUrl,omitempty"`
	DestaquePrincipal bool      `json:"destaquePrincipal"`
	Ativo             bool      `json:"ativo"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func MapAdToResponse(a Advertisement) AdResponse {
	return AdResponse{
		ID:        a.ID.String(),
		Titulo:    a.Titulo,
		ImagemUrl: a.ImagemUrl,
		LinkUrl:   a.LinkUrl,
		Posicao:   a.Posicao,
		Ativo:     a.Ativo,
		Ordem:     a.Ordem,
		CreatedAt: a.CreatedAt,
	}
}

func MapAdsToResponse(ads []Advertisement) []AdResponse {
	res := make([]AdResponse, len(ads))
	for i, a := range ads {
		res[i] = MapAdToResponse(a)
	}
	return res
}

func MapNewsToResponse(n NewsArticle) NewsResponse {
	return NewsResponse{
		ID:                n.ID.String(),
		Titulo:            n.Titulo,
		Conteudo:          n.Conteudo,
		ImagemUrl:         n.ImagemUrl,
		DestaquePrincipal: n.DestaquePrincipal,
		Ativo:             n.Ativo,
		CreatedAt:         n.CreatedAt,
		UpdatedAt:         n.UpdatedAt,
	}
}

func MapNewsListToResponse(items []NewsArticle) []NewsResponse {
	res := make([]NewsResponse, len(items))
	for i, n := range items {
		res[i] = MapNewsToResponse(n)
	}
	return res
}
