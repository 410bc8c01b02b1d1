package user

import "time"

type UpdateCandidateProfileRequest struct {
	Nome               *string `json:"nome" binding:"omitempty,min=2,max=100"`
	Cidade             *string `json:"cidade"`
	Estado             *string `json:"estado" binding:"omitempty,len=2"`
	Telefone           *string `json:"telefone"`
	ResumoProfissional *string `json:"resumoProfissional"`
	LinkCurriculo      *string `json:"linkCurriculo"`
	LinkLinkedin       *string `json:"linkLinkedin"`
	AreaInteresse      *string `json:"areaInteresse"`
	ExperienciaAnos    *int    `json:"experienciaAnos"`
}

type UpdateCompanyProfileRequest struct {
	Nome        *string `json:"nome" binding:"omitempty,min=2,max=100"`
	Cidade      *string `json:"cidade"`
	Estado      *string `json:"estado" binding:"omitempty,len=2"`
	Telefone    *string `json:"telefone"`
	NomeEmpresa *string `json:"nomeEmpresa" binding:"omitempty,min=2"`
	Cnpj        *string `json:"cnpj"`
	AreaAtuacao *string `json:"areaAtuacao"`
	Descricao   *string `json:"descricao"`
	Site        *string `json:"site"`
	LogoUrl     *string `json:"logoUrl"`
}

type CandidateProfileResponse struct {
	ID                 string `json:"id"`
	ResumoProfissional string `json:"resumoProfissional,omitempty"`
	LinkCurriculo      string `json:"linkCurriculo,omitempty"`
	LinkLinkedin       string `json:"linkLinkedin,omitempty"`
	AreaInteresse      string `json:"areaInteresse,omitempty"`
	ExperienciaAnos    int    `json:"experienciaAnos,omitempty"`
}

type CompanyProfileResponse struct {
	ID          string `json:"id"`
	NomeEmpresa string `json:"nomeEmpresa"`
	Cnpj        string `json:"cnpj,omitempty"`
	AreaAtuacao string `json:"areaAtuacao,omitempty"`
	Descricao   string `json:"descricao,omitempty"`
	Site        string `json:"site,omitempty"`
	LogoUrl     string `json:"logoUrl,omitempty"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID               string                    `json:"id"`
	Nome             string                    `json:"nome"`
	Email            string                    `json:"email"`
	Role             string                    `json:"role"`
	Ativo            bool                      `json:"ativo"`
	Cidade           string                    `json:"cidade,omitempty"`
	Estado           string                    `json:"estado,omitempty"`
	Telefone         string                    `json:"telefone,omitempty"`
	CreatedAt        time.Time                 `json:"createdAt"`
	CandidateProfile *CandidateProfileResponse `json:"candidateProfile,omitempty"`
	CompanyProfile   *CompanyProfileResponse   `json:"companyProfile,omitempty"`
}

func MapToResponse(u User) UserResponse {
	resp := UserResponse{
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
	if u.CandidateProfile != nil {
		resp.CandidateProfile = &CandidateProfileResponse{
			ID:                 u.CandidateProfile.ID.String(),
			ResumoProfissional: u.CandidateProfile.ResumoProfissional,
			LinkCurriculo:      u.CandidateProfile.LinkCurriculo,
			LinkLinkedin:       u.CandidateProfile.LinkLinkedin,
			AreaInteresse:      u.CandidateProfile.AreaInteresse,
			ExperienciaAnos:    u.CandidateProfile.ExperienciaAnos,
		}
	}
	if u.CompanyProfile != nil {
		resp.CompanyProfile = &CompanyProfileResponse{
			ID:          u.CompanyProfile.ID.String(),
			NomeEmpresa: u.CompanyProfile.NomeEmpresa,
			Cnpj:        u.CompanyProfile.Cnpj,
			AreaAtuacao: u.CompanyProfile.AreaAtuacao,
			Descricao:   u.CompanyProfile.Descricao,
			Site:        u.CompanyProfile.Site,
			LogoUrl:     u.CompanyProfile.LogoUrl,
		}
	}
	return resp
}
