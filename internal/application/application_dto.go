package application

import "time"

type ApplyRequest struct {
	JobID    string `json:"jobId" binding:"required,uuid"`
	Mensagem string `json:"mensagem"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ENVIADO EM_ANALISE APROVADO REPROVADO"`
}

type JobSummary struct {
	ID            string `json:"id"`
	Titulo        string `json:"titulo"`
	Cidade        string `json:"cidade"`
	Estado        string `json:"estado"`
	TipoContrato  string `json:"tipoContrato,omitempty"`
	FaixaSalarial string `json:"faixaSalarial,omitempty"`
	NomeEmpresa   string `json:"nomeEmpresa,omitempty"`
}

type CandidateSummary struct {
	ID                 string `json:"id"`
	Nome               string `json:"nome"`
	Email              string `json:"email"`
	Telefone           string `json:"telefone,omitempty"`
	Cidade             string `json:"cidade,omitempty"`
	ResumoProfissional string `json:"resumoProfissional,omitempty"`
	LinkCurriculo      string `json:"linkCurriculo,omitempty"`
	LinkLinkedin       string `json:"linkLinkedin,omitempty"`
}

type ApplicationResponse struct {
	ID        string            `json:"id"`
	JobID     string            `json:"jobId"`
	Mensagem  string            `json:"mensagem,omitempty"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	Job       *JobSummary       `json:"job,omitempty"`
	Candidate *CandidateSummary `json:"candidate,omitempty"`
}

func MapToResponse(a Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:        a.ID.String(),
		JobID:     a.JobID.String(),
		Mensagem:  a.Mensagem,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
	if a.Job != nil {
		resp.Job = &JobSummary{
			ID:            a.Job.ID.String(),
			Titulo:        a.Job.Titulo,
			Cidade:        a.Job.Cidade,
			Estado:        a.Job.Estado,
			TipoContrato:  a.Job.TipoContrato,
			FaixaSalarial: a.Job.FaixaSalarial,
		}
		if a.Job.Company != nil {
			resp.Job.NomeEmpresa = a.Job.Company.NomeEmpresa
		}
	}
	if a.Candidate != nil {
		resp.Candidate = &CandidateSummary{
			ID:                 a.Candidate.ID.String(),
			ResumoProfissional: a.Candidate.ResumoProfissional,
			LinkCurriculo:      a.Candidate.LinkCurriculo,
			LinkLinkedin:       a.Candidate.LinkLinkedin,
		}
		if a.Candidate.User != nil {
			resp.Candidate.Nome = a.Candidate.User.Nome
			resp.Candidate.Email = a.Candidate.User.Email
			resp.Candidate.Telefone = a.Candidate.User.Telefone
			resp.Candidate.Cidade = a.Candidate.User.Cidade
		}
	}
	return resp
}

func MapToListResponse(items []Application) []ApplicationResponse {
	res := make([]ApplicationResponse, len(items))
	for i, a := range items {
		res[i] = MapToResponse(a)
	}
	return res
}
