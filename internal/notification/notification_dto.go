package notification

import "time"

type NotificationResponse struct {
	ID        string    `json:"id"`
	Tipo      string    `json:"tipo"`
	Titulo    string    `json:"titulo"`
	Mensagem  string    `json:"mensagem"`
	Lida      bool      `json:"lida"`
	CreatedAt time.Time `json:"createdAt"`
}

func MapToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Tipo:      n.Tipo,
		Titulo:    n.Titulo,
		Mensagem:  n.Mensagem,
		Lida:      n.Lida,
		CreatedAt: n.CreatedAt,
	}
}

func MapToListResponse(items []Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(items))
	for i, n := range items {
		res[i] = MapToResponse(n)
	}
	return res
}
