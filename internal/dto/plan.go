package dto

import "marblemanager/internal/domain"

type PlanDTO struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Period    string   `json:"period"`
	Features  []string `json:"features"`
	IsPopular bool     `json:"is_popular"`
}

func PlanFromDomain(p *domain.Plan) PlanDTO {
	return PlanDTO{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Period:    p.Period,
		Features:  p.Features,
		IsPopular: p.IsPopular,
	}
}

func PlansFromDomain(plans []domain.Plan) []PlanDTO {
	out := make([]PlanDTO, len(plans))
	for i := range plans {
		out[i] = PlanFromDomain(&plans[i])
	}
	return out
}
