package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/validation"
	"github.com/jhoicas/ordenes-api/internal/domain"
)

// validate valida los DTO de entrada de todos los casos de uso CRUD.
var validate = validation.New()

var hundred = decimal.NewFromInt(100)

func normalizePage(limit, offset int) (int, int) {
	p := dto.PageRequest{Limit: limit, Offset: offset}.Normalize()
	return p.Limit, p.Offset
}

func checkID(id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return nil
}
