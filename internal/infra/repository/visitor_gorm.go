package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/recepcao-visitantes/internal/domain/visitor"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
)

type VisitorGormRepository struct {
	db *gorm.DB
}

func NewVisitorGormRepository(db *gorm.DB) *VisitorGormRepository {
	return &VisitorGormRepository{db: db}
}

// --------------------------------------------------
// Locks
// --------------------------------------------------

// Serializa as transações que disputam a mesma sala (ou o mesmo CPF).
// Sem isso duas criações concorrentes leem count=2 e as duas inserem.
func lockRoom(tx *gorm.DB, room string) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext('sala'), hashtext(?))", room).Error
}

func lockCPF(tx *gorm.DB, cpf string) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext('cpf'), hashtext(?))", cpf).Error
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

func (r *VisitorGormRepository) Create(
	ctx context.Context,
	v *models.Visitor,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := lockRoom(tx, v.SalaDestino); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Visitor{}).
			Where("sala_destino = ? AND check_out IS NULL", v.SalaDestino).
			Count(&count).Error; err != nil {
			return err
		}

		if count >= domain.RoomCapacity {
			return httperr.ErrBusiness("room_full")
		}

		return tx.Create(v).Error
	})
}

func (r *VisitorGormRepository) CheckInClone(
	ctx context.Context,
	sourceID string,
	now time.Time,
) (*models.Visitor, error) {

	var clone *models.Visitor

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var src models.Visitor
		if err := tx.First(&src, "id = ?", sourceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("visitor_not_found")
			}
			return err
		}

		if err := lockCPF(tx, src.CPF); err != nil {
			return err
		}
		if err := lockRoom(tx, src.SalaDestino); err != nil {
			return err
		}

		var active int64
		if err := tx.Model(&models.Visitor{}).
			Where("cpf = ? AND check_out IS NULL", src.CPF).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return httperr.ErrBusiness("already_active")
		}

		var inRoom int64
		if err := tx.Model(&models.Visitor{}).
			Where("sala_destino = ? AND check_out IS NULL", src.SalaDestino).
			Count(&inRoom).Error; err != nil {
			return err
		}
		if inRoom >= domain.RoomCapacity {
			return httperr.ErrBusiness("room_full")
		}

		clone = domain.CloneForCheckIn(&src, now)
		return tx.Create(clone).Error
	})
	if err != nil {
		return nil, err
	}

	return clone, nil
}

func (r *VisitorGormRepository) CheckOut(
	ctx context.Context,
	id string,
	now time.Time,
) (*models.Visitor, error) {

	// UPDATE condicional: só a primeira requisição grava o checkout.
	res := r.db.WithContext(ctx).
		Model(&models.Visitor{}).
		Where("id = ? AND check_out IS NULL", id).
		Update("check_out", now)

	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		var v models.Visitor
		if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness("visitor_not_found")
			}
			return nil, err
		}
		return nil, httperr.ErrBusiness("already_checked_out")
	}

	return r.GetByID(ctx, id)
}

func (r *VisitorGormRepository) Delete(
	ctx context.Context,
	id string,
) (*models.Visitor, error) {

	var snapshot models.Visitor

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.First(&snapshot, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("visitor_not_found")
			}
			return err
		}

		if err := domain.CanDelete(&snapshot); err != nil {
			return err
		}

		return tx.Delete(&models.Visitor{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *VisitorGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Visitor, error) {

	var v models.Visitor
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("visitor_not_found")
		}
		return nil, err
	}
	return &v, nil
}

func (r *VisitorGormRepository) List(
	ctx context.Context,
	activeOnly bool,
) ([]models.Visitor, error) {

	q := r.db.WithContext(ctx).Model(&models.Visitor{})
	if activeOnly {
		q = q.Where("check_out IS NULL")
	}

	var out []models.Visitor
	if err := q.Order("check_in DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *VisitorGormRepository) SearchByCPF(
	ctx context.Context,
	fragment string,
) ([]models.Visitor, error) {

	var all []models.Visitor
	if err := r.db.WithContext(ctx).
		Where("cpf LIKE ?", "%"+fragment+"%").
		Order("created_at DESC").
		Find(&all).Error; err != nil {
		return nil, err
	}

	// Um registro por CPF, o mais recente primeiro.
	seen := make(map[string]bool, len(all))
	out := make([]models.Visitor, 0, len(all))
	for _, v := range all {
		if seen[v.CPF] {
			continue
		}
		seen[v.CPF] = true
		out = append(out, v)
	}

	return out, nil
}

func (r *VisitorGormRepository) ActiveCount(
	ctx context.Context,
	room string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Visitor{}).
		Where("sala_destino = ? AND check_out IS NULL", room).
		Count(&count).Error

	return count, err
}

func (r *VisitorGormRepository) ActiveCountByRoom(
	ctx context.Context,
) (map[string]int64, error) {

	type roomCount struct {
		SalaDestino string
		Total       int64
	}

	var rows []roomCount
	if err := r.db.WithContext(ctx).
		Model(&models.Visitor{}).
		Select("sala_destino, COUNT(*) as total").
		Where("check_out IS NULL").
		Group("sala_destino").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.SalaDestino] = row.Total
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*VisitorGormRepository)(nil)
