package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(doctor *authdomain.Doctor) error {
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	doctor.Email = NormalizeEmail(doctor.Email)
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = time.Now()
	return r.db.Create(doctor).Error
}

func (r *doctorRepository) FindByEmail(email string) (*authdomain.Doctor, error) {
	var doctor authdomain.Doctor
	err := r.db.Where("email = ?", NormalizeEmail(email)).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByID(id string) (*authdomain.Doctor, error) {
	var doctor authdomain.Doctor
	err := r.db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(doctor *authdomain.Doctor) error {
	doctor.UpdatedAt = time.Now()
	return r.db.Save(doctor).Error
}

func (r *doctorRepository) List() ([]authdomain.Doctor, error) {
	var doctors []authdomain.Doctor
	err := r.db.Order("created_at DESC").Find(&doctors).Error
	return doctors, err
}

func (r *doctorRepository) ListByStatus(status authdomain.DoctorStatus) ([]authdomain.Doctor, error) {
	var doctors []authdomain.Doctor
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&doctors).Error
	return doctors, err
}

func (r *doctorRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&authdomain.Doctor{}).Count(&count).Error
	return count, err
}

func (r *doctorRepository) CountByStatus(status authdomain.DoctorStatus) (int64, error) {
	var count int64
	err := r.db.Model(&authdomain.Doctor{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *doctorRepository) CountCreatedSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&authdomain.Doctor{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
