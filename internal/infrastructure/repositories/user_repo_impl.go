package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/infrastructure/models"
)

// AuthAccountRepository implements auth principal data operations
type AuthAccountRepository struct {
	db *gorm.DB
}

// NewAuthAccountRepository creates a new auth account repository
func NewAuthAccountRepository(db *gorm.DB) *AuthAccountRepository {
	return &AuthAccountRepository{db: db}
}

func (r *AuthAccountRepository) Create(ctx context.Context, account *entities.AuthAccount) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	m := &models.AuthAccount{
		ID:            account.ID,
		Email:         account.Email,
		Provider:      string(account.Provider),
		PasswordHash:  account.PasswordHash,
		EmailVerified: account.EmailVerified,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	account.CreatedAt = m.CreatedAt
	return nil
}

func (r *AuthAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AuthAccount, error) {
	var m models.AuthAccount
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

func (r *AuthAccountRepository) GetByEmail(ctx context.Context, email string) (*entities.AuthAccount, error) {
	var m models.AuthAccount
	if err := GetDB(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

func (r *AuthAccountRepository) SetEmailVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := GetDB(ctx, r.db).Model(&models.AuthAccount{}).Where("id = ?", id).
		Update("email_verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AuthAccountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := GetDB(ctx, r.db).Model(&models.AuthAccount{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AuthAccountRepository) List(ctx context.Context) ([]*entities.AuthAccount, error) {
	var accountModels []models.AuthAccount
	if err := GetDB(ctx, r.db).Order("created_at ASC").Find(&accountModels).Error; err != nil {
		return nil, err
	}
	accounts := make([]*entities.AuthAccount, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountToEntity(&accountModels[i]))
	}
	return accounts, nil
}

func accountToEntity(m *models.AuthAccount) *entities.AuthAccount {
	return &entities.AuthAccount{
		ID:            m.ID,
		Email:         m.Email,
		Provider:      entities.AuthProvider(m.Provider),
		PasswordHash:  m.PasswordHash,
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
	}
}

// UserRepository implements member profile data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	visibility, err := json.Marshal(user.Visibility)
	if err != nil {
		return err
	}
	m := &models.User{
		ID:             user.ID,
		AccountID:      user.AccountID,
		Email:          user.Email,
		Name:           user.Name,
		Phone:          user.Phone,
		Profession:     user.Profession,
		Company:        user.Company,
		BloodGroup:     user.BloodGroup,
		Address:        user.Address,
		GraduationYear: user.GraduationYear,
		PhotoURL:       user.PhotoURL.Ptr(),
		Role:           string(user.Role),
		Status:         string(user.Status),
		Provider:       string(user.Provider),
		Visibility:     visibility,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *UserRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.User, error) {
	return r.getOne(ctx, "account_id = ?", accountID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	visibility, err := json.Marshal(user.Visibility)
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"name":            user.Name,
		"phone":           user.Phone,
		"profession":      user.Profession,
		"company":         user.Company,
		"blood_group":     user.BloodGroup,
		"address":         user.Address,
		"graduation_year": user.GraduationYear,
		"photo_url":       user.PhotoURL.Ptr(),
		"role":            string(user.Role),
		"status":          string(user.Status),
		"visibility":      visibility,
		"updated_at":      time.Now(),
	}
	if user.ApprovedBy.Valid {
		updates["approved_by"] = user.ApprovedBy.UUID
	}
	if user.ApprovedAt.Valid {
		updates["approved_at"] = user.ApprovedAt.Time
	}

	result := GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Unscoped().Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", id).
		Update("last_login_at", time.Now()).Error
}

func (r *UserRepository) List(ctx context.Context, status entities.UserStatus, search string) ([]*entities.User, error) {
	query := GetDB(ctx, r.db).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", term, term)
	}

	var userModels []models.User
	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}
	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) ListDirectory(ctx context.Context, q entities.DirectoryQuery) ([]*entities.User, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.User{}).Where("status = ?", string(entities.UserStatusApproved))

	if q.Search != "" {
		term := "%" + q.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR profession LIKE ?", term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := "name"
	switch q.SortBy {
	case entities.SortByBloodGroup:
		column = "blood_group"
	case entities.SortByCreatedAt:
		column = "created_at"
	}
	direction := "DESC"
	if q.Ascending {
		direction = "ASC"
	}
	query = query.Order(column + " " + direction)

	if q.Limit > 0 {
		offset := 0
		if q.Page > 1 {
			offset = (q.Page - 1) * q.Limit
		}
		query = query.Limit(q.Limit).Offset(offset)
	}

	var userModels []models.User
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, err
	}
	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, total, nil
}

func (r *UserRepository) CountByStatus(ctx context.Context) (map[entities.UserStatus]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := GetDB(ctx, r.db).Model(&models.User{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[entities.UserStatus]int64, len(rows))
	for _, rw := range rows {
		counts[entities.UserStatus(rw.Status)] = rw.Count
	}
	return counts, nil
}

func userToEntity(m *models.User) *entities.User {
	visibility := entities.DefaultVisibility()
	if len(m.Visibility) > 0 {
		_ = json.Unmarshal(m.Visibility, &visibility)
	}

	u := &entities.User{
		ID:             m.ID,
		AccountID:      m.AccountID,
		Email:          m.Email,
		Name:           m.Name,
		Phone:          m.Phone,
		Profession:     m.Profession,
		Company:        m.Company,
		BloodGroup:     m.BloodGroup,
		Address:        m.Address,
		GraduationYear: m.GraduationYear,
		PhotoURL:       null.StringFromPtr(m.PhotoURL),
		Role:           entities.UserRole(m.Role),
		Status:         entities.UserStatus(m.Status),
		Provider:       entities.AuthProvider(m.Provider),
		Visibility:     visibility,
		ApprovedAt:     null.TimeFromPtr(m.ApprovedAt),
		LastLoginAt:    null.TimeFromPtr(m.LastLoginAt),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.ApprovedBy != nil {
		u.ApprovedBy = uuid.NullUUID{UUID: *m.ApprovedBy, Valid: true}
	}
	return u
}

// EmailVerificationRepository implements verification token operations
type EmailVerificationRepository struct {
	db *gorm.DB
}

// NewEmailVerificationRepository creates a new email verification repository
func NewEmailVerificationRepository(db *gorm.DB) *EmailVerificationRepository {
	return &EmailVerificationRepository{db: db}
}

func (r *EmailVerificationRepository) Create(ctx context.Context, accountID uuid.UUID, token string) error {
	m := &models.EmailVerification{
		ID:        uuid.New(),
		AccountID: accountID,
		Token:     token,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}
	return GetDB(ctx, r.db).Create(m).Error
}

func (r *EmailVerificationRepository) GetAccountByToken(ctx context.Context, token string) (*entities.AuthAccount, error) {
	var m models.AuthAccount
	err := GetDB(ctx, r.db).
		Table("auth_accounts").
		Joins("JOIN email_verifications ev ON ev.account_id = auth_accounts.id").
		Where("ev.token = ? AND ev.expires_at > ? AND ev.verified_at IS NULL", token, time.Now()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

func (r *EmailVerificationRepository) MarkVerified(ctx context.Context, token string) error {
	result := GetDB(ctx, r.db).
		Model(&models.EmailVerification{}).
		Where("token = ? AND verified_at IS NULL", token).
		Update("verified_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *EmailVerificationRepository) HasVerified(ctx context.Context, accountID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.EmailVerification{}).
		Where("account_id = ? AND verified_at IS NOT NULL", accountID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
