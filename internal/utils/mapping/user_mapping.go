package mapping

import (
	"database/sql"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/budgettrackr/budget_tracker_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	var refreshHash sql.NullString
	if d.RefreshTokenHash != "" {
		refreshHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	var refreshExpiry sql.NullTime
	if d.RefreshTokenExpiryTime != nil {
		refreshExpiry = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return models.User{
		UserID:                 d.UserID,
		Username:               d.Username,
		Email:                  d.Email,
		PasswordHash:           d.PasswordHash,
		AuthProvider:           string(d.AuthProvider),
		AuditFields:            ToModelAuditFields(d.AuditFields),
		RefreshTokenHash:       refreshHash,
		RefreshTokenExpiryTime: refreshExpiry,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	u := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AuthProvider: domain.AuthProvider(m.AuthProvider),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.RefreshTokenHash.Valid {
		u.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		u.RefreshTokenExpiryTime = &t
	}
	return u
}
