package domain

import "time"

// Account is a registered user as stored by the reference backend.
type Account struct {
	ID           int       `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"` // Unique
	UF           string    `bson:"uf"`
	Level        string    `bson:"level"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

// Identity returns the claims the backend embeds in issued tokens.
func (a *Account) Identity() Identity {
	return Identity{
		UserID: FlexInt(a.ID),
		Name:   a.Name,
		Email:  a.Email,
		UF:     a.UF,
		Level:  FlexString(a.Level),
	}
}
