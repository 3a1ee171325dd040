package model

const AdminCollection = "admins"

type AdminDocument struct {
	ID       string `bson:"_id"` // admin identity
	IsActive bool   `bson:"is_active"`
	AddedAt  int64  `bson:"added_at"`
}

func NewAdminDocument(adminID string, addedAt int64) *AdminDocument {
	return &AdminDocument{
		ID:       adminID,
		IsActive: true,
		AddedAt:  addedAt,
	}
}
