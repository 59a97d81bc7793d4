package domain

// SettingsID is the primary key of the only admin_settings row.
const SettingsID = 1

type Settings struct {
	ID          int64   `db:"id" json:"id"`
	CompanyName *string `db:"company_name" json:"company_name"`
	Address     *string `db:"address" json:"address"`
	Phone       *string `db:"phone" json:"phone"`
	Whatsapp    *string `db:"whatsapp" json:"whatsapp"`
	Email       *string `db:"email" json:"email"`
	Website     *string `db:"website" json:"website"`
	VisionID    *string `db:"vision_id" json:"vision_id"`
	VisionEN    *string `db:"vision_en" json:"vision_en"`
	MissionID   *string `db:"mission_id" json:"mission_id"`
	MissionEN   *string `db:"mission_en" json:"mission_en"`
}

// SettingsUpdate carries the fields to overwrite; nil fields are left as stored.
type SettingsUpdate struct {
	CompanyName *string `db:"company_name"`
	Address     *string `db:"address"`
	Phone       *string `db:"phone"`
	Whatsapp    *string `db:"whatsapp"`
	Email       *string `db:"email"`
	Website     *string `db:"website"`
	VisionID    *string `db:"vision_id"`
	VisionEN    *string `db:"vision_en"`
	MissionID   *string `db:"mission_id"`
	MissionEN   *string `db:"mission_en"`
}
