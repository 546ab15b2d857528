package models

type Language struct {
	ID   uint   `gorm:"column:lang_id;primaryKey" json:"lang_id"`
	Code string `gorm:"column:lang_code;uniqueIndex;not null;size:10" json:"lang_code" example:"zu"` // ISO 639-1 code
	Name string `gorm:"column:lang_name;not null;size:50" json:"lang_name" example:"isiZulu"`
}

func (Language) TableName() string {
	return "languages"
}

// SeedLanguages is the fixed set of South African languages inserted
// idempotently at startup.
func SeedLanguages() []Language {
	return []Language{
		{Code: "en", Name: "English"},
		{Code: "zu", Name: "isiZulu"},
		{Code: "xh", Name: "isiXhosa"},
		{Code: "af", Name: "Afrikaans"},
		{Code: "st", Name: "Sesotho"},
		{Code: "tn", Name: "Setswana"},
		{Code: "ts", Name: "Xitsonga"},
		{Code: "ss", Name: "siSwati"},
		{Code: "ve", Name: "Tshivenda"},
		{Code: "nr", Name: "isiNdebele"},
	}
}
