package models

import "time"

// Message is one translated exchange. Rows are append-only: created on each
// successful translation, never mutated or deleted, so history and stats can
// be derived at read time.
type Message struct {
	ID             uint      `gorm:"column:message_id;primaryKey" json:"message_id" example:"1"`
	SenderID       *uint     `gorm:"index" json:"sender_id"`
	ReceiverID     *uint     `json:"receiver_id"`
	OriginalText   string    `gorm:"type:text;not null" json:"original_text" example:"Hello"`
	TranslatedText string    `gorm:"type:text;not null" json:"translated_text" example:"Sawubona"`
	SourceLang     string    `gorm:"size:10;not null;default:en" json:"source_lang" example:"en"`
	TargetLang     string    `gorm:"size:10;not null" json:"target_lang" example:"zu"`
	Timestamp      time.Time `gorm:"column:timestamp;autoCreateTime;index" json:"timestamp"`
}

func (Message) TableName() string {
	return "messages"
}

type TranslationResult struct {
	OriginalText   string `json:"original_text" example:"Hello"`
	TranslatedText string `json:"translated_text" example:"Sawubona"`
	SourceLang     string `json:"source_lang" example:"en"`
	TargetLang     string `json:"target_lang" example:"zu"`
}

// TargetLangCount is one row of the per-language translation aggregate,
// ordered most-used first.
type TargetLangCount struct {
	TargetLang string `json:"target_lang" example:"zu"`
	Count      int64  `json:"count" example:"120"`
}

type SystemTotals struct {
	TotalUsers        int64 `json:"total_users" example:"250"`
	TotalTranslations int64 `json:"total_translations" example:"1340"`
	LanguagesUsed     int64 `json:"languages_used" example:"7"`
}

type SystemStats struct {
	UsersByRole      map[string]int64  `json:"user_stats"`
	TranslationStats []TargetLangCount `json:"translation_stats"`
	Totals           SystemTotals      `json:"total_stats"`
}
