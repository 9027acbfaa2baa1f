package model

type Setting struct {
	Key       string `json:"key" gorm:"primaryKey;size:100"`
	Value     string `json:"value" gorm:"type:text"`
	Desc      string `json:"desc" gorm:"size:255"`
	Category  string `json:"category" gorm:"size:50"`
	Sensitive bool   `json:"sensitive" gorm:"not null;default:false"`
}
