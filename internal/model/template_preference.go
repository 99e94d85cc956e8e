package model

// TemplatePreference is the single durable row backing the active
// template selection when redis is cold or unavailable.
type TemplatePreference struct {
	BaseModel
	Name string `gorm:"size:50" json:"name"`
}

func (TemplatePreference) TableName() string {
	return "template_preferences"
}
