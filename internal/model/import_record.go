package model

// ImportRecord is an audit row for one import attempt. The elements
// themselves belong to the canvas host; only the outcome is kept here.
// swagger:model ImportRecord
type ImportRecord struct {
	BaseModel
	UserID        uint   `gorm:"index" json:"userId"`
	ExamID        string `gorm:"size:100;index" json:"examId"`
	QuestionCount int    `gorm:"default:0" json:"questionCount"`
	ElementCount  int    `gorm:"default:0" json:"elementCount"`
	DurationMs    int64  `gorm:"default:0" json:"durationMs"`
	Status        string `gorm:"size:20" json:"status"` // ok, empty, failed
	Error         string `gorm:"type:text" json:"error,omitempty"`
}

func (ImportRecord) TableName() string {
	return "import_records"
}

const (
	ImportStatusOK     = "ok"
	ImportStatusEmpty  = "empty"
	ImportStatusFailed = "failed"
)
