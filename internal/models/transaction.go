package models

// Transaction 表示一笔流水记录
// json 标签保持前端沿用的西语字段名（fecha/tipo/monto...），不要改
type Transaction struct {
	ID          string   `gorm:"primaryKey;size:64" json:"id"`
	Date        string   `gorm:"size:10;index" json:"fecha"` // YYYY-MM-DD
	Type        string   `gorm:"size:32" json:"tipo"`
	Description string   `gorm:"size:255" json:"descripcion"`
	Category    string   `gorm:"size:64" json:"categoria"`
	ExpenseType string   `gorm:"size:64" json:"tipoGasto"`
	Amount      *float64 `json:"monto"` // nil when the caller omitted it
	Emoji       string   `gorm:"size:16" json:"emoji"`
	Notes       string   `gorm:"type:text" json:"notas"`
	Account     string   `gorm:"size:64" json:"cuenta"`
}

func (Transaction) TableName() string { return "txns" }
