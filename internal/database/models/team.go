package models

// TradeTeam groups crews of one trade; read-only lookup data
type TradeTeam struct {
	DirectoryModel
	Region string `json:"region" gorm:"size:50;index"`

	// Relationships
	Crews []TradeCrew `json:"crews,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for TradeTeam
func (TradeTeam) TableName() string {
	return "trade_teams"
}
