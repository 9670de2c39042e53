package domain

import "time"

// SyncStatus é o estado de uma execução exibido no registro de controle
type SyncStatus string

const (
	SyncStatusPulling SyncStatus = "Pulling"
	SyncStatusSuccess SyncStatus = "Success"
	SyncStatusError   SyncStatus = "Error"
)

// StatusUpdate é o conjunto de campos gravados na superfície de status
type StatusUpdate struct {
	Status         SyncStatus
	Message        string
	RecordsUpdated int
	At             time.Time
}

// Breakdown é a contagem de registros criados por tipo de entidade
type Breakdown struct {
	Campaigns int `json:"campaigns"`
	AdGroups  int `json:"adGroups"`
	Keywords  int `json:"keywords"`
	Ads       int `json:"ads"`
}

func (b Breakdown) Total() int {
	return b.Campaigns + b.AdGroups + b.Keywords + b.Ads
}

// SyncResult é o retorno de uma execução bem-sucedida
type SyncResult struct {
	Success      bool      `json:"success"`
	RunID        string    `json:"runId"`
	TotalRecords int       `json:"totalRecords"`
	Breakdown    Breakdown `json:"breakdown"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
}
