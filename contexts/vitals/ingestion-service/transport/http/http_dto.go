package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MeasurementDTO struct {
	Timestamp string  `json:"timestamp"`
	SYS       float64 `json:"sys"`
	DIA       float64 `json:"dia"`
	PUL       float64 `json:"pul"`
	MAP       float64 `json:"map"`
	PP        float64 `json:"pp"`
	Hour      int     `json:"hour"`
	Day       string  `json:"day"`
	Slot      string  `json:"slot,omitempty"`
	DayType   string  `json:"day_type"`
	Category  string  `json:"category"`
}

type MeasurementsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []MeasurementDTO `json:"items"`
		Total int              `json:"total"`
	} `json:"data"`
}

type RefreshResponse struct {
	Status string `json:"status"`
	Data   struct {
		Source      string `json:"source"`
		SnapshotID  string `json:"snapshot_id"`
		Loaded      int    `json:"loaded"`
		Dropped     int    `json:"dropped"`
		RefreshedAt string `json:"refreshed_at"`
		Stale       bool   `json:"stale"`
		Warning     string `json:"warning,omitempty"`
	} `json:"data"`
}

type SnapshotDTO struct {
	SnapshotID string `json:"snapshot_id"`
	Source     string `json:"source"`
	CreatedAt  string `json:"created_at"`
	Loaded     int    `json:"loaded"`
	Dropped    int    `json:"dropped"`
}

type SnapshotsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []SnapshotDTO `json:"items"`
	} `json:"data"`
}
