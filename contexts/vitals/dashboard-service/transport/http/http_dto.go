package http

import "encoding/json"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ChartResponse carries one plotly figure. Figure is pre-encoded so the
// transport never re-shapes what the chart builders produced.
type ChartResponse struct {
	Status string `json:"status"`
	Data   struct {
		Chart  string          `json:"chart"`
		Figure json.RawMessage `json:"figure"`
	} `json:"data"`
}

type SummaryResponse struct {
	Status string `json:"status"`
	Data   struct {
		Count       int             `json:"count"`
		AvgSYS      float64         `json:"avg_sys"`
		AvgDIA      float64         `json:"avg_dia"`
		MaxReading  string          `json:"max_reading"`
		NormPercent float64         `json:"norm_percent"`
		Pie         json.RawMessage `json:"pie"`
	} `json:"data"`
}

type ExportResponse struct {
	Status string `json:"status"`
	Data   struct {
		File string `json:"file"`
	} `json:"data"`
}

type ChartListResponse struct {
	Status string `json:"status"`
	Data   struct {
		Charts []string `json:"charts"`
	} `json:"data"`
}
